package dtos

type SendOTPRequest struct {
	Email   string `json:"email" binding:"required"`
	Purpose string `json:"purpose" binding:"required"`
}

type VerifyOTPRequest struct {
	Email   string `json:"email" binding:"required"`
	OTP     string `json:"otp" binding:"required"`
	Purpose string `json:"purpose" binding:"required"`
}

// UserResponse is the only user shape ever returned to clients.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}
