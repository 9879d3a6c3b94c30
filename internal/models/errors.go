package models

import "errors"

// Domain errors surfaced to handlers; everything else that bubbles up from
// the store is treated as a storage failure.
var (
	ErrInvalidCode     = errors.New("invalid OTP code")
	ErrOTPExpired      = errors.New("OTP has expired")
	ErrUserNotFound    = errors.New("user not found. Please sign up first")
	ErrAlreadyApplied  = errors.New("already applied for this job")
	ErrInvalidEmployer = errors.New("invalid employer profile")
	ErrInvalidPurpose  = errors.New("purpose must be signup or signin")
	ErrInvalidStatus   = errors.New("invalid application status")
	ErrMailSend        = errors.New("failed to send email")
)
