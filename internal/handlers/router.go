package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint. The jobs and applications groups declare
// their sub-resource listings through the wildcard slot (see ListScoped on
// the respective handlers) because gin's tree rejects a static segment next
// to a registered wildcard.
func NewRouter(
	auth *AuthHandler,
	profiles *ProfileHandler,
	jobs *JobHandler,
	applications *ApplicationHandler,
	skills *SkillHandler,
	debug *DebugHandler,
) *gin.Engine {
	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	r.Use(
		gin.Logger(),
		// The catch-all: any panic surfaces as the fixed generic body.
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Internal server error",
			})
		}),
		cors.New(corsConfig),
	)

	api := r.Group("/api")
	{
		api.POST("/send-otp", auth.SendOTP)
		api.POST("/verify-otp", auth.VerifyOTP)
		api.GET("/auth/status", auth.Status)
		api.POST("/auth/logout", auth.Logout)

		api.POST("/developer-profile", profiles.UpsertDeveloper)
		api.PUT("/developer-profile", profiles.UpsertDeveloper)
		api.GET("/developer-profile/:userId", profiles.GetDeveloper)
		api.POST("/employer-profile", profiles.UpsertEmployer)
		api.PUT("/employer-profile", profiles.UpsertEmployer)
		api.GET("/employer-profile/:userId", profiles.GetEmployer)
		api.GET("/developer-profiles", profiles.ListDeveloperProfiles)
		api.GET("/developers", profiles.SearchDevelopers)
		api.GET("/employer-profiles", profiles.ListEmployerProfiles)

		api.POST("/jobs", jobs.Create)
		api.GET("/jobs", jobs.List)
		api.GET("/jobs/:jobId", jobs.Get)
		api.GET("/jobs/:jobId/:employerId", jobs.ListScoped)

		api.POST("/applications", applications.Create)
		api.GET("/applications/:jobId", applications.ListByJob)
		api.GET("/applications/:jobId/:id", applications.ListScoped)
		api.PUT("/applications/:applicationId/status", applications.UpdateStatus)

		api.GET("/skills", skills.List)

		api.GET("/health", debug.Health)
		api.GET("/test-db", debug.TestDB)
		api.GET("/test-otp", debug.TestOTP)
		api.GET("/debug/user/:email", debug.User)
	}

	return r
}
