// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/niloyahmadramjan/JobBasket-crud/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/auth"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/controller/application"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/controller/job"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/middleware"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/utilities"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	if allowOriginsStr == "" {
		allowOriginsStr = "http://localhost:5173"
	}
	allowOrigins := strings.Split(allowOriginsStr, ",")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))
	r.Use(middleware.SafeHeader())
	r.Use(middleware.EnvRateLimitMiddleware())

	jobController := job.NewJobController(s.DB)
	applicationController := application.NewApplicationController(s.DB)

	r.GET("/", s.LivenessHandler)
	r.GET("/health", s.healthHandler)

	r.POST("/jwt", auth.IssueTokenHandler)

	r.GET("/jobs", jobController.GetJobs)
	r.GET("/jobs/:id", jobController.GetJobByID)
	r.POST("/jobs", jobController.CreateJob)
	r.DELETE("/postedJobs/:id", jobController.DeleteJob)

	r.GET("/viewApplications/:id", applicationController.GetApplicationsByJob)

	// Whether the applications list requires the token cookie is a single
	// configuration point, not per-route happenstance.
	if utilities.EnvBool("AUTH_PROTECT_APPLICATIONS", true) {
		r.GET("/applications", middleware.VerifyToken(), applicationController.GetApplicationsByApplicant)
	} else {
		r.GET("/applications", applicationController.GetApplicationsByApplicant)
	}
	r.POST("/applications", applicationController.CreateApplication)
	r.PATCH("/status/:id", applicationController.UpdateStatus)
	r.DELETE("/applications/:id", applicationController.DeleteApplication)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// LivenessHandler handle request by returning the liveness text
func (s *Server) LivenessHandler(c *gin.Context) {
	c.String(http.StatusOK, "Job Portal server is running...")
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
