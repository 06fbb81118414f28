// Package application provides HTTP handlers for job application operations.
package application

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/database"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/model"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.Service
}

// NewApplicationController creates a new instance of ApplicationController
// with the provided database service.
func NewApplicationController(db *database.Service) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// GetApplicationsByJob lists every application whose jobId field equals the
// path id. The jobId reference is a plain string, so this is string
// equality; no check is made that the job itself exists.
// @Summary List applications for a job
// @Tags Application
// @Produce json
// @Param id path string true "Job id the applications reference"
// @Success 200 {array} model.Application "Matching application documents"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /viewApplications/{id} [get]
func (ac *ApplicationController) GetApplicationsByJob(c *gin.Context) {
	id := c.Param("id")

	cursor, err := ac.DB.Applications().Find(c.Request.Context(), bson.M{"jobId": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch applications: %s", err.Error()),
		})
		return
	}

	applications := []bson.M{}
	if err := cursor.All(c.Request.Context(), &applications); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read applications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// GetApplicationsByApplicant lists the caller's applications, each enriched
// with the company, title, applicationDeadline and location of its job when
// that job still exists. Enrichment is best effort: a dangling or malformed
// jobId leaves the application in the result unenriched.
// @Summary List applications for an applicant email, enriched with job fields
// @Description Requires the token cookie when application protection is enabled; the claims email must match the query email
// @Tags Application
// @Produce json
// @Param email query string true "Applicant email"
// @Success 200 {array} model.Application "Applications, enriched where possible"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Token email does not match the requested email"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [get]
func (ac *ApplicationController) GetApplicationsByApplicant(c *gin.Context) {
	email := c.Query("email")

	// Claims are present only when the route runs behind VerifyToken; the
	// owner check applies exactly when they are.
	if claims, err := utilities.ExtractClaims(c); err == nil {
		if claimEmail, _ := claims["email"].(string); claimEmail != email {
			c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Forbidden access"})
			return
		}
	}

	cursor, err := ac.DB.Applications().Find(c.Request.Context(), bson.M{"email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch applications: %s", err.Error()),
		})
		return
	}

	applications := []bson.M{}
	if err := cursor.All(c.Request.Context(), &applications); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read applications: %s", err.Error()),
		})
		return
	}

	ac.enrichApplications(c.Request.Context(), applications)

	c.JSON(http.StatusOK, applications)
}

// enrichApplications resolves the jobId of each application with one batched
// lookup over the distinct valid ids and copies the job's company, title,
// applicationDeadline and location onto the matching applications in place.
// No failure here removes an item or aborts the batch: malformed ids and
// deleted jobs are logged and the application passes through unenriched,
// and a failed lookup leaves the whole list plain.
func (ac *ApplicationController) enrichApplications(ctx context.Context, applications []bson.M) {
	valid := map[string]struct{}{}
	ids := make([]primitive.ObjectID, 0, len(applications))
	for _, application := range applications {
		rawID, _ := application["jobId"].(string)
		if _, dup := valid[rawID]; dup {
			continue
		}
		oid, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			log.Printf("Skipping job lookup for malformed id %q: %v", rawID, err)
			continue
		}
		valid[rawID] = struct{}{}
		ids = append(ids, oid)
	}
	if len(ids) == 0 {
		return
	}

	cursor, err := ac.DB.Jobs().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("Job lookup failed, returning applications unenriched: %v", err)
		return
	}
	var jobs []model.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		log.Printf("Job lookup failed, returning applications unenriched: %v", err)
		return
	}

	jobsByID := make(map[string]model.Job, len(jobs))
	for _, job := range jobs {
		jobsByID[job.ID.Hex()] = job
	}

	for _, application := range applications {
		rawID, _ := application["jobId"].(string)
		job, found := jobsByID[rawID]
		if !found {
			if _, wasValid := valid[rawID]; wasValid {
				log.Printf("Job %s referenced by an application no longer exists", rawID)
			}
			continue
		}
		application["company"] = job.Company
		application["title"] = job.Title
		application["applicationDeadline"] = job.ApplicationDeadline
		application["location"] = job.Location
	}
}

// CreateApplication inserts the request body as a new application document,
// verbatim.
// @Summary Submit a job application
// @Tags Application
// @Accept json
// @Produce json
// @Param Application body model.Application true "Application information"
// @Success 201 {object} object "Insertion acknowledgment including the generated id"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [post]
func (ac *ApplicationController) CreateApplication(c *gin.Context) {
	application := bson.M{}
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	result, err := ac.DB.Applications().InsertOne(c.Request.Context(), application)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, result)
}

type statusUpdate struct {
	Status string `json:"status"`
}

// UpdateStatus sets the status field of one application, leaving every
// other field untouched.
// @Summary Update application status
// @Tags Application
// @Accept json
// @Produce json
// @Param id path string true "ObjectId of the application"
// @Param Status body statusUpdate true "New status value"
// @Success 200 {object} object "Update acknowledgment with matched/modified counts"
// @Failure 400 {object} utilities.ErrorResponse "Malformed identifier or body"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /status/{id} [patch]
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	id, ok := utilities.ObjectIDParam(c, "id")
	if !ok {
		return
	}

	var body statusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	update := bson.M{"$set": bson.M{"status": body.Status}}
	result, err := ac.DB.Applications().UpdateByID(c.Request.Context(), id, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application status: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteApplication removes at most one application by its ID.
// @Summary Delete application
// @Tags Application
// @Produce json
// @Param id path string true "ObjectId of the application to delete"
// @Success 200 {object} object "Deletion acknowledgment with deleted count"
// @Failure 400 {object} utilities.ErrorResponse "Malformed identifier"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [delete]
func (ac *ApplicationController) DeleteApplication(c *gin.Context) {
	id, ok := utilities.ObjectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := ac.DB.Applications().DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
