// Package job provides HTTP handlers for job posting operations.
package job

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/database"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/utilities"
)

// JobController handles job posting related endpoints
type JobController struct {
	DB *database.Service
}

// NewJobController creates a new instance of JobController with the provided
// database service.
func NewJobController(db *database.Service) *JobController {
	return &JobController{
		DB: db,
	}
}

// GetJobs fetches all jobs, or only the jobs posted by the given HR email.
// @Summary List job postings
// @Description Returns every job, or only those whose hr_email matches the email query
// @Tags Job
// @Produce json
// @Param email query string false "Filter by the employer's hr_email field"
// @Success 200 {array} model.Job "Matching job documents"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	email := c.Query("email")

	query := bson.M{}
	if email != "" {
		query["hr_email"] = email
	}

	cursor, err := jc.DB.Jobs().Find(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch jobs: %s", err.Error()),
		})
		return
	}

	jobs := []bson.M{}
	if err := cursor.All(c.Request.Context(), &jobs); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read jobs: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobByID fetches a single job by its ID.
// @Summary Get job by ID
// @Tags Job
// @Produce json
// @Param id path string true "ObjectId of the desired job"
// @Success 200 {object} model.Job "The job document"
// @Failure 400 {object} utilities.ErrorResponse "Malformed identifier"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	id, ok := utilities.ObjectIDParam(c, "id")
	if !ok {
		return
	}

	job := bson.M{}
	if err := jc.DB.Jobs().FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob inserts the request body as a new job document, verbatim.
// @Summary Create job posting
// @Description The caller-supplied document is stored as-is; the store assigns the id
// @Tags Job
// @Accept json
// @Produce json
// @Param Job body model.Job true "Job information"
// @Success 201 {object} object "Insertion acknowledgment including the generated id"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJob(c *gin.Context) {
	newJob := bson.M{}
	if err := c.ShouldBindJSON(&newJob); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	result, err := jc.DB.Jobs().InsertOne(c.Request.Context(), newJob)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// DeleteJob removes at most one job by its ID.
// @Summary Delete job posting
// @Description Deleting a nonexistent id yields a zero deleted count, not an error
// @Tags Job
// @Produce json
// @Param id path string true "ObjectId of the job to delete"
// @Success 200 {object} object "Deletion acknowledgment with deleted count"
// @Failure 400 {object} utilities.ErrorResponse "Malformed identifier"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /postedJobs/{id} [delete]
func (jc *JobController) DeleteJob(c *gin.Context) {
	id, ok := utilities.ObjectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := jc.DB.Jobs().DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
