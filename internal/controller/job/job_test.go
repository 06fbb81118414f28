package job

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/database"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/testutil"
)

var testDB *database.Service

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var jobTeardown func(context.Context) error
	jobTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if jobTeardown != nil {
		_ = jobTeardown(ctx)
	}
}

func newEngine() *gin.Engine {
	r := gin.New()
	jc := NewJobController(testDB)
	r.GET("/jobs", jc.GetJobs)
	r.GET("/jobs/:id", jc.GetJobByID)
	r.POST("/jobs", jc.CreateJob)
	r.DELETE("/postedJobs/:id", jc.DeleteJob)
	return r
}

func TestCreateJob_RoundTrip(t *testing.T) {
	r := newEngine()

	body := gin.H{
		"title":               "Site Reliability Engineer",
		"company":             "CloudWorks",
		"location":            "Remote",
		"applicationDeadline": "2030-01-31",
		"hr_email":            "hr@cloudworks.example",
		"perks":               []string{"remote", "stock"},
	}

	rec, resp := testutil.MakeJSONRequest(body, "", r, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	insertedID, ok := resp["InsertedID"].(string)
	assert.True(t, ok, "expected insertion acknowledgment to carry the generated id")

	rec2, job := testutil.MakeJSONRequest(nil, "", r, "/jobs/"+insertedID, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, insertedID, job["_id"])
	assert.Equal(t, "Site Reliability Engineer", job["title"])
	assert.Equal(t, "CloudWorks", job["company"])
	assert.Equal(t, "hr@cloudworks.example", job["hr_email"])
	// arbitrary extra fields are stored verbatim
	assert.Len(t, job["perks"], 2)
}

func TestGetJobs_NoFilterReturnsAll(t *testing.T) {
	r := newEngine()

	rec, jobs := testutil.MakeListRequest("", r, "/jobs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(jobs), 3)
}

func TestGetJobs_FilterByEmail(t *testing.T) {
	r := newEngine()

	rec, jobs := testutil.MakeListRequest("", r, "/jobs?email="+database.TestHREmail)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(jobs), 2)
	for _, job := range jobs {
		assert.Equal(t, database.TestHREmail, job["hr_email"])
	}

	rec2, none := testutil.MakeListRequest("", r, "/jobs?email=nobody@example.com")
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Len(t, none, 0)
}

func TestGetJobByID_Malformed(t *testing.T) {
	r := newEngine()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs/not-an-id", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Invalid id parameter")
}

func TestGetJobByID_Missing(t *testing.T) {
	r := newEngine()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/jobs/"+primitive.NewObjectID().Hex(), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestDeleteJob_NonexistentIDYieldsZeroCount(t *testing.T) {
	r := newEngine()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/postedJobs/"+primitive.NewObjectID().Hex(), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), resp["DeletedCount"])
}

func TestDeleteJob_RemovesJob(t *testing.T) {
	r := newEngine()

	_, created := testutil.MakeJSONRequest(gin.H{"title": "Throwaway"}, "", r, "/jobs", http.MethodPost)
	insertedID, ok := created["InsertedID"].(string)
	assert.True(t, ok)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/postedJobs/"+insertedID, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["DeletedCount"])

	rec2, _ := testutil.MakeJSONRequest(nil, "", r, "/jobs/"+insertedID, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}
