package application

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/auth"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/database"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/middleware"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/model"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/testutil"
)

var testDB *database.Service

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var appTeardown func(context.Context) error
	appTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if appTeardown != nil {
		_ = appTeardown(ctx)
	}
}

func newEngine() *gin.Engine {
	r := gin.New()
	ac := NewApplicationController(testDB)
	r.GET("/viewApplications/:id", ac.GetApplicationsByJob)
	r.GET("/applications", middleware.VerifyToken(), ac.GetApplicationsByApplicant)
	r.POST("/applications", ac.CreateApplication)
	r.PATCH("/status/:id", ac.UpdateStatus)
	r.DELETE("/applications/:id", ac.DeleteApplication)
	return r
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	signed, err := auth.IssueToken(map[string]interface{}{"email": email})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return signed
}

func seedJob(t *testing.T, job model.Job) model.Job {
	t.Helper()
	job.ID = primitive.NewObjectID()
	if _, err := testDB.Jobs().InsertOne(context.Background(), job); err != nil {
		t.Fatalf("failed to seed job: %v", err)
	}
	return job
}

func seedApplications(t *testing.T, docs []bson.M) {
	t.Helper()
	raw := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		raw = append(raw, doc)
	}
	if _, err := testDB.Applications().InsertMany(context.Background(), raw); err != nil {
		t.Fatalf("failed to seed applications: %v", err)
	}
}

func TestGetApplicationsByApplicant_EnrichmentSurvivesDanglingReference(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "application-secret")
	r := newEngine()

	jobA := seedJob(t, model.Job{
		Title: "Go Developer", Company: "Alpha", Location: "Dhaka",
		ApplicationDeadline: "2030-06-30", HREmail: "hr@alpha.example",
	})
	jobC := seedJob(t, model.Job{
		Title: "Rust Developer", Company: "Gamma", Location: "Remote",
		ApplicationDeadline: "2030-07-31", HREmail: "hr@gamma.example",
	})
	deletedJobID := primitive.NewObjectID().Hex() // never inserted, same as deleted

	email := "order@example.com"
	seedApplications(t, []bson.M{
		{"email": email, "jobId": jobA.ID.Hex(), "status": model.ApplicationStatusPending},
		{"email": email, "jobId": deletedJobID, "status": model.ApplicationStatusPending},
		{"email": email, "jobId": jobC.ID.Hex(), "status": model.ApplicationStatusPending},
	})

	rec, apps := testutil.MakeListRequest(tokenFor(t, email), r, "/applications?email="+email)
	assert.Equal(t, http.StatusOK, rec.Code)
	if !assert.Len(t, apps, 3) {
		return
	}

	// original order, no item dropped
	assert.Equal(t, jobA.ID.Hex(), apps[0]["jobId"])
	assert.Equal(t, deletedJobID, apps[1]["jobId"])
	assert.Equal(t, jobC.ID.Hex(), apps[2]["jobId"])

	assert.Equal(t, "Alpha", apps[0]["company"])
	assert.Equal(t, "Go Developer", apps[0]["title"])
	assert.Equal(t, "2030-06-30", apps[0]["applicationDeadline"])
	assert.Equal(t, "Dhaka", apps[0]["location"])

	_, enriched := apps[1]["company"]
	assert.False(t, enriched, "dangling reference must pass through unenriched")

	assert.Equal(t, "Gamma", apps[2]["company"])
	assert.Equal(t, "Remote", apps[2]["location"])
}

func TestGetApplicationsByApplicant_MalformedJobID(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "application-secret")
	r := newEngine()

	job := seedJob(t, model.Job{
		Title: "QA Engineer", Company: "Beta", Location: "Sylhet",
		ApplicationDeadline: "2030-08-31", HREmail: "hr@beta.example",
	})

	email := "malformed@example.com"
	seedApplications(t, []bson.M{
		{"email": email, "jobId": "not-an-id", "status": model.ApplicationStatusPending},
		{"email": email, "jobId": job.ID.Hex(), "status": model.ApplicationStatusPending},
	})

	rec, apps := testutil.MakeListRequest(tokenFor(t, email), r, "/applications?email="+email)
	assert.Equal(t, http.StatusOK, rec.Code)
	if !assert.Len(t, apps, 2) {
		return
	}

	_, enriched := apps[0]["company"]
	assert.False(t, enriched, "malformed reference must pass through unenriched")
	assert.Equal(t, "Beta", apps[1]["company"])
}

func TestGetApplicationsByApplicant_NoCookie(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "application-secret")
	r := newEngine()

	rec, _ := testutil.MakeListRequest("", r, "/applications?email=whoever@example.com")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetApplicationsByApplicant_EmailMismatch(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "application-secret")
	r := newEngine()

	token := tokenFor(t, "me@example.com")
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/applications?email=someoneelse@example.com", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden access", resp["error"])
}

func TestGetApplicationsByJob(t *testing.T) {
	r := newEngine()

	rec, apps := testutil.MakeListRequest("", r, "/viewApplications/"+database.TestJob1.ID.Hex())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, len(apps), 1)
	for _, app := range apps {
		assert.Equal(t, database.TestJob1.ID.Hex(), app["jobId"])
	}
}

func TestCreateApplication(t *testing.T) {
	r := newEngine()

	body := gin.H{
		"jobId":       database.TestJob3.ID.Hex(),
		"email":       "fresh@example.com",
		"status":      model.ApplicationStatusPending,
		"coverLetter": "I would like to apply.",
	}
	rec, resp := testutil.MakeJSONRequest(body, "", r, "/applications", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	insertedID, ok := resp["InsertedID"].(string)
	assert.True(t, ok)

	oid, err := primitive.ObjectIDFromHex(insertedID)
	assert.NoError(t, err)

	stored := bson.M{}
	err = testDB.Applications().FindOne(context.Background(), bson.M{"_id": oid}).Decode(&stored)
	assert.NoError(t, err)
	assert.Equal(t, "I would like to apply.", stored["coverLetter"])
}

func TestUpdateStatus_TouchesOnlyStatusField(t *testing.T) {
	r := newEngine()

	id := primitive.NewObjectID()
	seedApplications(t, []bson.M{{
		"_id":         id,
		"email":       "keep@example.com",
		"jobId":       database.TestJob1.ID.Hex(),
		"status":      model.ApplicationStatusPending,
		"coverLetter": "unchanged",
	}})

	rec, resp := testutil.MakeJSONRequest(
		gin.H{"status": model.ApplicationStatusAccepted},
		"", r, "/status/"+id.Hex(), http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["ModifiedCount"])

	stored := bson.M{}
	err := testDB.Applications().FindOne(context.Background(), bson.M{"_id": id}).Decode(&stored)
	assert.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusAccepted, stored["status"])
	assert.Equal(t, "keep@example.com", stored["email"])
	assert.Equal(t, "unchanged", stored["coverLetter"])
}

func TestUpdateStatus_MalformedID(t *testing.T) {
	r := newEngine()

	rec, _ := testutil.MakeJSONRequest(gin.H{"status": "x"}, "", r, "/status/not-an-id", http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteApplication(t *testing.T) {
	r := newEngine()

	id := primitive.NewObjectID()
	seedApplications(t, []bson.M{{
		"_id":    id,
		"email":  "delete-me@example.com",
		"jobId":  database.TestJob2.ID.Hex(),
		"status": model.ApplicationStatusPending,
	}})

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/applications/"+id.Hex(), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["DeletedCount"])

	rec2, resp2 := testutil.MakeJSONRequest(nil, "", r, "/applications/"+id.Hex(), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, float64(0), resp2["DeletedCount"])
}
