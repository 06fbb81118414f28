package database

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/niloyahmadramjan/JobBasket-crud/internal/model"
)

var testDBInstance *Service
var teardown func(context.Context) error

// Exported seeded fixtures for controller tests.
var (
	TestHREmail        = "hr@technova.example"
	TestApplicantEmail = "applicant@example.com"

	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job

	TestApplication1 m.Application
	TestApplication2 m.Application
)

// GetTestDB starts a MongoDB test container and returns a teardown function,
// the DB instance, and any error encountered during setup. The container and
// instance are cached for the lifetime of the test binary.
func GetTestDB() (func(context.Context) error, *Service, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	dbContainer, err := mongodb.Run(context.Background(), "mongo:7")
	if err != nil {
		return nil, nil, err
	}

	connStr, err := dbContainer.ConnectionString(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		DBName:    defaultDBName,
		Constr:    connStr,
		useConstr: true,
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample jobs and applications if the collections are
// still empty, and fills the exported fixture variables either way.
func seedTestData(db *Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.Jobs().CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return loadTestData(db)
	}

	deadline1 := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	deadline2 := time.Now().AddDate(0, 2, 0).Format("2006-01-02")
	deadline3 := time.Now().AddDate(0, 3, 0).Format("2006-01-02")

	jobs := []m.Job{
		{
			ID:                  primitive.NewObjectID(),
			Title:               "Backend Engineer",
			Company:             "TechNova",
			Location:            "Dhaka (Hybrid)",
			ApplicationDeadline: deadline1,
			HREmail:             TestHREmail,
		},
		{
			ID:                  primitive.NewObjectID(),
			Title:               "Frontend Developer",
			Company:             "TechNova",
			Location:            "Remote",
			ApplicationDeadline: deadline2,
			HREmail:             TestHREmail,
		},
		{
			ID:                  primitive.NewObjectID(),
			Title:               "Data Analyst",
			Company:             "DataForge",
			Location:            "Chittagong (On-site)",
			ApplicationDeadline: deadline3,
			HREmail:             "hr@dataforge.example",
		},
	}

	docs := make([]interface{}, 0, len(jobs))
	for _, j := range jobs {
		docs = append(docs, j)
	}
	if _, err := db.Jobs().InsertMany(ctx, docs); err != nil {
		return err
	}
	TestJob1, TestJob2, TestJob3 = jobs[0], jobs[1], jobs[2]

	applications := []m.Application{
		{
			ID:     primitive.NewObjectID(),
			JobID:  TestJob1.ID.Hex(),
			Email:  TestApplicantEmail,
			Status: m.ApplicationStatusPending,
		},
		{
			ID:     primitive.NewObjectID(),
			JobID:  TestJob2.ID.Hex(),
			Email:  TestApplicantEmail,
			Status: m.ApplicationStatusInConsideration,
		},
	}

	appDocs := make([]interface{}, 0, len(applications))
	for _, a := range applications {
		appDocs = append(appDocs, a)
	}
	if _, err := db.Applications().InsertMany(ctx, appDocs); err != nil {
		return err
	}
	TestApplication1, TestApplication2 = applications[0], applications[1]

	return nil
}

// loadTestData populates the exported variables when records already exist.
func loadTestData(db *Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.Jobs().Find(ctx, bson.M{"hr_email": TestHREmail})
	if err != nil {
		return err
	}
	var jobs []m.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return err
	}
	if len(jobs) < 2 {
		return fmt.Errorf("expected seeded jobs, found %d", len(jobs))
	}
	TestJob1, TestJob2 = jobs[0], jobs[1]

	if err := db.Jobs().FindOne(ctx, bson.M{"company": "DataForge"}).Decode(&TestJob3); err != nil {
		return err
	}

	appCursor, err := db.Applications().Find(ctx, bson.M{"email": TestApplicantEmail})
	if err != nil {
		return err
	}
	var applications []m.Application
	if err := appCursor.All(ctx, &applications); err != nil {
		return err
	}
	if len(applications) < 2 {
		return fmt.Errorf("expected seeded applications, found %d", len(applications))
	}
	TestApplication1, TestApplication2 = applications[0], applications[1]

	return nil
}
