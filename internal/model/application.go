package model

import "go.mongodb.org/mongo-driver/bson/primitive"

var (
	// ApplicationStatusPending indicates that the application is pending review
	ApplicationStatusPending = "pending"
	// ApplicationStatusInConsideration indicates that the application is in consideration and company will contact later
	ApplicationStatusInConsideration = "in consideration"
	// ApplicationStatusAccepted indicates that the application has been accepted
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
)

// Application is the typed view of a job application document. JobID is a
// plain string copy of the referenced job's id: it is not a foreign key,
// may be malformed, and may point at a job that no longer exists.
type Application struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID  string             `bson:"jobId" json:"jobId"`
	Email  string             `bson:"email" json:"email"`
	Status string             `bson:"status" json:"status"`
}
