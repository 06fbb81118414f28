package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Job is the typed view of a job posting document. Employers may attach
// arbitrary extra fields; those are stored verbatim and only the fields
// below are read back by the service itself.
type Job struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title               string             `bson:"title" json:"title"`
	Company             string             `bson:"company" json:"company"`
	Location            string             `bson:"location" json:"location"`
	ApplicationDeadline string             `bson:"applicationDeadline" json:"applicationDeadline"`
	HREmail             string             `bson:"hr_email" json:"hr_email"`
}
