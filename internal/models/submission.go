package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is a student's attempt at an assignment. The assignment fields
// are copied in at submission time; status is an open workflow string (the
// frontend uses "pending" and "completed" but nothing is enforced here).
type Submission struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Marks           float64            `json:"marks" bson:"marks"`
	DifficultyLevel DifficultyLevel    `json:"difficultyLevel" bson:"difficultyLevel"`
	DueDate         string             `json:"dueDate" bson:"dueDate"`
	PhotoURL        string             `json:"photoURL" bson:"photoURL"`
	Status          string             `json:"status" bson:"status"`
	PDFLink         string             `json:"pdfLink" bson:"pdfLink"`
	AdditionalText  string             `json:"additionalText" bson:"additionalText"`
	SubmittedBy     string             `json:"submittedBy" bson:"submittedBy"`
	MarkGiven       float64            `json:"markGiven" bson:"markGiven"`
	FeedBack        string             `json:"feedBack" bson:"feedBack"`
}

// GradeUpdate is the payload of the markUpdate operation. Only these three
// fields may change when a submission is graded.
type GradeUpdate struct {
	Status    string  `json:"status" bson:"status"`
	MarkGiven float64 `json:"markGiven" bson:"markGiven"`
	FeedBack  string  `json:"feedBack" bson:"feedBack"`
}
