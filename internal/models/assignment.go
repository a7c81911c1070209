package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Assignment is a teacher-authored task definition. Field names match the
// wire format used by the group-study frontend.
type Assignment struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Marks           float64            `json:"marks" bson:"marks"`
	DifficultyLevel DifficultyLevel    `json:"difficultyLevel" bson:"difficultyLevel"`
	DueDate         string             `json:"dueDate" bson:"dueDate"`
	PhotoURL        string             `json:"photoURL" bson:"photoURL"`
}
