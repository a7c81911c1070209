package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/models"
)

type AssignmentHandler struct {
	collection *mongo.Collection
}

func NewAssignmentHandler(client *mongo.Client, dbName string) *AssignmentHandler {
	return &AssignmentHandler{
		collection: client.Database(dbName).Collection("assignments"),
	}
}

// assignmentUpdateDoc builds the $set document for an assignment update. Only
// the editable field set is copied; anything else in the request is dropped.
func assignmentUpdateDoc(a models.Assignment) bson.M {
	return bson.M{
		"$set": bson.M{
			"title":           a.Title,
			"description":     a.Description,
			"marks":           a.Marks,
			"difficultyLevel": a.DifficultyLevel,
			"dueDate":         a.DueDate,
			"photoURL":        a.PhotoURL,
		},
	}
}

// GetAssignments retrieves all assignments
func (h *AssignmentHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Failed to fetch assignments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err = cursor.All(ctx, &assignments); err != nil {
		http.Error(w, "Error decoding assignments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assignments)
}

// CreateAssignment inserts a new assignment and returns the driver's insert
// acknowledgement.
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var newAssignment models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&newAssignment); err != nil {
		log.Print(err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.InsertOne(ctx, newAssignment)
	if err != nil {
		http.Error(w, "Failed to create assignment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetAssignmentByID returns a single assignment, or null when the id matches
// nothing.
func (h *AssignmentHandler) GetAssignmentByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		http.Error(w, "Invalid assignment ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	var assignment models.Assignment
	err = h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			json.NewEncoder(w).Encode(nil)
		} else {
			http.Error(w, "Failed to fetch assignment", http.StatusInternalServerError)
		}
		return
	}

	json.NewEncoder(w).Encode(assignment)
}

// UpdateAssignment replaces the editable fields of an assignment
func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		http.Error(w, "Invalid assignment ID", http.StatusBadRequest)
		return
	}

	var updatedAssignment models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&updatedAssignment); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, assignmentUpdateDoc(updatedAssignment))
	if err != nil {
		log.Printf("Error updating assignment: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteAssignment deletes an assignment
func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		http.Error(w, "Invalid assignment ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		http.Error(w, "Failed to delete assignment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
