package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/config"
	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/models"
	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/utils"
)

type SubmissionHandler struct {
	collection *mongo.Collection
	smtp       config.SMTPConfig
}

func NewSubmissionHandler(client *mongo.Client, dbName string, smtp config.SMTPConfig) *SubmissionHandler {
	return &SubmissionHandler{
		collection: client.Database(dbName).Collection("myAssignments"),
		smtp:       smtp,
	}
}

// submissionUpdateDoc builds the $set document for a full submission update.
// The grading fields (markGiven, feedBack) are deliberately absent; those only
// change through the markUpdate operation.
func submissionUpdateDoc(s models.Submission) bson.M {
	return bson.M{
		"$set": bson.M{
			"title":           s.Title,
			"description":     s.Description,
			"marks":           s.Marks,
			"difficultyLevel": s.DifficultyLevel,
			"dueDate":         s.DueDate,
			"photoURL":        s.PhotoURL,
			"status":          s.Status,
			"pdfLink":         s.PDFLink,
			"additionalText":  s.AdditionalText,
			"submittedBy":     s.SubmittedBy,
		},
	}
}

// gradeUpdateDoc builds the $set document for the markUpdate operation. It
// must not touch any field outside the grading set.
func gradeUpdateDoc(g models.GradeUpdate) bson.M {
	return bson.M{
		"$set": bson.M{
			"status":    g.Status,
			"markGiven": g.MarkGiven,
			"feedBack":  g.FeedBack,
		},
	}
}

func statusFilter(status string) bson.M {
	return bson.M{"status": status}
}

func ownerFilter(email string) bson.M {
	return bson.M{"submittedBy": email}
}

// GetSubmissions retrieves all submissions
func (h *SubmissionHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	h.findSubmissions(w, r, bson.M{})
}

// FilterByStatus retrieves submissions whose status exactly matches the query
// parameter.
func (h *SubmissionHandler) FilterByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	h.findSubmissions(w, r, statusFilter(status))
}

// FilterByEmail retrieves submissions owned by the given email.
func (h *SubmissionHandler) FilterByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	h.findSubmissions(w, r, ownerFilter(email))
}

func (h *SubmissionHandler) findSubmissions(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, filter)
	if err != nil {
		http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err = cursor.All(ctx, &submissions); err != nil {
		http.Error(w, "Error decoding submissions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submissions)
}

// CreateSubmission inserts a new submission and returns the driver's insert
// acknowledgement.
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var newSubmission models.Submission
	if err := json.NewDecoder(r.Body).Decode(&newSubmission); err != nil {
		log.Print(err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.InsertOne(ctx, newSubmission)
	if err != nil {
		http.Error(w, "Failed to create submission", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// UpdateSubmission replaces the full editable field set of a submission
func (h *SubmissionHandler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	var updatedSubmission models.Submission
	if err := json.NewDecoder(r.Body).Decode(&updatedSubmission); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, submissionUpdateDoc(updatedSubmission))
	if err != nil {
		log.Printf("Error updating submission: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GradeSubmission applies the markUpdate operation: status, markGiven and
// feedBack change, every other field stays as submitted. When SMTP is
// configured the submitter is notified by mail.
func (h *SubmissionHandler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	var grade models.GradeUpdate
	if err := json.NewDecoder(r.Body).Decode(&grade); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	log.Printf("grading submission %s: %+v", id, grade)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.UpdateOne(ctx, bson.M{"_id": objID}, gradeUpdateDoc(grade))
	if err != nil {
		log.Printf("Error grading submission: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if h.smtp.Host != "" && result.MatchedCount > 0 {
		var graded models.Submission
		if err := h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&graded); err == nil && graded.SubmittedBy != "" {
			go h.notifySubmitter(graded)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteSubmission deletes a submission
func (h *SubmissionHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		http.Error(w, "Failed to delete submission", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *SubmissionHandler) notifySubmitter(s models.Submission) {
	subject := fmt.Sprintf("Your submission for %q has been graded", s.Title)
	body := fmt.Sprintf(`
	<html>
	<body>
		<p>Hi,</p>
		<p>Your submission for <b>%s</b> has been reviewed.</p>
		<p>Status: %s<br>Mark: %.0f out of %.0f<br>Feedback: %s</p>
		<p>&copy; Online Group Study. All rights reserved.</p>
	</body>
	</html>`, s.Title, s.Status, s.MarkGiven, s.Marks, s.FeedBack)

	if err := utils.SendEmail(h.smtp, s.SubmittedBy, subject, body); err != nil {
		log.Printf("Failed to send grading notification to %s: %v", s.SubmittedBy, err)
	}
}
