package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/config"
	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/handlers"
	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/middleware"
)

func SetupRouter(client *mongo.Client, cfg config.Config) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	guard := middleware.RequireSession([]byte(cfg.AccessTokenSecret))

	// guardIf wraps a handler with the session guard when enabled for the
	// deployment; guard coverage on some routes is configurable.
	guardIf := func(enabled bool, h http.HandlerFunc) http.Handler {
		if enabled {
			return guard(h)
		}
		return h
	}

	// Liveness endpoints
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is running"))
	}).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	sessionHandler := handlers.NewSessionHandler(cfg.AccessTokenSecret, cfg.TokenTTL)
	assignmentHandler := handlers.NewAssignmentHandler(client, cfg.DatabaseName)
	submissionHandler := handlers.NewSubmissionHandler(client, cfg.DatabaseName, cfg.SMTP)

	// Session
	router.HandleFunc("/jwt", sessionHandler.IssueToken).Methods("POST")
	router.HandleFunc("/logout", sessionHandler.Logout).Methods("POST")

	// Assignments
	router.HandleFunc("/assignment", assignmentHandler.GetAssignments).Methods("GET")
	router.HandleFunc("/assignment", assignmentHandler.CreateAssignment).Methods("POST")
	router.Handle("/assignment/update/{id}", guardIf(cfg.ProtectAssignmentRead, assignmentHandler.GetAssignmentByID)).Methods("GET")
	router.Handle("/assignment/update/{id}", guardIf(cfg.ProtectAssignmentWrite, assignmentHandler.UpdateAssignment)).Methods("PUT")
	router.Handle("/assignment/{id}", guardIf(cfg.ProtectAssignmentWrite, assignmentHandler.DeleteAssignment)).Methods("DELETE")

	// Submissions
	router.Handle("/myAssignment", guard(http.HandlerFunc(submissionHandler.GetSubmissions))).Methods("GET")
	router.Handle("/myAssignment", guard(http.HandlerFunc(submissionHandler.CreateSubmission))).Methods("POST")
	router.Handle("/myAssignment/filter", guard(http.HandlerFunc(submissionHandler.FilterByStatus))).Methods("GET")
	router.Handle("/myAssignment/filterbyemail", guard(http.HandlerFunc(submissionHandler.FilterByEmail))).Methods("GET")
	router.Handle("/myAssignment/markUpdate/{id}", guard(http.HandlerFunc(submissionHandler.GradeSubmission))).Methods("PATCH")
	router.Handle("/myAssignment/{id}", guard(http.HandlerFunc(submissionHandler.UpdateSubmission))).Methods("PUT")
	router.Handle("/myAssignment/{id}", guardIf(cfg.ProtectSubmissionDelete, submissionHandler.DeleteSubmission)).Methods("DELETE")

	return router
}
