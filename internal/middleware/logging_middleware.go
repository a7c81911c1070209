package middleware

import (
	"log"
	"net/http"
)

// RequestLogger logs every incoming request before it is dispatched.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("called: %s %s%s", r.Method, r.Host, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
