// internal/controller/middleware.go
package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/pracharai/campaign-backend/internal/logx"
)

// CORS adds the permissive cross-origin headers every response carries and
// answers OPTIONS preflights directly, regardless of path or body.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "OPTIONS,POST")
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")

		if r.Method == http.MethodOptions {
			writeJSON(w, http.StatusOK, map[string]string{"message": "CORS preflight successful"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Recover converts handler panics into the JSON 500 body, tagged with the
// request id for correlation.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				reqID := middleware.GetReqID(r.Context())
				logx.L().Errorw("unhandled panic", "panic", rec, "request_id", reqID)
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error":      "Internal Server Error",
					"message":    "An unexpected error occurred while processing your request",
					"request_id": reqID,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
