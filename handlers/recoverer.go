package handlers

import (
	"net/http"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Recoverer turns a handler panic into a 500 response instead of killing
// the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				logrus.WithField("panic", rec).Errorf("panic recovered:\n%s", stack)
				writeJSON(w, http.StatusInternalServerError, ApiResponse{
					Status:  false,
					Message: "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
