package handlers

import (
	"encoding/json"
	"net/http"

	"staffhub/validation"
)

// ApiResponse is the JSON envelope every endpoint replies with.
type ApiResponse struct {
	Status  bool                    `json:"status"`
	Message string                  `json:"message,omitempty"`
	Data    interface{}             `json:"data,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeValidationErrors(w http.ResponseWriter, violations []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, ApiResponse{
		Status:  false,
		Message: "Validation failed",
		Errors:  violations,
	})
}
