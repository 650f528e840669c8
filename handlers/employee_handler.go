package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"staffhub/middleware"
	"staffhub/models"
	"staffhub/repository"
	"staffhub/storage"
	"staffhub/validation"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// maxImageSize caps a single profile image at 2 MB.
	maxImageSize = 2 << 20
	// maxBodySize caps the whole request, image plus form fields.
	maxBodySize = 4 << 20
)

type EmployeeHandler struct {
	Repo  repository.EmployeeRepository
	Store storage.ImageStore
}

// employeeInput is the flattened request body: every field as a string for
// the validator, presence tracked by map membership, plus an optional image.
type employeeInput struct {
	fields    map[string]string
	imageData []byte
	imageName string
}

// parseInput accepts either a JSON body or a multipart form with an
// optional profile_image part.
func parseInput(w http.ResponseWriter, r *http.Request) (*employeeInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	in := &employeeInput{fields: map[string]string{}}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			return nil, fmt.Errorf("invalid multipart form: %w", err)
		}
		for key, values := range r.MultipartForm.Value {
			if len(values) > 0 {
				in.fields[key] = values[0]
			}
		}

		file, header, err := r.FormFile("profile_image")
		if err != nil {
			if err == http.ErrMissingFile {
				return in, nil
			}
			return nil, fmt.Errorf("invalid image upload: %w", err)
		}
		defer file.Close()

		if header.Size > maxImageSize {
			return nil, errors.New("Profile image must not exceed 2MB")
		}
		data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
		if err != nil {
			return nil, fmt.Errorf("could not read image: %w", err)
		}
		if len(data) > maxImageSize {
			return nil, errors.New("Profile image must not exceed 2MB")
		}
		if !strings.HasPrefix(http.DetectContentType(data), "image/") {
			return nil, errors.New("Only image files are allowed")
		}
		in.imageData = data
		in.imageName = header.Filename
		return in, nil
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid request payload: %w", err)
	}
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			in.fields[key] = v
		case float64:
			in.fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			// treat explicit null as absent
		default:
			in.fields[key] = fmt.Sprintf("%v", v)
		}
	}
	return in, nil
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := parseInput(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Status: false, Message: err.Error()})
		return
	}

	if violations := validation.EmployeeCreateRules().Validate(in.fields); len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	emp := &models.Employee{
		FirstName:  strings.TrimSpace(in.fields["first_name"]),
		LastName:   strings.TrimSpace(in.fields["last_name"]),
		Email:      strings.TrimSpace(in.fields["email"]),
		Position:   strings.TrimSpace(in.fields["position"]),
		Department: strings.TrimSpace(in.fields["department"]),
	}
	if v, ok := in.fields["salary"]; ok && v != "" {
		salary, _ := strconv.ParseFloat(v, 64)
		emp.Salary = &salary
	}
	if v, ok := in.fields["date_of_joining"]; ok && v != "" {
		date, _ := validation.ParseISODate(v)
		emp.DateOfJoining = &date
	}

	// Persist the image before the record that references it.
	if in.imageData != nil {
		path, err := h.Store.Save(r.Context(), in.imageName, in.imageData)
		if err != nil {
			h.storeError(w, err)
			return
		}
		emp.ProfileImage = &path
	}

	if err := h.Repo.Create(r.Context(), emp); err != nil {
		// the record never landed, so the image it references is orphaned
		if emp.ProfileImage != nil {
			if delErr := h.Store.Delete(r.Context(), *emp.ProfileImage); delErr != nil {
				logrus.WithError(delErr).Warn("could not remove orphaned image")
			}
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Status:  false,
				Message: "Employee with this email already exists",
			})
			return
		}
		h.storeError(w, err)
		return
	}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		logrus.WithFields(logrus.Fields{
			"employee_id": emp.ID,
			"by":          claims.Username,
		}).Info("employee created")
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Status:  true,
		Message: "Employee created successfully",
		Data:    emp,
	})
}

// GetAll handles GET /employees.
func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Status: true, Data: list})
}

// Search handles GET /employees/search?department=&position=.
func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	position := r.URL.Query().Get("position")
	if department == "" && position == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Status:  false,
			Message: "Please provide department or position to search",
		})
		return
	}

	list, err := h.Repo.Search(r.Context(), department, position)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Status: true, Data: list})
}

// GetByID handles GET /employees/{id}.
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		h.lookupError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Status: true, Data: emp})
}

// Update handles PUT /employees/{id} with partial semantics: only supplied
// fields change.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	in, err := parseInput(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Status: false, Message: err.Error()})
		return
	}

	if violations := validation.EmployeeUpdateRules().Validate(in.fields); len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	fields := map[string]interface{}{}
	for _, key := range []string{"first_name", "last_name", "email", "position", "department"} {
		if v, ok := in.fields[key]; ok {
			fields[key] = strings.TrimSpace(v)
		}
	}
	if v, ok := in.fields["salary"]; ok && v != "" {
		salary, _ := strconv.ParseFloat(v, 64)
		fields["salary"] = salary
	}
	if v, ok := in.fields["date_of_joining"]; ok && v != "" {
		date, _ := validation.ParseISODate(v)
		fields["date_of_joining"] = date
	}

	oldImage := ""
	if in.imageData != nil {
		if current, err := h.Repo.FindByID(r.Context(), id); err == nil && current.ProfileImage != nil {
			oldImage = *current.ProfileImage
		}
		path, err := h.Store.Save(r.Context(), in.imageName, in.imageData)
		if err != nil {
			h.storeError(w, err)
			return
		}
		fields["profile_image"] = path
	}

	emp, err := h.Repo.UpdateByID(r.Context(), id, fields)
	if err != nil {
		if path, ok := fields["profile_image"].(string); ok {
			if delErr := h.Store.Delete(r.Context(), path); delErr != nil {
				logrus.WithError(delErr).Warn("could not remove orphaned image")
			}
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Status:  false,
				Message: "Employee with this email already exists",
			})
			return
		}
		h.lookupError(w, id, err)
		return
	}

	// the new reference is persisted, the replaced image can go
	if path, ok := fields["profile_image"].(string); ok && oldImage != "" && oldImage != path {
		if delErr := h.Store.Delete(r.Context(), oldImage); delErr != nil {
			logrus.WithError(delErr).Warn("could not remove replaced image")
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Status:  true,
		Message: "Employee details updated successfully",
		Data:    emp,
	})
}

// Delete handles DELETE /employees/{id}.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	if err := h.Repo.DeleteByID(r.Context(), id); err != nil {
		h.lookupError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// employeeID validates the path identifier before any store access; a
// malformed id is a client error distinct from not-found.
func employeeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Status:  false,
			Message: "Invalid employee ID",
		})
		return "", false
	}
	return id, true
}

func (h *EmployeeHandler) lookupError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Status:  false,
			Message: fmt.Sprintf("Employee for this ID %s is not found", id),
		})
		return
	}
	h.storeError(w, err)
}

func (h *EmployeeHandler) storeError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("employee operation failed")
	writeJSON(w, http.StatusInternalServerError, ApiResponse{
		Status:  false,
		Message: err.Error(),
	})
}
