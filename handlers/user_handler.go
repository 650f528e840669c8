package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"staffhub/auth"
	"staffhub/models"
	"staffhub/repository"
	"staffhub/validation"

	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	Repo      repository.UserRepository
	JWTSecret string
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates a new account. Uniqueness is double-checked here for a
// friendly message, but the store's unique constraint is what makes racing
// signups safe.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Status:  false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	violations := validation.SignupRules().Validate(map[string]string{
		"username": req.Username,
		"email":    req.Email,
		"password": req.Password,
	})
	if len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	if _, err := h.Repo.FindByUsernameOrEmail(r.Context(), req.Username, req.Email); err == nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Status:  false,
			Message: "User already exists",
		})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		h.storeError(w, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.storeError(w, err)
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := h.Repo.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Status:  false,
				Message: "User already exists",
			})
			return
		}
		h.storeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Status:  true,
		Message: "User created successfully",
		Data:    map[string]string{"user_id": user.ID},
	})
}

// Login checks credentials and hands out a signed token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Status:  false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	fields := map[string]string{"password": req.Password}
	if req.Username != "" {
		fields["username"] = req.Username
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}

	violations := validation.LoginRules().Validate(fields)
	if len(violations) > 0 {
		writeValidationErrors(w, violations)
		return
	}

	if req.Username == "" && req.Email == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Status:  false,
			Message: "Please provide either username or email to log in",
		})
		return
	}

	user, err := h.Repo.FindByUsernameOrEmail(r.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Status:  false,
				Message: "User does not exist",
			})
			return
		}
		h.storeError(w, err)
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Status:  false,
			Message: "Incorrect password",
		})
		return
	}

	token, err := auth.IssueToken(user.ID, user.Username, h.JWTSecret)
	if err != nil {
		h.storeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Status:  true,
		Message: "Login successful",
		Data:    map[string]string{"token": token},
	})
}

func (h *UserHandler) storeError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("user operation failed")
	writeJSON(w, http.StatusInternalServerError, ApiResponse{
		Status:  false,
		Message: err.Error(),
	})
}
