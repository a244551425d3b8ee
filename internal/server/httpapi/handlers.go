package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string                `json:"message"`
	User    models.AccountSummary `json:"user"`
}

type loginResponse struct {
	Message string                `json:"message"`
	Token   string                `json:"token"`
	User    models.AccountSummary `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Identity service is up"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := s.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())

		var ce *common.ConflictError
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, "All fields are required")
		case errors.As(err, &ce):
			if ce.Field == "email" {
				writeError(w, http.StatusConflict, "Email already registered")
			} else {
				writeError(w, http.StatusConflict, "Username already exists")
			}
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", account.Username)
	writeJSON(w, http.StatusCreated, registerResponse{
		Message: "Account created successfully",
		User:    account.Summary(),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, token, err := s.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(w, http.StatusUnauthorized, "Invalid password")
		default:
			s.logger.Error(r.Context(), err.Error())
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    account.Summary(),
	})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	result, err := s.accounts.ListAccounts(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetSelf(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access denied, no token provided")
		return
	}

	account, err := s.accounts.GetSelf(r.Context(), subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, account.Summary())
}
