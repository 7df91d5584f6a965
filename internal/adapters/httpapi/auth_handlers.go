package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime/types"

	"github.com/wanderplan/travel-planner-api/internal/app/users"
	"github.com/wanderplan/travel-planner-api/internal/domain"
)

type signUpRequest struct {
	Username    string      `json:"username" validate:"required,min=3,max=50"`
	Email       types.Email `json:"email" validate:"required"`
	Password    string      `json:"password" validate:"required,min=8"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	PhoneNumber *string     `json:"phoneNumber,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"type"`

	ID        domain.UserID `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName,omitempty"`
	LastName  string        `json:"lastName,omitempty"`
	Role      string        `json:"role"`
}

type profileResponse struct {
	ID          domain.UserID `json:"id"`
	Username    string        `json:"username"`
	Email       string        `json:"email"`
	FirstName   string        `json:"firstName,omitempty"`
	LastName    string        `json:"lastName,omitempty"`
	PhoneNumber *string       `json:"phoneNumber,omitempty"`
	Role        string        `json:"role"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid signup request", validationDetails(err))
		return
	}

	res, err := s.users.SignUp(r.Context(), users.SignUpInput{
		Username:    req.Username,
		Email:       string(req.Email),
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAuthResponse(res))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid login request", validationDetails(err))
		return
	}

	res, err := s.users.Login(r.Context(), users.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(res))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", nil)
		return
	}

	u, err := s.users.GetByUsername(r.Context(), string(caller))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	})
}

func (s *Server) handleCheckUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	exists, err := s.users.UsernameExists(r.Context(), username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (s *Server) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	exists, err := s.users.EmailExists(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// handleGenerateToken reissues a bearer token for the already-authenticated
// caller.
func (s *Server) handleGenerateToken(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", nil)
		return
	}

	token, err := s.signer.Sign(string(caller))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"type":  "Bearer",
	})
}

func toAuthResponse(res users.AuthResult) authResponse {
	return authResponse{
		Token:     res.Token,
		TokenType: res.TokenType,
		ID:        res.UserID,
		Username:  res.Username,
		Email:     res.Email,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Role:      res.Role,
	}
}

// validationDetails flattens validator errors to a field -> violated-rule map.
func validationDetails(err error) map[string]any {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
