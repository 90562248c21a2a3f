package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/songwish/apiserver/internal/services"
	"github.com/songwish/apiserver/internal/store"
	"github.com/songwish/apiserver/internal/validate"
	"github.com/songwish/apiserver/types"
)

// The OTP check is a hardcoded stand-in per the product contract, not a
// real one-time-password flow.
const mockOTP = "1234"

// UserHandler provides registration, OTP and login endpoints.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler constructs a handler with the provided service.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRouter registers user routes on the given router.
func UserRouter(r chi.Router, userService *services.UserService) {
	handler := NewUserHandler(userService)

	r.Post("/register", handler.Register)
	r.Post("/otp/verify", handler.VerifyOTP)
	r.Post("/login", handler.Login)
}

type RegisterRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
	Genre  string `json:"genre"`
}

// Register creates a new user record and returns it with its identifier.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Gender = strings.TrimSpace(req.Gender)
	req.Genre = strings.TrimSpace(req.Genre)

	if issues := validate.Registration(req.Name, req.Phone, req.Email, req.Gender, req.Genre); len(issues) > 0 {
		writeIssues(w, issues)
		return
	}

	user, err := h.userService.Register(r.Context(), types.User{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Gender: req.Gender,
		Genre:  req.Genre,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type OTPRequest struct {
	// OTP is decoded as any: only the exact JSON string "1234" verifies.
	OTP any `json:"otp"`
}

type OTPResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// VerifyOTP accepts the fixed mock code and rejects everything else.
func (h *UserHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, OTPResponse{OK: false, Message: "Invalid OTP"})
		return
	}

	if otp, ok := req.OTP.(string); ok && otp == mockOTP {
		writeJSON(w, http.StatusOK, OTPResponse{OK: true})
		return
	}

	writeJSON(w, http.StatusBadRequest, OTPResponse{OK: false, Message: "Invalid OTP"})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login looks up a record by email. The password is required to be present
// but is never checked: this endpoint is a deliberate mock, not a real
// authentication mechanism.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := h.userService.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
