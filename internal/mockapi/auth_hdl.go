package mockapi

import (
	"encoding/json"
	"net/http"

	"locker-rental/internal/dto/request"
	"locker-rental/internal/dto/response"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	store *Store
	log   *zap.Logger
}

func NewAuthHandler(store *Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		store: store,
		log:   log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.store.CreateUser(req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	token, expiresAt := h.store.CreateSession(user.ID)
	h.log.Info("User registered", zap.String("user_id", user.ID), zap.String("email", user.Email))

	utils.ResponseCreated(w, "success", response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	token, expiresAt := h.store.CreateSession(user.ID)
	h.log.Info("User logged in", zap.String("user_id", user.ID))

	utils.ResponseSuccess(w, "success", response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// GetProfile handles GET /auth/profile (protected)
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, found := h.store.GetUser(userID)
	if !found {
		utils.ResponseNotFound(w, "user not found")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errMsg == "invalid credentials" || errMsg == "account is deactivated":
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)
	case errMsg == "email already registered":
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)
	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
