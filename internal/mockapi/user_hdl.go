package mockapi

import (
	"encoding/json"
	"net/http"

	"locker-rental/internal/dto/request"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	store *Store
	log   *zap.Logger
}

func NewUserHandler(store *Store, log *zap.Logger) *UserHandler {
	return &UserHandler{
		store: store,
		log:   log.With(zap.String("handler", "user")),
	}
}

// UpdateProfile handles PATCH /users/profile (protected)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.store.UpdateUser(userID, req.Name, req.Phone)
	if err != nil {
		utils.ResponseNotFound(w, err.Error())
		return
	}

	h.log.Info("Profile updated", zap.String("user_id", userID))
	utils.ResponseSuccess(w, "success", user)
}
