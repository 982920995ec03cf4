package response

import (
	"time"

	"locker-rental/internal/data/entity"
)

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      entity.User `json:"user"`
}
