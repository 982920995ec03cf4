package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

func GenerateSessionToken() string {
	return uuid.New().String()
}

// ==================== ACCESS CODE ====================

// GenerateAccessCode creates the numeric code a user punches into the
// locker keypad after check-in.
func GenerateAccessCode(length int) string {
	if length <= 0 {
		length = 6
	}

	rand.New(rand.NewSource(time.Now().UnixNano()))

	code := ""
	for i := 0; i < length; i++ {
		code += fmt.Sprintf("%d", rand.Intn(10))
	}

	return code
}
