package response

import (
	"encoding/json"
)

// Envelope is the wire shape every API endpoint responds with.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  any             `json:"errors,omitempty"`
}
