package entities

import "encoding/json"

// Envelope is the uniform response wrapper. Some endpoints return the
// payload bare instead.
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   *string         `json:"message"`
	ErrorCode *string         `json:"errorCode"`
}
