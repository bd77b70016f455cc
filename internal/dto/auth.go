package dto

// UnlockRequest carries the 4-digit PIN submitted to open a session.
type UnlockRequest struct {
	Pin string `json:"pin" binding:"required,len=4,numeric"`
}

// UnlockResponse carries the bearer token for subsequent API calls.
type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// SessionResponse describes the current session. Subject is empty when the
// API runs without a configured PIN.
type SessionResponse struct {
	Subject     string `json:"subject"`
	PinRequired bool   `json:"pinRequired"`
}
