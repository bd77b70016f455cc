package services

import (
	"context"

	"github.com/cyberledger/cyberledger_backend/internal/dto"
)

// AuthSvcFacade opens a session from the 4-digit PIN.
type AuthSvcFacade interface {
	// Unlock checks the PIN against the configured hash and issues a session
	// token. A wrong PIN comes back as apperrors.ErrUnauthorized.
	Unlock(ctx context.Context, req dto.UnlockRequest) (*dto.UnlockResponse, error)
	// PinConfigured reports whether a PIN hash is configured at all. Without
	// one the API runs unlocked and the auth middleware is not registered.
	PinConfigured() bool
}
