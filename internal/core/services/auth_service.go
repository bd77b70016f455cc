package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cyberledger/cyberledger_backend/internal/apperrors"
	portssvc "github.com/cyberledger/cyberledger_backend/internal/core/ports/services"
	"github.com/cyberledger/cyberledger_backend/internal/dto"
	"github.com/cyberledger/cyberledger_backend/internal/platform/config"
	"github.com/cyberledger/cyberledger_backend/internal/utils"
)

// sessionSubject is the JWT subject for the single-owner session. There are
// no user records; the PIN protects one ledger.
const sessionSubject = "owner"

type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates the PIN unlock service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

func (s *authService) PinConfigured() bool {
	return s.cfg.PinHash != ""
}

func (s *authService) Unlock(ctx context.Context, req dto.UnlockRequest) (*dto.UnlockResponse, error) {
	if !s.PinConfigured() {
		return nil, fmt.Errorf("%w: no PIN configured", apperrors.ErrValidation)
	}
	if !utils.CheckPinHash(req.Pin, s.cfg.PinHash) {
		s.GetLogger(ctx).Warn("unlock attempt with wrong PIN")
		return nil, fmt.Errorf("%w: wrong PIN", apperrors.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(sessionSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	s.LogInfo(ctx, "session unlocked")
	return &dto.UnlockResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}
