package service

import (
	"context"
	"time"

	"wedding-api/core/cache"
	"wedding-api/core/config"
	"wedding-api/core/errors"
	"wedding-api/core/logger"
	"wedding-api/core/utils"
	"wedding-api/modules/auth/dto"
)

// AuthService maps shared-secret passcodes to family identities and manages
// the bearer tokens bound to them. The passcode table is injected at
// construction and immutable for the process lifetime.
type AuthService struct {
	passcodes map[string]string // passcode -> family name, case-sensitive
	cache     cache.Cache
}

func NewAuthService(families []config.FamilyAccount, c cache.Cache) *AuthService {
	passcodes := make(map[string]string, len(families))
	for _, f := range families {
		passcodes[f.Passcode] = f.Name
	}
	return &AuthService{
		passcodes: passcodes,
		cache:     c,
	}
}

// Authenticate exchanges a passcode for a signed token. Failures are
// deliberately generic so callers cannot probe the table.
func (s *AuthService) Authenticate(_ context.Context, passcode string) (*dto.AuthenticateResponse, *errors.AppError) {
	familyName, ok := s.passcodes[passcode]
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidCredential, "invalid credentials", nil)
	}

	token, err := utils.GenerateToken(familyName)
	if err != nil {
		logger.Error("AuthService:Authenticate:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return &dto.AuthenticateResponse{
		Success:    true,
		Token:      token,
		FamilyName: familyName,
	}, nil
}

// Logout blacklists the token until its natural expiry. There is no refresh
// flow; the family re-authenticates with the passcode afterwards.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, appErr := utils.ValidateAndParseToken(token)
	if appErr != nil {
		return appErr
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}

	return nil
}
