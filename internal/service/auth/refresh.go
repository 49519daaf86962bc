package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tradescribe/backend/internal/auth"
	"github.com/tradescribe/backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// If the refresh token is not found (revoked token rows are eventually
// deleted), logs a warning and returns ErrUnauthorized. A token that is
// still present but already revoked is treated as a reuse attempt and all
// tokens for its user are revoked.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token not found")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		// Rotation already consumed this token. Someone is replaying it,
		// so invalidate the whole family.
		s.log.WarnContext(ctx, "refresh token reuse attempted",
			slog.String("user_id", token.UserID.String()))
		if _, err := s.tokens.RevokeAllForUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke family: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Revoke-then-issue must be atomic: a crash in between would leave the
	// client with no valid refresh token.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.Revoke(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(txCtx, user)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh rotate: %w", err)
	}
	return result, nil
}
