package wishlist

import (
	"context"

	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetWishlist(ctx context.Context, ident user.Identity) ([]*WishlistItem, error)
	AddToWishlist(ctx context.Context, ident user.Identity, productID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, ident user.Identity, productID uuid.UUID) error
	IsInWishlist(ctx context.Context, ident user.Identity, productID uuid.UUID) (bool, error)
	SyncWishlist(ctx context.Context, ident user.Identity, productIDs []uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetWishlist(ctx context.Context, ident user.Identity) ([]*WishlistItem, error) {
	if ident.IsZero() {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.ListByUser(ctx, ident.UserID)
}

func (s *service) AddToWishlist(ctx context.Context, ident user.Identity, productID uuid.UUID) error {
	if ident.IsZero() {
		return ErrUserNotAuthenticated
	}
	return s.repo.Add(ctx, ident.UserID, productID)
}

func (s *service) RemoveFromWishlist(ctx context.Context, ident user.Identity, productID uuid.UUID) error {
	if ident.IsZero() {
		return ErrUserNotAuthenticated
	}
	return s.repo.Remove(ctx, ident.UserID, productID)
}

// IsInWishlist reports membership; an anonymous caller simply gets false.
func (s *service) IsInWishlist(ctx context.Context, ident user.Identity, productID uuid.UUID) (bool, error) {
	if ident.IsZero() {
		return false, nil
	}
	return s.repo.Contains(ctx, ident.UserID, productID)
}

// SyncWishlist merges a client-held wishlist into the account. Failures are
// logged but not returned: a failed merge must not break the login flow.
func (s *service) SyncWishlist(ctx context.Context, ident user.Identity, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}
	if ident.IsZero() {
		return ErrUserNotAuthenticated
	}

	if err := s.repo.UpsertBatch(ctx, ident.UserID, productIDs); err != nil {
		logger.FromCtx(ctx).Error("failed to sync wishlist",
			zap.String("user_id", ident.UserID.String()),
			zap.Int("count", len(productIDs)),
			zap.Error(err),
		)
	}
	return nil
}
