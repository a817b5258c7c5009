package category

import (
	"context"

	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateCategory(ctx context.Context, in CreateCategoryInput) (*Category, error) {
	if in.Name == "" {
		return nil, ErrEmptyName
	}

	slug := utils.Slugify(in.Name)
	c, err := s.repo.Create(ctx, in.Name, slug, in.Icon)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create category",
			zap.String("name", in.Name),
			zap.Error(err),
		)
		return nil, err
	}

	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) error {
	if in.Name != nil && *in.Name == "" {
		return ErrEmptyName
	}
	return s.repo.Update(ctx, id, in)
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
