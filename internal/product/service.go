package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Service interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	GetProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error)
	ListProducts(ctx context.Context, categorySlug *string) ([]*Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in UpdateProductInput) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetProducts batch-fetches the given ids; absent ids are simply missing
// from the returned map.
func (s *service) GetProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) ListProducts(ctx context.Context, categorySlug *string) ([]*Product, error) {
	return s.repo.List(ctx, categorySlug)
}

func (s *service) CreateProduct(ctx context.Context, in CreateProductInput) (*Product, error) {
	if in.Title == "" {
		return nil, ErrEmptyTitle
	}
	if in.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if err := validateDiscount(in.DiscountPercentage); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, in)
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, in UpdateProductInput) error {
	if !in.HasAnyField() {
		return nil
	}
	if in.Price != nil && in.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if err := validateDiscount(in.DiscountPercentage); err != nil {
		return err
	}

	return s.repo.Update(ctx, id, in)
}

func validateDiscount(d *decimal.Decimal) error {
	if d == nil {
		return nil
	}
	if d.IsNegative() || d.GreaterThan(hundred) {
		return ErrInvalidDiscount
	}
	return nil
}
