package order

import (
	"context"
	"fmt"

	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/pricing"
	"github.com/Santykk/MERCADEO/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// totalTolerance absorbs client-side rounding in the advisory total check.
var totalTolerance = decimal.RequireFromString("0.01")

type Service interface {
	CreateOrder(ctx context.Context, ident user.Identity, in CreateOrderInput) (*Order, error)
	GetOrder(ctx context.Context, ident user.Identity, id uuid.UUID) (*Order, error)
	GetOrders(ctx context.Context, ident user.Identity) ([]*Order, error)
	GetAllOrders(ctx context.Context, ident user.Identity) ([]*Order, error)
	UpdateOrderStatus(ctx context.Context, ident user.Identity, id uuid.UUID, status OrderStatus) error
	GetOrderComments(ctx context.Context, ident user.Identity, orderID uuid.UUID) ([]*OrderComment, error)
	AddOrderComment(ctx context.Context, ident user.Identity, orderID uuid.UUID, comment string, status *string) (*OrderComment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateOrder assembles and persists an order from a priced cart. The unit
// price of every line is resolved here, the total is recomputed from the
// resolved lines, and the header plus item batch are written atomically.
func (s *service) CreateOrder(ctx context.Context, ident user.Identity, in CreateOrderInput) (*Order, error) {
	if ident.IsZero() {
		return nil, ErrUnauthenticated
	}

	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	if err := in.ShippingAddress.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	items := make([]OrderItem, 0, len(in.Lines))
	total := decimal.Zero

	for i, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for line %d", ErrValidation, i)
		}

		unitPrice, err := pricing.EffectiveUnitPrice(line.ListPrice, line.DiscountPercentage)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrValidation, i, err)
		}

		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     unitPrice,
		})
		total = total.Add(pricing.LineTotal(unitPrice, line.Quantity))
	}

	// The caller-supplied total is advisory only; the recomputed sum is
	// what gets persisted.
	if in.Total.Sub(total).Abs().GreaterThan(totalTolerance) {
		return nil, fmt.Errorf("%w: supplied total %s does not match computed total %s",
			ErrValidation, in.Total, total)
	}

	o := &Order{
		UserID:          ident.UserID,
		UserEmail:       ident.Email,
		Status:          StatusPending,
		Total:           total,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		logger.FromCtx(ctx).Error("order creation failed",
			zap.String("user_id", ident.UserID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
	}

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, ident user.Identity, id uuid.UUID) (*Order, error) {
	if ident.IsZero() {
		return nil, ErrUnauthenticated
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Hide other users' orders behind the same not-found answer.
	if !ident.IsAdmin() && o.UserID != ident.UserID {
		return nil, ErrOrderNotFound
	}

	return o, nil
}

func (s *service) GetOrders(ctx context.Context, ident user.Identity) ([]*Order, error) {
	if ident.IsZero() {
		return nil, ErrUnauthenticated
	}
	return s.repo.ListByUser(ctx, ident.UserID)
}

func (s *service) GetAllOrders(ctx context.Context, ident user.Identity) ([]*Order, error) {
	if ident.IsZero() {
		return nil, ErrUnauthenticated
	}
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateOrderStatus(ctx context.Context, ident user.Identity, id uuid.UUID, status OrderStatus) error {
	if ident.IsZero() {
		return ErrUnauthenticated
	}
	if !ident.IsAdmin() {
		return ErrUnauthorized
	}
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) GetOrderComments(ctx context.Context, ident user.Identity, orderID uuid.UUID) ([]*OrderComment, error) {
	// Visibility follows the order itself.
	if _, err := s.GetOrder(ctx, ident, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, orderID)
}

func (s *service) AddOrderComment(ctx context.Context, ident user.Identity, orderID uuid.UUID, comment string, status *string) (*OrderComment, error) {
	if ident.IsZero() {
		return nil, ErrUnauthenticated
	}
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrValidation)
	}

	c := &OrderComment{
		OrderID:     orderID,
		AdminUserID: ident.UserID,
		Comment:     comment,
		Status:      status,
	}

	if err := s.repo.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
