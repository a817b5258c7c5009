package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.(map[uuid.UUID]*Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, categorySlug *string) ([]*Product, error) {
	args := m.Called(ctx, categorySlug)
	if p := args.Get(0); p != nil {
		return p.([]*Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, in CreateProductInput) (*Product, error) {
	args := m.Called(ctx, in)
	if p := args.Get(0); p != nil {
		return p.(*Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uuid.UUID, in UpdateProductInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func discountPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		in := CreateProductInput{
			Title:              "Kursi Kayu Jati",
			Price:              decimal.NewFromInt(250000),
			DiscountPercentage: discountPtr(10),
		}
		created := &Product{ID: uuid.New(), Title: in.Title, Price: in.Price}
		repo.On("Create", ctx, in).Return(created, nil)

		p, err := svc.CreateProduct(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, created.ID, p.ID)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductInput{Price: decimal.NewFromInt(10)})
		assert.ErrorIs(t, err, ErrEmptyTitle)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Title: "Meja",
			Price: decimal.NewFromInt(-1),
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("DiscountOutOfRange", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Title:              "Meja",
			Price:              decimal.NewFromInt(100),
			DiscountPercentage: discountPtr(101),
		})
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})
}

func TestGetProducts(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	svc := NewService(repo)

	known := uuid.New()
	unknown := uuid.New()
	ids := []uuid.UUID{known, unknown}

	repo.On("GetByIDs", ctx, ids).Return(map[uuid.UUID]*Product{
		known: {ID: known, Title: "Rak Buku", Price: decimal.NewFromInt(150000)},
	}, nil)

	got, err := svc.GetProducts(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, known)
	assert.NotContains(t, got, unknown)
	repo.AssertExpectations(t)
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("NoFieldsIsNoop", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.UpdateProduct(ctx, uuid.New(), UpdateProductInput{})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		neg := decimal.NewFromInt(-5)
		err := svc.UpdateProduct(ctx, uuid.New(), UpdateProductInput{Price: &neg})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		id := uuid.New()
		title := "Meja Lipat"
		in := UpdateProductInput{Title: &title, DiscountPercentage: discountPtr(20)}
		repo.On("Update", ctx, id, in).Return(nil)

		require.NoError(t, svc.UpdateProduct(ctx, id, in))
		repo.AssertExpectations(t)
	})
}
