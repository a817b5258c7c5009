package wishlist

import (
	"time"

	"github.com/Santykk/MERCADEO/internal/product"

	"github.com/google/uuid"
)

type WishlistItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time

	Product *product.Product
}
