package order

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Santykk/MERCADEO/internal/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var validStatuses = map[OrderStatus]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func (s OrderStatus) Valid() bool {
	return validStatuses[s]
}

type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	UserEmail       string
	Status          OrderStatus
	Total           decimal.Decimal
	ShippingAddress ShippingAddress
	CreatedAt       time.Time
	Items           []OrderItem
}

type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal

	Product *product.Snapshot
}

// ShippingAddress is copied by value into the order at creation and stored
// as a JSON document on the order row.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

func (a ShippingAddress) Validate() error {
	missing := ""
	for _, f := range []struct {
		name, value string
	}{
		{"fullName", a.FullName},
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
		{"country", a.Country},
		{"phone", a.Phone},
	} {
		if f.value == "" {
			if missing != "" {
				missing += ", "
			}
			missing += f.name
		}
	}

	if missing != "" {
		return fmt.Errorf("missing required address fields: %s", missing)
	}
	return nil
}

func (a ShippingAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *ShippingAddress) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported shipping address column type")
	}
}

type OrderComment struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	AdminUserID uuid.UUID
	Comment     string
	Status      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CartLine is a transient, client-held (product, quantity) pairing staged
// for purchase. It is consumed by order creation and never persisted.
type CartLine struct {
	ProductID          uuid.UUID
	Quantity           int
	ListPrice          decimal.Decimal
	DiscountPercentage *decimal.Decimal
}

type CreateOrderInput struct {
	Lines           []CartLine
	ShippingAddress ShippingAddress

	// Total is the client-computed amount; it is advisory only and is
	// checked against the recomputed sum of line totals.
	Total decimal.Decimal
}
