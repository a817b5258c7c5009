package order

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Response shapes mirror what the storefront UI consumes.

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	UserEmail       string              `json:"userEmail"`
	Status          string              `json:"status"`
	Total           decimal.Decimal     `json:"total"`
	ShippingAddress ShippingAddress     `json:"shippingAddress"`
	CreatedAt       time.Time           `json:"createdAt"`
	Items           []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID        string           `json:"id"`
	OrderID   string           `json:"orderId"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Product   *ProductSnapshot `json:"product,omitempty"`
}

type ProductSnapshot struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

type OrderCommentResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	AdminUserID string    `json:"admin_user_id"`
	Comment     string    `json:"comment"`
	Status      *string   `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToOrderResponse(o *Order) *OrderResponse {
	if o == nil {
		return nil
	}

	return &OrderResponse{
		ID:              o.ID.String(),
		UserID:          o.UserID.String(),
		UserEmail:       o.UserEmail,
		Status:          string(o.Status),
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
		Items: lo.Map(o.Items, func(item OrderItem, _ int) OrderItemResponse {
			return toOrderItemResponse(item)
		}),
	}
}

func toOrderItemResponse(item OrderItem) OrderItemResponse {
	resp := OrderItemResponse{
		ID:        item.ID.String(),
		OrderID:   item.OrderID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
	if item.Product != nil {
		resp.Product = &ProductSnapshot{
			Title:     item.Product.Title,
			Thumbnail: item.Product.Thumbnail,
		}
	}
	return resp
}

func ToOrderResponses(orders []*Order) []*OrderResponse {
	return lo.Map(orders, func(o *Order, _ int) *OrderResponse {
		return ToOrderResponse(o)
	})
}

func ToOrderCommentResponse(c *OrderComment) *OrderCommentResponse {
	if c == nil {
		return nil
	}

	return &OrderCommentResponse{
		ID:          c.ID.String(),
		OrderID:     c.OrderID.String(),
		AdminUserID: c.AdminUserID.String(),
		Comment:     c.Comment,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToOrderCommentResponses(comments []*OrderComment) []*OrderCommentResponse {
	return lo.Map(comments, func(c *OrderComment, _ int) *OrderCommentResponse {
		return ToOrderCommentResponse(c)
	})
}
