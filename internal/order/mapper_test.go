package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Santykk/MERCADEO/internal/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderResponse(t *testing.T) {
	orderID := uuid.New()
	o := &Order{
		ID:        orderID,
		UserID:    uuid.New(),
		UserEmail: "jane@example.com",
		Status:    StatusPending,
		Total:     decimal.RequireFromString("160000"),
		ShippingAddress: ShippingAddress{
			FullName: "Jane Doe", Address: "1 Main St", City: "Springfield",
			State: "IL", ZipCode: "62701", Country: "US", Phone: "555-0100",
		},
		CreatedAt: time.Now(),
		Items: []OrderItem{{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: uuid.New(),
			Quantity:  2,
			Price:     decimal.RequireFromString("80000"),
			Product:   &product.Snapshot{Title: "Keyboard", Thumbnail: "kb.jpg"},
		}},
	}

	resp := ToOrderResponse(o)
	require.NotNil(t, resp)
	assert.Equal(t, orderID.String(), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Items[0].Product)
	assert.Equal(t, "Keyboard", resp.Items[0].Product.Title)

	// The UI consumes camelCase field names.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"userEmail"`)
	assert.Contains(t, string(raw), `"shippingAddress"`)
	assert.Contains(t, string(raw), `"fullName"`)
	assert.Contains(t, string(raw), `"zipCode"`)
}

func TestToOrderResponse_Nil(t *testing.T) {
	assert.Nil(t, ToOrderResponse(nil))
}

func TestToOrderResponses(t *testing.T) {
	orders := []*Order{
		{ID: uuid.New(), Total: decimal.NewFromInt(10)},
		{ID: uuid.New(), Total: decimal.NewFromInt(20)},
	}

	resp := ToOrderResponses(orders)
	require.Len(t, resp, 2)
	assert.Equal(t, orders[0].ID.String(), resp[0].ID)
	assert.Equal(t, orders[1].ID.String(), resp[1].ID)
}

func TestToOrderCommentResponse(t *testing.T) {
	status := "processing"
	c := &OrderComment{
		ID:          uuid.New(),
		OrderID:     uuid.New(),
		AdminUserID: uuid.New(),
		Comment:     "on its way",
		Status:      &status,
	}

	resp := ToOrderCommentResponse(c)
	require.NotNil(t, resp)
	assert.Equal(t, "on its way", resp.Comment)
	require.NotNil(t, resp.Status)
	assert.Equal(t, "processing", *resp.Status)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"admin_user_id"`)
}
