package handler

import (
	"net/http"

	"github.com/Santykk/MERCADEO/internal/order"
	"github.com/Santykk/MERCADEO/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orders   order.Service
	products product.Service
}

func NewOrderHandler(orders order.Service, products product.Service) *OrderHandler {
	return &OrderHandler{orders: orders, products: products}
}

type cartLineRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	Items           []cartLineRequest     `json:"items" binding:"required"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	Total           decimal.Decimal       `json:"total"`
}

// resolveLines prices the cart from the catalog. The client submits only
// (product, quantity); list price and discount come from the product rows.
func (h *OrderHandler) resolveLines(c *gin.Context, items []cartLineRequest) ([]order.CartLine, error) {
	ids := lo.Map(items, func(l cartLineRequest, _ int) uuid.UUID {
		return l.ProductID
	})

	catalog, err := h.products.GetProducts(c.Request.Context(), ids)
	if err != nil {
		return nil, err
	}

	lines := make([]order.CartLine, 0, len(items))
	for _, item := range items {
		p, ok := catalog[item.ProductID]
		if !ok {
			return nil, product.ErrProductNotFound
		}
		lines = append(lines, order.CartLine{
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			ListPrice:          p.Price,
			DiscountPercentage: p.DiscountPercentage,
		})
	}
	return lines, nil
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid order payload")
		return
	}

	lines, err := h.resolveLines(c, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	o, err := h.orders.CreateOrder(c.Request.Context(), identityFrom(c), order.CreateOrderInput{
		Lines:           lines,
		ShippingAddress: req.ShippingAddress,
		Total:           req.Total,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order.ToOrderResponse(o))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return
	}

	o, err := h.orders.GetOrder(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order.ToOrderResponse(o))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.GetOrders(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order.ToOrderResponses(orders))
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orders.GetAllOrders(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order.ToOrderResponses(orders))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	if err := h.orders.UpdateOrderStatus(c.Request.Context(), identityFrom(c), id, order.OrderStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) ListComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return
	}

	comments, err := h.orders.GetOrderComments(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order.ToOrderCommentResponses(comments))
}

type addCommentRequest struct {
	Comment string  `json:"comment" binding:"required"`
	Status  *string `json:"status"`
}

func (h *OrderHandler) AddComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "comment is required")
		return
	}

	comment, err := h.orders.AddOrderComment(c.Request.Context(), identityFrom(c), id, req.Comment, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order.ToOrderCommentResponse(comment))
}
