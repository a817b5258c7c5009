package handler

import (
	"net/http"
	"time"

	"github.com/Santykk/MERCADEO/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type WishlistHandler struct {
	wishlists wishlist.Service
}

func NewWishlistHandler(wishlists wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

type wishlistItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	CreatedAt time.Time        `json:"createdAt"`
	Product   *productResponse `json:"product,omitempty"`
}

func toWishlistItemResponse(item *wishlist.WishlistItem) *wishlistItemResponse {
	if item == nil {
		return nil
	}
	return &wishlistItemResponse{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
		CreatedAt: item.CreatedAt,
		Product:   toProductResponse(item.Product),
	}
}

func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.wishlists.GetWishlist(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(items, func(item *wishlist.WishlistItem, _ int) *wishlistItemResponse {
		return toWishlistItemResponse(item)
	}))
}

func (h *WishlistHandler) Add(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		respondBadRequest(c, "invalid product id")
		return
	}

	if err := h.wishlists.AddToWishlist(c.Request.Context(), identityFrom(c), productID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		respondBadRequest(c, "invalid product id")
		return
	}

	if err := h.wishlists.RemoveFromWishlist(c.Request.Context(), identityFrom(c), productID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WishlistHandler) Contains(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		respondBadRequest(c, "invalid product id")
		return
	}

	in, err := h.wishlists.IsInWishlist(c.Request.Context(), identityFrom(c), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inWishlist": in})
}

type syncWishlistRequest struct {
	ProductIDs []uuid.UUID `json:"productIds" binding:"required"`
}

// Sync merges a locally kept wishlist into the account after login.
func (h *WishlistHandler) Sync(c *gin.Context) {
	var req syncWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "productIds is required")
		return
	}

	if err := h.wishlists.SyncWishlist(c.Request.Context(), identityFrom(c), req.ProductIDs); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
