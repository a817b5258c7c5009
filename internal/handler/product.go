package handler

import (
	"net/http"
	"time"

	"github.com/Santykk/MERCADEO/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

type productResponse struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	Thumbnail          string           `json:"thumbnail"`
	CategorySlug       string           `json:"categorySlug"`
	Stock              int              `json:"stock"`
	CreatedAt          time.Time        `json:"createdAt"`
}

func toProductResponse(p *product.Product) *productResponse {
	if p == nil {
		return nil
	}
	return &productResponse{
		ID:                 p.ID.String(),
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Thumbnail:          p.Thumbnail,
		CategorySlug:       p.CategorySlug,
		Stock:              p.Stock,
		CreatedAt:          p.CreatedAt,
	}
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid product id")
		return
	}

	p, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) List(c *gin.Context) {
	var categorySlug *string
	if slug := c.Query("category"); slug != "" {
		categorySlug = &slug
	}

	products, err := h.products.ListProducts(c.Request.Context(), categorySlug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(products, func(p *product.Product, _ int) *productResponse {
		return toProductResponse(p)
	}))
}

type createProductRequest struct {
	Title              string           `json:"title" binding:"required"`
	Description        string           `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	Thumbnail          string           `json:"thumbnail"`
	CategorySlug       string           `json:"categorySlug"`
	Stock              int              `json:"stock"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid product payload")
		return
	}

	p, err := h.products.CreateProduct(c.Request.Context(), product.CreateProductInput{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Thumbnail:          req.Thumbnail,
		CategorySlug:       req.CategorySlug,
		Stock:              req.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(p))
}

type updateProductRequest struct {
	Title              *string          `json:"title"`
	Description        *string          `json:"description"`
	Price              *decimal.Decimal `json:"price"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	Thumbnail          *string          `json:"thumbnail"`
	CategorySlug       *string          `json:"categorySlug"`
	Stock              *int             `json:"stock"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid product id")
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid product payload")
		return
	}

	err = h.products.UpdateProduct(c.Request.Context(), id, product.UpdateProductInput{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Thumbnail:          req.Thumbnail,
		CategorySlug:       req.CategorySlug,
		Stock:              req.Stock,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
