package handler

import (
	"net/http"
	"time"

	"github.com/Santykk/MERCADEO/internal/category"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type CategoryHandler struct {
	categories category.Service
}

func NewCategoryHandler(categories category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCategoryResponse(cat *category.Category) *categoryResponse {
	if cat == nil {
		return nil
	}
	return &categoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Slug:      cat.Slug,
		Icon:      cat.Icon,
		CreatedAt: cat.CreatedAt,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(categories, func(cat *category.Category, _ int) *categoryResponse {
		return toCategoryResponse(cat)
	}))
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	cat, err := h.categories.CreateCategory(c.Request.Context(), category.CreateCategoryInput{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(cat))
}

type updateCategoryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid category id")
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid category payload")
		return
	}

	err = h.categories.UpdateCategory(c.Request.Context(), id, category.UpdateCategoryInput{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid category id")
		return
	}

	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
