package handler

import (
	"errors"
	"net/http"

	"github.com/Santykk/MERCADEO/internal/category"
	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/order"
	"github.com/Santykk/MERCADEO/internal/product"
	"github.com/Santykk/MERCADEO/internal/settings"
	"github.com/Santykk/MERCADEO/internal/user"
	"github.com/Santykk/MERCADEO/internal/utils"
	"github.com/Santykk/MERCADEO/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// identityFrom rebuilds the caller identity placed on the request context by
// the auth middleware. A zero identity means anonymous.
func identityFrom(c *gin.Context) user.Identity {
	ctx := c.Request.Context()

	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return user.Identity{}
	}

	return user.Identity{
		UserID: id,
		Email:  utils.GetUserEmailFromContext(ctx),
		Role:   user.Role(utils.GetUserRoleFromContext(ctx)),
	}
}

// statusFromError maps domain sentinel errors onto HTTP status codes.
// Unknown errors are treated as internal.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, order.ErrUnauthenticated),
		errors.Is(err, wishlist.ErrUserNotAuthenticated),
		errors.Is(err, settings.ErrUserNotAuthenticated),
		errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, order.ErrUnauthorized):
		return http.StatusForbidden

	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, wishlist.ErrItemNotFound),
		errors.Is(err, settings.ErrSettingsNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, category.ErrSlugExists):
		return http.StatusConflict

	case errors.Is(err, order.ErrValidation),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidDiscount),
		errors.Is(err, product.ErrEmptyTitle),
		errors.Is(err, category.ErrEmptyName):
		return http.StatusBadRequest

	case errors.Is(err, order.ErrTimeout):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error as {"error": "..."} with the mapped status.
// Internal errors are logged and their detail hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		msg = "internal server error"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
