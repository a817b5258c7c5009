package handler

import (
	"net/http"
	"time"

	"github.com/Santykk/MERCADEO/internal/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings settings.Service
}

func NewSettingsHandler(s settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: s}
}

type settingsResponse struct {
	Theme              settings.Theme      `json:"theme"`
	EmailNotifications bool                `json:"emailNotifications"`
	PushNotifications  bool                `json:"pushNotifications"`
	MarketingEmails    bool                `json:"marketingEmails"`
	OrderUpdates       bool                `json:"orderUpdates"`
	AutoSave           bool                `json:"autoSave"`
	CompactView        bool                `json:"compactView"`
	Timezone           string              `json:"timezone"`
	DateFormat         settings.DateFormat `json:"dateFormat"`
	TwoFactorEnabled   bool                `json:"twoFactorEnabled"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

func toSettingsResponse(s *settings.UserSettings) *settingsResponse {
	if s == nil {
		return nil
	}
	// The 2FA secret never leaves the server.
	return &settingsResponse{
		Theme:              s.Theme,
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		MarketingEmails:    s.MarketingEmails,
		OrderUpdates:       s.OrderUpdates,
		AutoSave:           s.AutoSave,
		CompactView:        s.CompactView,
		Timezone:           s.Timezone,
		DateFormat:         s.DateFormat,
		TwoFactorEnabled:   s.TwoFactorEnabled,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settings.GetSettings(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSettingsResponse(s))
}

type updateSettingsRequest struct {
	Theme              *settings.Theme      `json:"theme"`
	EmailNotifications *bool                `json:"emailNotifications"`
	PushNotifications  *bool                `json:"pushNotifications"`
	MarketingEmails    *bool                `json:"marketingEmails"`
	OrderUpdates       *bool                `json:"orderUpdates"`
	AutoSave           *bool                `json:"autoSave"`
	CompactView        *bool                `json:"compactView"`
	Timezone           *string              `json:"timezone"`
	DateFormat         *settings.DateFormat `json:"dateFormat"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid settings payload")
		return
	}

	err := h.settings.UpdateSettings(c.Request.Context(), identityFrom(c), settings.UpdateSettingsInput{
		Theme:              req.Theme,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		MarketingEmails:    req.MarketingEmails,
		OrderUpdates:       req.OrderUpdates,
		AutoSave:           req.AutoSave,
		CompactView:        req.CompactView,
		Timezone:           req.Timezone,
		DateFormat:         req.DateFormat,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) EnableTwoFactor(c *gin.Context) {
	secret, err := h.settings.EnableTwoFactor(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"secret": secret})
}

func (h *SettingsHandler) DisableTwoFactor(c *gin.Context) {
	if err := h.settings.DisableTwoFactor(c.Request.Context(), identityFrom(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) DeleteAccount(c *gin.Context) {
	if err := h.settings.DeleteAccount(c.Request.Context(), identityFrom(c)); err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
