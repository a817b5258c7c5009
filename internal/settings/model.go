package settings

import (
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

type DateFormat string

const (
	DateFormatDMY DateFormat = "dd/mm/yyyy"
	DateFormatMDY DateFormat = "mm/dd/yyyy"
	DateFormatYMD DateFormat = "yyyy-mm-dd"
)

type UserSettings struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Theme              Theme
	EmailNotifications bool
	PushNotifications  bool
	MarketingEmails    bool
	OrderUpdates       bool
	AutoSave           bool
	CompactView        bool
	Timezone           string
	DateFormat         DateFormat
	TwoFactorEnabled   bool
	TwoFactorSecret    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UpdateSettingsInput carries a partial update; nil fields are untouched.
type UpdateSettingsInput struct {
	Theme              *Theme
	EmailNotifications *bool
	PushNotifications  *bool
	MarketingEmails    *bool
	OrderUpdates       *bool
	AutoSave           *bool
	CompactView        *bool
	Timezone           *string
	DateFormat         *DateFormat
	TwoFactorEnabled   *bool
	TwoFactorSecret    *string
	ClearTwoFactor     bool
}
