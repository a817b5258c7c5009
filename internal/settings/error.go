package settings

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrSettingsNotFound     = errors.New("user settings not found")
)
