package wishlist

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrItemNotFound         = errors.New("wishlist item not found")
)
