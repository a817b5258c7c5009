package order

import "errors"

var (
	ErrUnauthenticated   = errors.New("user not authenticated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrValidation        = errors.New("validation failed")
	ErrOrderCreateFailed = errors.New("failed to create order")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTimeout           = errors.New("storage operation timed out")
)
