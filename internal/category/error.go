package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyName        = errors.New("category name is required")
	ErrSlugExists       = errors.New("category slug already exists")
)
