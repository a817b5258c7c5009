package category

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Icon      string
	CreatedAt time.Time
}

type CreateCategoryInput struct {
	Name string
	Icon string
}

type UpdateCategoryInput struct {
	Name *string
	Icon *string
}
