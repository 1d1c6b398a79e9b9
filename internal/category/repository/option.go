package repository

// CreateCategoryOptions holds parameters for inserting a new category row.
type CreateCategoryOptions struct {
	Name      string
	Color     string
	Icon      string
	SortOrder int
	CreatedBy int64
}

// UpdateCategoryOptions holds a partial category update.
type UpdateCategoryOptions struct {
	ID        int64
	Name      *string
	Color     *string
	Icon      *string
	SortOrder *int
}
