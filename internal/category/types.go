package category

// CreateInput is the input for category creation.
type CreateInput struct {
	Name      string
	Color     string
	Icon      string
	SortOrder int
}

// UpdateInput holds a partial category update. Nil pointers leave the
// field unchanged.
type UpdateInput struct {
	ID        int64
	Name      *string
	Color     *string
	Icon      *string
	SortOrder *int
}
