package pagination

// Strategy turns request parameters into query bounds and response metadata.
type Strategy interface {
	CalculateQuery(params Params) QueryParams
	BuildMetadata(params Params, total int64) Metadata
}

// QueryParams holds the bounds passed to the repository.
type QueryParams struct {
	Offset int
	Limit  int
}

// OffsetStrategy implements LIMIT/OFFSET pagination.
type OffsetStrategy struct{}

// CalculateQuery calculates offset and limit for offset-based pagination.
func (OffsetStrategy) CalculateQuery(params Params) QueryParams {
	return QueryParams{
		Offset: CalculateOffset(params.Page, params.Limit),
		Limit:  params.Limit,
	}
}

// BuildMetadata constructs standard pagination metadata.
func (OffsetStrategy) BuildMetadata(params Params, total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: CalculateTotalPages(total, params.Limit),
	}
}
