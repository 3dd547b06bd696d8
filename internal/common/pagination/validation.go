package pagination

import "fmt"

// Validate checks params that did not come through ParseQueryParams.
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
	}
	if !offsetFits(p.Page, p.Limit) {
		return fmt.Errorf("page is too large")
	}
	return nil
}

// WithDefaults fills zero values from config and caps the limit at MaxLimit.
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	return p
}
