package pagination_test

import (
	"math"
	"testing"

	"notes-api/internal/common/pagination"
)

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name      string
		params    pagination.Params
		wantError bool
	}{
		{name: "valid", params: pagination.Params{Page: 1, Limit: 10}},
		{name: "limit at max", params: pagination.Params{Page: 1, Limit: 100}},
		{name: "page zero", params: pagination.Params{Page: 0, Limit: 10}, wantError: true},
		{name: "limit zero", params: pagination.Params{Page: 1, Limit: 0}, wantError: true},
		{name: "limit over max", params: pagination.Params{Page: 1, Limit: 101}, wantError: true},
		{name: "page overflows offset", params: pagination.Params{Page: math.MaxInt, Limit: 100}, wantError: true},
		{name: "largest page with limit 1", params: pagination.Params{Page: math.MaxInt, Limit: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.params.Validate(config)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestParams_WithDefaults(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name   string
		params pagination.Params
		want   pagination.Params
	}{
		{name: "zero values", params: pagination.Params{}, want: pagination.Params{Page: 1, Limit: 10}},
		{name: "over max capped", params: pagination.Params{Page: 2, Limit: 500}, want: pagination.Params{Page: 2, Limit: 100}},
		{name: "unchanged", params: pagination.Params{Page: 4, Limit: 25}, want: pagination.Params{Page: 4, Limit: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.params.WithDefaults(config); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
