package pagination_test

import (
	"testing"

	"notes-api/internal/common/pagination"
)

func TestOffsetStrategy(t *testing.T) {
	t.Parallel()

	var strategy pagination.Strategy = pagination.OffsetStrategy{}
	params := pagination.Params{Page: 3, Limit: 10}

	q := strategy.CalculateQuery(params)
	if q.Offset != 20 || q.Limit != 10 {
		t.Errorf("CalculateQuery() = %+v, want offset 20 limit 10", q)
	}

	meta := strategy.BuildMetadata(params, 25)
	want := pagination.Metadata{Total: 25, Page: 3, Limit: 10, TotalPages: 3}
	if meta != want {
		t.Errorf("BuildMetadata() = %+v, want %+v", meta, want)
	}
}
