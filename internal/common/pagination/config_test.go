package pagination_test

import (
	"testing"

	"notes-api/internal/common/pagination"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	if config.DefaultPage != 1 {
		t.Errorf("DefaultConfig() DefaultPage = %d, want 1", config.DefaultPage)
	}
	if config.DefaultLimit != 10 {
		t.Errorf("DefaultConfig() DefaultLimit = %d, want 10", config.DefaultLimit)
	}
	if config.MaxLimit != 100 {
		t.Errorf("DefaultConfig() MaxLimit = %d, want 100", config.MaxLimit)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("with all env vars set", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_PAGE", "2")
		t.Setenv("PAGINATION_DEFAULT_LIMIT", "30")
		t.Setenv("PAGINATION_MAX_LIMIT", "200")

		want := pagination.Config{DefaultPage: 2, DefaultLimit: 30, MaxLimit: 200}
		if got := pagination.LoadFromEnv(); got != want {
			t.Errorf("LoadFromEnv() = %+v, want %+v", got, want)
		}
	})

	t.Run("without env vars", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_PAGE", "")
		t.Setenv("PAGINATION_DEFAULT_LIMIT", "")
		t.Setenv("PAGINATION_MAX_LIMIT", "")

		if got := pagination.LoadFromEnv(); got != pagination.DefaultConfig() {
			t.Errorf("LoadFromEnv() = %+v, want defaults", got)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_PAGE", "0")
		t.Setenv("PAGINATION_DEFAULT_LIMIT", "abc")
		t.Setenv("PAGINATION_MAX_LIMIT", "-5")

		if got := pagination.LoadFromEnv(); got != pagination.DefaultConfig() {
			t.Errorf("LoadFromEnv() = %+v, want defaults", got)
		}
	})

	t.Run("default limit capped at max", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_PAGE", "")
		t.Setenv("PAGINATION_DEFAULT_LIMIT", "50")
		t.Setenv("PAGINATION_MAX_LIMIT", "20")

		got := pagination.LoadFromEnv()
		if got.DefaultLimit != 20 {
			t.Errorf("DefaultLimit = %d, want 20", got.DefaultLimit)
		}
	})
}
