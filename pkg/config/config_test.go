package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Listing.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Listing.Debounce)
	assert.Equal(t, "pt-BR", cfg.Lang)
	assert.Empty(t, cfg.Redis.Address)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("CONSOLE_API_URL", "http://backend.local:3333")
	t.Setenv("CONSOLE_PAGE_SIZE", "20")
	t.Setenv("CONSOLE_DEBOUNCE", "1s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "http://backend.local:3333", cfg.Backend.URL)
	assert.Equal(t, 20, cfg.Listing.PageSize)
	assert.Equal(t, time.Second, cfg.Listing.Debounce)
}

func TestParse_Errors(t *testing.T) {
	t.Run("bad int", func(t *testing.T) {
		t.Setenv("CONSOLE_PAGE_SIZE", "many")
		_, err := Parse()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("non positive page size", func(t *testing.T) {
		t.Setenv("CONSOLE_PAGE_SIZE", "0")
		_, err := Parse()
		require.Error(t, err)
	})
}
