package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestFrom(remote string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/notes", nil)
	r.RemoteAddr = remote
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestRemoteAddrExtractor(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"192.168.1.1:54321", "192.168.1.1"},
		{"[2001:db8::1]:8080", "2001:db8::1"},
		{"127.0.0.1", "127.0.0.1"},
	}
	for _, tt := range tests {
		ip, err := RemoteAddrExtractor{}.ExtractIP(requestFrom(tt.remote, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.want, ip)
	}

	_, err := RemoteAddrExtractor{}.ExtractIP(requestFrom("garbage", nil))
	assert.Error(t, err)
}

func TestTrustedProxyExtractor(t *testing.T) {
	ext := NewIPExtractor(TrustedProxyConfig{
		AllowedCIDRs: []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")},
	})

	t.Run("trusted proxy uses X-Forwarded-For", func(t *testing.T) {
		ip, err := ext.ExtractIP(requestFrom("10.1.2.3:443", map[string]string{
			"X-Forwarded-For": "203.0.113.7, 10.1.2.3",
		}))
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.7", ip)
	})

	t.Run("trusted proxy falls back to X-Real-IP", func(t *testing.T) {
		ip, err := ext.ExtractIP(requestFrom("10.1.2.3:443", map[string]string{
			"X-Real-IP": "198.51.100.2",
		}))
		require.NoError(t, err)
		assert.Equal(t, "198.51.100.2", ip)
	})

	t.Run("untrusted peer headers ignored", func(t *testing.T) {
		ip, err := ext.ExtractIP(requestFrom("203.0.113.50:1234", map[string]string{
			"X-Forwarded-For": "1.1.1.1",
		}))
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.50", ip)
	})
}

func TestNewIPExtractor_DefaultsToRemoteAddr(t *testing.T) {
	assert.IsType(t, RemoteAddrExtractor{}, NewIPExtractor(TrustedProxyConfig{}))
}

func TestLoadTrustedProxyConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", "192.168.1.1, 10.0.0.0/8, 2001:db8::/32")
	cfg, err := LoadTrustedProxyConfig()
	require.NoError(t, err)
	require.Len(t, cfg.AllowedCIDRs, 3)
	assert.Equal(t, "192.168.1.1/32", cfg.AllowedCIDRs[0].String())
	assert.True(t, cfg.IsTrusted("10.20.30.40:80"))
	assert.False(t, cfg.IsTrusted("11.0.0.1:80"))

	t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", "not-an-ip")
	_, err = LoadTrustedProxyConfig()
	assert.Error(t, err)
}
