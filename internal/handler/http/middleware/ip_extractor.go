package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"notes-api/pkg/config"
)

// IPExtractor extracts the client IP address from a request.
type IPExtractor interface {
	ExtractIP(r *http.Request) (string, error)
}

// RemoteAddrExtractor uses the TCP peer address, which clients cannot spoof.
type RemoteAddrExtractor struct{}

func (RemoteAddrExtractor) ExtractIP(r *http.Request) (string, error) {
	return extractIPFromAddr(r.RemoteAddr)
}

// TrustedProxyConfig lists reverse proxies whose forwarding headers are believed.
type TrustedProxyConfig struct {
	AllowedCIDRs []netip.Prefix
}

// IsTrusted reports whether remoteAddr belongs to a trusted proxy.
func (c TrustedProxyConfig) IsTrusted(remoteAddr string) bool {
	ip, err := extractIPFromAddr(remoteAddr)
	if err != nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, prefix := range c.AllowedCIDRs {
		if prefix.Contains(addr.Unmap()) {
			return true
		}
	}
	return false
}

// LoadTrustedProxyConfig parses RATE_LIMIT_TRUSTED_PROXIES, a comma
// separated list of IPs or CIDR ranges. Invalid entries fail startup.
func LoadTrustedProxyConfig() (TrustedProxyConfig, error) {
	var cfg TrustedProxyConfig
	for _, entry := range config.GetEnvStringList("RATE_LIMIT_TRUSTED_PROXIES", nil) {
		prefix, err := parsePrefix(entry)
		if err != nil {
			return TrustedProxyConfig{}, err
		}
		cfg.AllowedCIDRs = append(cfg.AllowedCIDRs, prefix)
	}
	return cfg, nil
}

func parsePrefix(s string) (netip.Prefix, error) {
	if prefix, err := netip.ParsePrefix(s); err == nil {
		return prefix.Masked(), nil
	}
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid IP or CIDR %q in RATE_LIMIT_TRUSTED_PROXIES", s)
	}
	return netip.PrefixFrom(ip, ip.BitLen()), nil
}

// NewIPExtractor returns a RemoteAddrExtractor when no proxies are trusted.
func NewIPExtractor(cfg TrustedProxyConfig) IPExtractor {
	if len(cfg.AllowedCIDRs) == 0 {
		return RemoteAddrExtractor{}
	}
	return &TrustedProxyExtractor{config: cfg}
}

// TrustedProxyExtractor reads X-Forwarded-For, then X-Real-IP, but only
// when the peer is a trusted proxy. Otherwise the headers are ignored.
type TrustedProxyExtractor struct {
	config TrustedProxyConfig
}

func (e *TrustedProxyExtractor) ExtractIP(r *http.Request) (string, error) {
	if !e.config.IsTrusted(r.RemoteAddr) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			slog.Warn("untrusted peer sent X-Forwarded-For",
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("x_forwarded_for", xff))
		}
		return extractIPFromAddr(r.RemoteAddr)
	}
	if ip := parseFirstIP(r.Header.Get("X-Forwarded-For")); ip != "" {
		return ip, nil
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String(), nil
	}
	return extractIPFromAddr(r.RemoteAddr)
}

// extractIPFromAddr accepts "host:port" or a bare IP.
func extractIPFromAddr(addr string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		if ip := net.ParseIP(strings.Trim(addr, "[]")); ip != nil {
			return ip.String(), nil
		}
		return "", fmt.Errorf("invalid address format: %s", addr)
	}
	return host, nil
}

// parseFirstIP returns the left-most address of an X-Forwarded-For list.
func parseFirstIP(s string) string {
	first, _, _ := strings.Cut(s, ",")
	if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
		return ip.String()
	}
	return ""
}
