package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   10 * time.Millisecond,
		MaxDelay:       100 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff_Success(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestWithBackoff_SuccessAfterRetry(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("ping: %w", syscall.ECONNREFUSED)
		}
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_MaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return driver.ErrBadConn
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, driver.ErrBadConn) {
		t.Errorf("expected wrapped ErrBadConn, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_NonRetryableError(t *testing.T) {
	attempts := 0
	testErr := errors.New("password authentication failed")
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		attempts++
		return testErr
	})

	if !errors.Is(err, testErr) {
		t.Errorf("expected %v, got %v", testErr, err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	cfg := fastConfig()
	cfg.InitialDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := WithBackoff(ctx, cfg, func() error {
		attempts++
		cancel()
		return syscall.ECONNRESET
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "bad conn", err: driver.ErrBadConn, want: true},
		{name: "connection refused", err: syscall.ECONNREFUSED, want: true},
		{name: "wrapped connection reset", err: fmt.Errorf("query: %w", syscall.ECONNRESET), want: true},
		{name: "dial error", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route")}, want: true},
		{name: "read error", err: &net.OpError{Op: "read", Net: "tcp", Err: errors.New("eof")}, want: false},
		{name: "syntax error", err: errors.New("syntax error at or near"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestConfigs(t *testing.T) {
	for name, cfg := range map[string]Config{
		"default": DefaultConfig(),
		"db":      DBConfig(),
		"startup": StartupConfig(),
	} {
		if cfg.MaxAttempts < 1 {
			t.Errorf("%s: MaxAttempts = %d", name, cfg.MaxAttempts)
		}
		if cfg.InitialDelay > cfg.MaxDelay {
			t.Errorf("%s: InitialDelay %v > MaxDelay %v", name, cfg.InitialDelay, cfg.MaxDelay)
		}
	}
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := addJitter(base, 0.5)
		if got < base || got > base+base/2 {
			t.Fatalf("addJitter out of range: %v", got)
		}
	}
	if got := addJitter(base, 0); got != base {
		t.Errorf("zero fraction: got %v, want %v", got, base)
	}
}
