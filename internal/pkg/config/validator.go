package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// CronParser accepts the standard five-field format plus descriptors such
// as "@every 1m" and "@hourly". The scheduler must use the same parser so
// that anything accepted here also runs.
var CronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateCronSchedule validates a cron expression using CronParser.
//
// Example:
//
//	err := ValidateCronSchedule("*/5 * * * *") // every five minutes
//	err = ValidateCronSchedule("@every 1m")
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}
	if _, err := CronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// ValidateListenAddr checks a "host:port" listen address. The host may be
// empty; the port must be numeric and within 0-65535.
func ValidateListenAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listen address '%s': %w", addr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid listen address '%s': port must be numeric", addr)
	}
	return ValidateIntRange(n, 0, 65535)
}

// ValidateDuration validates that min <= duration <= max.
func ValidateDuration(duration, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if duration < min {
		return fmt.Errorf("duration %v is below minimum %v", duration, min)
	}
	if duration > max {
		return fmt.Errorf("duration %v exceeds maximum %v", duration, max)
	}
	return nil
}

// ValidateIntRange validates that min <= value <= max.
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}
	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}
	return nil
}

// ValidatePositiveInt64 validates that value is greater than zero.
func ValidatePositiveInt64(value int64) error {
	if value <= 0 {
		return fmt.Errorf("value must be positive, got %d", value)
	}
	return nil
}

// ValidatePositiveDuration validates that a duration is greater than zero.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
