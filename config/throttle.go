package config

import (
	"time"

	"github.com/pkg/errors"
)

const clockLayout = "15:04"

// ThrottleConfig is the rate-limit policy. It is loaded once at startup and
// handed to the throttle evaluator by pointer; nothing mutates it afterwards.
// A zero limit or cooldown disables that check.
type ThrottleConfig struct {
	MaxPerDay             int `json:"maxPerDay" yaml:"maxPerDay" validate:"gte=0"`   // 0 means unlimited
	MaxPerWeek            int `json:"maxPerWeek" yaml:"maxPerWeek" validate:"gte=0"` // 0 means unlimited
	MinIntervalMinutes    int `json:"minIntervalMinutes" yaml:"minIntervalMinutes" validate:"gte=0"`
	BrandCooldownHours    int `json:"brandCooldownHours" yaml:"brandCooldownHours" validate:"gte=0"`
	LocationCooldownHours int `json:"locationCooldownHours" yaml:"locationCooldownHours" validate:"gte=0"`
	OfferCooldownHours    int `json:"offerCooldownHours" yaml:"offerCooldownHours" validate:"gte=0"`

	QuietHours QuietHoursConfig `json:"quietHours" yaml:"quietHours"`

	// Serialize the ledger read-check-append per user through a UserLocker
	SerializePerUser bool `json:"serializePerUser" yaml:"serializePerUser"`

	loc *time.Location
}

// QuietHoursConfig is a daily window in local wall-clock time.
type QuietHoursConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Timezone string `json:"timezone" yaml:"timezone"`
}

// DefaultThrottleConfig mirrors the production defaults of the notification policy.
func DefaultThrottleConfig() *ThrottleConfig {
	return &ThrottleConfig{
		MaxPerDay:             3,
		MaxPerWeek:            10,
		MinIntervalMinutes:    30,
		BrandCooldownHours:    24,
		LocationCooldownHours: 12,
		OfferCooldownHours:    72,
		QuietHours: QuietHoursConfig{
			Enabled: true,
			Start:   "22:00",
			End:     "08:00",
		},
	}
}

// Validate checks the quiet-hours clock strings and resolves the timezone.
func (c *ThrottleConfig) Validate() error {
	if c.QuietHours.Enabled {
		if _, err := time.Parse(clockLayout, c.QuietHours.Start); err != nil {
			return errors.Wrapf(err, "invalid quiet hours start %q", c.QuietHours.Start)
		}
		if _, err := time.Parse(clockLayout, c.QuietHours.End); err != nil {
			return errors.Wrapf(err, "invalid quiet hours end %q", c.QuietHours.End)
		}
	}

	if c.QuietHours.Timezone != "" {
		loc, err := time.LoadLocation(c.QuietHours.Timezone)
		if err != nil {
			return errors.Wrapf(err, "invalid quiet hours timezone %q", c.QuietHours.Timezone)
		}
		c.loc = loc
	}

	return nil
}

// Location returns the timezone used for quiet hours and day/week boundaries.
func (c *ThrottleConfig) Location() *time.Location {
	if c.loc != nil {
		return c.loc
	}
	if c.QuietHours.Timezone != "" {
		if loc, err := time.LoadLocation(c.QuietHours.Timezone); err == nil {
			return loc
		}
	}

	return time.UTC
}

// IsQuietHours reports whether now falls inside the quiet window.
// A window whose start is after its end wraps midnight.
func (c *ThrottleConfig) IsQuietHours(now time.Time) bool {
	if !c.QuietHours.Enabled {
		return false
	}

	start, ok := minuteOfDay(c.QuietHours.Start)
	if !ok {
		return false
	}
	end, ok := minuteOfDay(c.QuietHours.End)
	if !ok {
		return false
	}

	local := now.In(c.Location())
	current := local.Hour()*60 + local.Minute()

	switch {
	case start == end:
		return false
	case start > end:
		return current >= start || current < end
	default:
		return current >= start && current < end
	}
}

// StartOfDay returns local midnight of the day containing now.
func (c *ThrottleConfig) StartOfDay(now time.Time) time.Time {
	local := now.In(c.Location())

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// StartOfWeek returns local midnight of the Monday starting the week containing now.
func (c *ThrottleConfig) StartOfWeek(now time.Time) time.Time {
	day := c.StartOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7

	return day.AddDate(0, 0, -offset)
}

// MinInterval returns the minimum gap between two sends to the same user.
func (c *ThrottleConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalMinutes) * time.Minute
}

// BrandCooldown returns the per-brand cooldown window.
func (c *ThrottleConfig) BrandCooldown() time.Duration {
	return time.Duration(c.BrandCooldownHours) * time.Hour
}

// LocationCooldown returns the per-branch cooldown window.
func (c *ThrottleConfig) LocationCooldown() time.Duration {
	return time.Duration(c.LocationCooldownHours) * time.Hour
}

// OfferCooldown returns the per-offer cooldown window.
func (c *ThrottleConfig) OfferCooldown() time.Duration {
	return time.Duration(c.OfferCooldownHours) * time.Hour
}

func minuteOfDay(clock string) (int, bool) {
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, false
	}

	return parsed.Hour()*60 + parsed.Minute(), true
}
