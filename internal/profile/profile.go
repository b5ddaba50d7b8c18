// Package profile holds the runtime configuration for the timesense CLI.
package profile

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Profile is the configuration to start the CLI.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// WeekStart is the first day of the week, 0 (Sunday) through 6 (Saturday).
	WeekStart int
	// Strict disables the generic date-literal fallback tier.
	Strict bool
	// Color enables colored output.
	Color bool
	// Timezone is an IANA zone used for display only; empty means local.
	Timezone string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// WeekStartDay returns the configured week start as a time.Weekday.
func (p *Profile) WeekStartDay() time.Weekday {
	return time.Weekday(p.WeekStart)
}

// Location resolves the display timezone. Defaults to the local zone.
func (p *Profile) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", p.Timezone)
	}
	return loc, nil
}

// FromEnv loads configuration from TIMESENSE_* environment variables.
func FromEnv() (*Profile, error) {
	v := viper.New()
	v.SetEnvPrefix("timesense")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", "prod")
	v.SetDefault("week-start", 0)
	v.SetDefault("strict", false)
	v.SetDefault("color", true)
	v.SetDefault("timezone", "")

	p := &Profile{
		Mode:      v.GetString("mode"),
		WeekStart: v.GetInt("week-start"),
		Strict:    v.GetBool("strict"),
		Color:     v.GetBool("color"),
		Timezone:  v.GetString("timezone"),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate normalizes the mode and rejects out-of-range values.
func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "prod"
	}

	if p.WeekStart < 0 || p.WeekStart > 6 {
		return errors.Errorf("week start must be between 0 and 6, got %d", p.WeekStart)
	}

	if _, err := p.Location(); err != nil {
		return err
	}

	return nil
}
