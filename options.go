package gff

import (
	"github.com/youx/gff/codepage"
	"github.com/youx/gff/internal/options"
)

// config holds the resolved configuration for a Parse or Pack call.
type config struct {
	profile codepage.Profile
}

// Option configures a Parse or Pack call.
type Option = options.Option[*config]

// WithProfile selects the codepage.Profile used to encode and decode
// localized strings. The default is codepage.NeverwinterNights.
func WithProfile(p codepage.Profile) Option {
	return options.NoError(func(c *config) { c.profile = p })
}

func resolveOptions(opts []Option) (config, error) {
	c := config{profile: codepage.NeverwinterNights}
	if err := options.Apply(&c, opts...); err != nil {
		return config{}, err
	}

	return c, nil
}
