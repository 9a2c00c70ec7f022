package roster

import (
	"fmt"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/records"
)

// Option is a function that configures a Merger
type Option func(*config) error

// config holds the merger settings
type config struct {
	dateLayouts     []string
	identifierWidth int
}

func defaultConfig() *config {
	return &config{
		dateLayouts:     records.DefaultDateLayouts,
		identifierWidth: constants.IdentifierWidth,
	}
}

// options applies the options to the merger
func (m *merger) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(m.config); err != nil {
			return err
		}
	}
	return nil
}

func (c *config) assemblerOptions() []records.Option {
	return []records.Option{
		records.WithDateLayouts(c.dateLayouts...),
		records.WithIdentifierWidth(c.identifierWidth),
	}
}

// WithDateLayouts adds birth date layouts. They are tried in order before
// records.DefaultDateLayouts, so they win for ambiguous text such as
// 03/09/2012, and the defaults still cover ISO dates.
func WithDateLayouts(layouts ...string) Option {
	return func(c *config) error {
		if len(layouts) == 0 {
			return nil
		}
		merged := make([]string, 0, len(layouts)+len(records.DefaultDateLayouts))
		merged = append(merged, layouts...)
		merged = append(merged, records.DefaultDateLayouts...)
		c.dateLayouts = merged
		return nil
	}
}

// WithIdentifierWidth configures the zero-padded width of ID_NUMBER.
func WithIdentifierWidth(width int) Option {
	return func(c *config) error {
		if width <= 0 {
			return fmt.Errorf("identifier width must be positive, got %d", width)
		}
		c.identifierWidth = width
		return nil
	}
}
