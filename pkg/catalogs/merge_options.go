package catalogs

import "github.com/agentstation/vodmap/pkg/constants"

// MergeOption configures how new endpoints are merged into a catalog.
type MergeOption func(*MergeOptions)

// MergeOptions holds merge configuration.
type MergeOptions struct {
	Group   string // classification tag for new entries
	Enabled bool   // enabled flag for new entries
}

// WithGroup overrides the group stamped on new entries.
func WithGroup(group string) MergeOption {
	return func(c *MergeOptions) {
		if group != "" {
			c.Group = group
		}
	}
}

// WithEnabled overrides the enabled flag stamped on new entries.
func WithEnabled(enabled bool) MergeOption {
	return func(c *MergeOptions) {
		c.Enabled = enabled
	}
}

// ParseMergeOptions processes merge options and returns the configuration.
func ParseMergeOptions(opts ...MergeOption) *MergeOptions {
	cfg := &MergeOptions{
		Group:   constants.DefaultGroup,
		Enabled: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
