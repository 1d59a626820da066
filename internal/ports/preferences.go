package ports

import "context"

// PreferenceRepository stores user preferences as key/value pairs
type PreferenceRepository interface {
	// Get returns the stored value, or domain.ErrPreferenceAbsent
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
