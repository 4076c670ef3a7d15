package driven

import "context"

// ConfigStore provides access to application configuration.
// Implementations handle persistence and type conversion; the port
// exposes only the accessors the application reads.
type ConfigStore interface {
	// GetString retrieves a string configuration value.
	// Returns empty string if the key is missing or holds another type.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if the key is missing or holds another type.
	GetInt(key string) int

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns where the configuration is stored.
	Path() string

	// Watch signals on the returned channel each time the stored
	// configuration changes and has been reloaded. Watching stops and
	// the channel closes when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
