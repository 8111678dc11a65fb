package driven

// ConfigStore provides access to persisted CLI configuration.
// Implementations handle storage (e.g. TOML files) and concurrency.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if the key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Delete removes a key and persists the change.
	Delete(key string) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
