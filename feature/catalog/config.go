package catalog

// Config holds configuration for the external catalog client.
type Config struct {
	// BaseURL is the root URL of the catalog API.
	BaseURL string `mapstructure:"base_url" default:"https://openlibrary.org"`
	// CoversBaseURL is the root URL of the cover image host.
	CoversBaseURL string `mapstructure:"covers_base_url" default:"https://covers.openlibrary.org"`
	// UserAgent identifies this client to the catalog, as its usage policy asks.
	UserAgent string `mapstructure:"user_agent" default:"catalog-importer/1.0"`
	// RequestsPerSecond caps the outbound request rate.
	RequestsPerSecond int `mapstructure:"requests_per_second" default:"2"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}
