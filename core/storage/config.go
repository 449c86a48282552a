package storage

// Config is the storage section of the configuration (STORAGE_* environment keys).
type Config struct {
	// Endpoint may carry an http:// or https:// scheme; NewClient strips it.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds raw logs under the input prefix and canonical records under the
	// output prefix.
	Bucket string `mapstructure:"bucket" default:"match-logs"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing and response headers. Zero means 30.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
