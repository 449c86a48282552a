package convert

// Config holds the conversion settings.
type Config struct {
	// Workers bounds the matches converted concurrently by a batch.
	Workers int `mapstructure:"workers" default:"8"`
	// StartingScore seeds the running scores of Format A matches.
	StartingScore int `mapstructure:"starting_score" default:"25000"`
	// PlayersSource selects the nickname resolver: file or database.
	PlayersSource string `mapstructure:"players_source" default:"file"`
	// PlayersFile is the players JSON file of the file resolver.
	PlayersFile string `mapstructure:"players_file" default:"players.json"`
	// ResolverCacheSize is the LRU size of the database resolver.
	ResolverCacheSize int `mapstructure:"resolver_cache_size" default:"1024"`
	// InputPrefix holds raw logs as <prefix>/<format>/<id>.<ext>.
	InputPrefix string `mapstructure:"input_prefix" default:"input"`
	// OutputPrefix holds canonical records as <prefix>/<id>.json.
	OutputPrefix string `mapstructure:"output_prefix" default:"output"`
	// CrosscheckCacheSeconds is how long cross-check indices are reused. Zero disables reuse.
	CrosscheckCacheSeconds int `mapstructure:"crosscheck_cache_seconds" default:"300"`
}

const defaultWorkers = 8

func (c Config) workers() int {
	if c.Workers <= 0 {
		return defaultWorkers
	}
	return c.Workers
}
