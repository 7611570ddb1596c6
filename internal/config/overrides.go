package config

// Overrides carries command-line values that take priority over the file.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	ConfigPath   string
	ModelsRoot   string
	TexturesRoot string
	Encoding     string
	Strategy     string
	Workers      int
	Debug        bool
	LogFile      string
	NoCache      bool
}

// apply writes non-zero overrides into cfg.
func (o Overrides) apply(cfg *Config) {
	if o.ModelsRoot != "" {
		cfg.Assets.ModelsRoot = o.ModelsRoot
	}
	if o.TexturesRoot != "" {
		cfg.Assets.TexturesRoot = o.TexturesRoot
	}
	if o.Encoding != "" {
		cfg.Assets.Encoding = o.Encoding
	}
	if o.NoCache {
		cfg.Assets.Cache = false
	}
	if o.Strategy != "" {
		cfg.Loader.Strategy = o.Strategy
	}
	if o.Workers > 0 {
		cfg.Loader.Workers = o.Workers
	}
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
}
