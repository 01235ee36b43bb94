package store

// Config is the persisted tool configuration.
type Config struct {
	BaseDir string `json:"base_dir"`
}

// ConfigStore reads and rewrites the config file.
type ConfigStore struct {
	path string
}

func NewConfigStore(path string) *ConfigStore { return &ConfigStore{path: path} }

// Load returns the persisted config, falling back to defaults when the
// file does not exist yet.
func (s *ConfigStore) Load() (Config, error) {
	cfg := Config{BaseDir: DefaultBaseDir}
	if _, err := readJSON(s.path, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	return cfg, nil
}

// Save rewrites the config file with the effective settings.
func (s *ConfigStore) Save(cfg Config) error {
	return writeJSON(s.path, cfg)
}
