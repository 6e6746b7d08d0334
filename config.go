package pagemark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pagemark/pagemark/extract"
	"github.com/pagemark/pagemark/merge"
)

// Config bundles the tunable thresholds of the extraction pipeline. The
// defaults are tuned for single-column text at typical line heights;
// documents with unusually large or small leading may need the merge
// windows adjusted.
type Config struct {
	Extract extract.Config `yaml:"extract"`
	Merge   merge.Config   `yaml:"merge"`
}

// DefaultConfig returns the default pipeline thresholds.
func DefaultConfig() Config {
	return Config{
		Extract: extract.DefaultConfig(),
		Merge:   merge.DefaultConfig(),
	}
}

// LoadConfig reads pipeline thresholds from a YAML file. Fields absent
// from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
