package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/dirtlot-lab/dirtlot/pkg/service/affiliate"
	"github.com/dirtlot-lab/dirtlot/pkg/service/content"
)

// Catalog holds the optional TOML configuration for catalog content:
// description adjectives and the Amazon affiliate tag.
type Catalog struct {
	path string

	Adjectives []string `toml:"adjectives"`
	AmazonTag  string   `toml:"amazon_tag"`
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to catalog configuration TOML file",
			Sources:     cli.EnvVars("DIRTLOT_CONFIG"),
			Destination: &x.path,
		},
	}
}

// Validate checks if the Catalog configuration is valid
func (x *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, adj := range x.Adjectives {
		if adj == "" {
			return goerr.New("empty adjective in catalog config")
		}
		if seen[adj] {
			return goerr.New("duplicate adjective", goerr.V("adjective", adj))
		}
		seen[adj] = true
	}
	return nil
}

// Configure loads the TOML file when a path is set and returns the content
// generator and link builder derived from it. Without a path both fall back
// to their built-in defaults.
func (x *Catalog) Configure() (*content.Generator, *affiliate.Builder, error) {
	if x.path != "" {
		// #nosec G304 - path is expected to be provided by CLI argument
		data, err := os.ReadFile(x.path)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", x.path))
		}
		if err := toml.Unmarshal(data, x); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", x.path))
		}
		if err := x.Validate(); err != nil {
			return nil, nil, goerr.Wrap(err, "config validation failed", goerr.V("path", x.path))
		}
	}

	var genOpts []content.Option
	if len(x.Adjectives) > 0 {
		genOpts = append(genOpts, content.WithAdjectives(x.Adjectives))
	}

	return content.NewGenerator(genOpts...), affiliate.NewBuilder(x.AmazonTag), nil
}
