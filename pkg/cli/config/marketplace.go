package config

import (
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

//go:embed marketplace.toml
var defaultCatalog []byte

// Marketplace holds CLI flags for the template catalog
type Marketplace struct {
	path string
}

// Flags returns CLI flags for marketplace configuration
func (m *Marketplace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "marketplace",
			Usage:       "Path to a TOML catalog overriding the built-in marketplace",
			Sources:     cli.EnvVars("PROMPTDECK_MARKETPLACE"),
			Destination: &m.path,
		},
	}
}

type catalogFile struct {
	Entries []model.MarketplaceEntry `toml:"entries"`
}

// Configure loads and validates the catalog, from the override file when
// one is given and the embedded default otherwise
func (m *Marketplace) Configure() ([]model.MarketplaceEntry, error) {
	data := defaultCatalog
	if m.path != "" {
		loaded, err := os.ReadFile(m.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read marketplace catalog", goerr.V("path", m.path))
		}
		data = loaded
	}

	var catalog catalogFile
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse marketplace catalog", goerr.V("path", m.path))
	}

	for i := range catalog.Entries {
		if err := catalog.Entries[i].Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid marketplace entry")
		}
	}
	return catalog.Entries, nil
}
