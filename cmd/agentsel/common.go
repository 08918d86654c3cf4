package main

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/agentsel-dev/agentsel/internal/catalog"
	"github.com/agentsel-dev/agentsel/internal/catalog/builtin"
	"github.com/agentsel-dev/agentsel/internal/version"
)

// loadCatalog loads the catalog named by --catalog (or the config file),
// falling back to the embedded built-in catalog, and verifies the manifest
// is compatible with this build.
func loadCatalog() (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	var err error

	if dir := viper.GetString("catalog"); dir != "" {
		slog.Debug("loading catalog", "dir", dir)
		cat, err = catalog.Load(os.DirFS(dir))
	} else {
		slog.Debug("loading built-in catalog")
		cat, err = catalog.Load(builtin.FS())
	}
	if err != nil {
		return nil, err
	}

	if err := cat.Manifest.Compatible(version.Version); err != nil {
		return nil, err
	}

	slog.Debug("catalog loaded", "profiles", cat.Len())
	return cat, nil
}
