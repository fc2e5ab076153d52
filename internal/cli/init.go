package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the data directory with the default config, catalog and presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ws := &workspace{dir: c.dataDir}

			files := []struct {
				name  string
				write func(path string) error
			}{
				{configFile, func(p string) error { return project.SaveAppConfig(p, model.DefaultAppConfig()) }},
				{catalogFile, func(p string) error { return project.SaveCatalog(p, model.DefaultCatalog()) }},
				{presetsFile, func(p string) error {
					return project.SavePresets(p, model.DefaultPresetStore(engine.Types(), engine.Label))
				}},
			}

			for _, f := range files {
				path := ws.path(f.name)
				if _, err := os.Stat(path); err == nil && !force {
					c.out.info("Keeping %s", path)
					continue
				}
				if err := f.write(path); err != nil {
					return fmt.Errorf("write %s: %w", f.name, err)
				}
				logger.Debug("Wrote default", "file", path)
				c.out.success("Created %s", f.name)
				c.out.file(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}
