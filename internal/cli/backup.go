package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/project"
)

func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore all user data",
	}

	cmd.AddCommand(c.backupExportCommand())
	cmd.AddCommand(c.backupImportCommand())

	return cmd
}

func (c *CLI) backupExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write config, catalog, presets and profiles to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			presets, err := c.loadPresets()
			if err != nil {
				return err
			}
			backup := project.BackupData{
				Config:   ws.config,
				Catalog:  ws.catalog,
				Presets:  presets,
				Profiles: ws.profiles,
			}
			if err := project.ExportAllData(args[0], backup); err != nil {
				return err
			}
			c.out.success("Backed up %d materials, %d presets, %d profiles",
				len(ws.catalog.Materials), len(presets.Presets), len(ws.profiles))
			c.out.file(args[0])
			return nil
		},
	}
}

func (c *CLI) backupImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore all user data from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			logger.Debug("Read backup", "version", backup.Version, "created", backup.CreatedAt)

			ws := &workspace{dir: c.dataDir}
			if err := project.SaveAppConfig(ws.path(configFile), backup.Config); err != nil {
				return fmt.Errorf("restore config: %w", err)
			}
			if err := project.SaveCatalog(ws.path(catalogFile), backup.Catalog); err != nil {
				return fmt.Errorf("restore catalog: %w", err)
			}
			if err := project.SavePresets(ws.path(presetsFile), backup.Presets); err != nil {
				return fmt.Errorf("restore presets: %w", err)
			}
			if err := project.SaveCustomProfiles(ws.path(profilesFile), backup.Profiles); err != nil {
				return fmt.Errorf("restore profiles: %w", err)
			}
			c.out.success("Restored backup from %s", backup.CreatedAt)
			return nil
		},
	}
}
