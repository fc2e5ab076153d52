package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved module presets",
	}

	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsShowCommand())
	cmd.AddCommand(c.presetsSaveCommand())
	cmd.AddCommand(c.presetsRemoveCommand())
	cmd.AddCommand(c.presetsInitCommand())

	return cmd
}

func (c *CLI) presetsPath() string {
	return (&workspace{dir: c.dataDir}).path(presetsFile)
}

func (c *CLI) presetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadPresets()
			if err != nil {
				return err
			}
			if len(store.Presets) == 0 {
				c.out.info("No presets saved. Run 'modulecut presets init' to create the defaults.")
				return nil
			}
			rows := make([][]string, len(store.Presets))
			for i, p := range store.Presets {
				rows[i] = []string{p.Name, string(p.Spec.ModuleType), p.Spec.Dimensions.String(), p.Description}
			}
			c.out.table([]string{"Name", "Type", "Size", "Description"}, rows)
			return nil
		},
	}
}

func (c *CLI) presetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the module a preset describes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadPresets()
			if err != nil {
				return err
			}
			p := store.FindByName(args[0])
			if p == nil {
				return fmt.Errorf("preset %q not found", args[0])
			}
			spec := p.ToSpec()
			c.out.title(p.Name)
			c.out.keyValue("Type", fmt.Sprintf("%s (%s)", engine.Label(spec.ModuleType), spec.ModuleType))
			c.out.keyValue("Size", spec.Dimensions.String())
			c.out.keyValue("Doors", strconv.Itoa(spec.Config.Doors))
			c.out.keyValue("Drawers", strconv.Itoa(spec.Config.Drawers))
			c.out.keyValue("Shelves", strconv.Itoa(spec.Config.Shelves))
			c.out.keyValue("Divisions", strconv.Itoa(spec.Config.Divisions))
			c.out.keyValue("Rods", strconv.Itoa(spec.Config.HangingRods))
			if spec.DoorType != "" {
				c.out.keyValue("Door type", string(spec.DoorType))
			}
			if spec.OpenModule {
				c.out.keyValue("Open", "yes")
			}
			for _, r := range spec.Selection.Roles() {
				c.out.keyValue(string(r), spec.Selection[r])
			}
			return nil
		},
	}
}

func (c *CLI) presetsSaveCommand() *cobra.Command {
	var (
		spec        specFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <name> [job-file]",
		Short: "Save a module description as a preset",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			job, err := spec.job(cmd, args[1:], c.loadPresets)
			if err != nil {
				return err
			}
			store, err := c.loadPresets()
			if err != nil {
				return err
			}
			if existing := store.FindByName(name); existing != nil {
				store.Remove(existing.ID)
			}
			store.Add(model.NewModulePreset(name, description, job.Module))
			if err := project.SavePresets(c.presetsPath(), store); err != nil {
				return err
			}
			c.out.success("Saved preset %s", name)
			return nil
		},
	}

	spec.register(cmd)
	cmd.Flags().StringVar(&description, "description", "", "preset description")
	return cmd
}

func (c *CLI) presetsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadPresets()
			if err != nil {
				return err
			}
			p := store.FindByName(args[0])
			if p == nil {
				return fmt.Errorf("preset %q not found", args[0])
			}
			store.Remove(p.ID)
			if err := project.SavePresets(c.presetsPath(), store); err != nil {
				return err
			}
			c.out.success("Removed preset %s", args[0])
			return nil
		},
	}
}

func (c *CLI) presetsInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create one default preset per module type",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.loadPresets()
			if err != nil {
				return err
			}
			if len(store.Presets) > 0 && !force {
				return fmt.Errorf("%d preset(s) already saved, use --force to replace them", len(store.Presets))
			}
			store = model.DefaultPresetStore(engine.Types(), engine.Label)
			if err := project.SavePresets(c.presetsPath(), store); err != nil {
				return err
			}
			c.out.success("Created %d presets", len(store.Presets))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace existing presets")
	return cmd
}
