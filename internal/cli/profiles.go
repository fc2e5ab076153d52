package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

func (c *CLI) profilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage component selection profiles",
	}

	cmd.AddCommand(c.profilesListCommand())
	cmd.AddCommand(c.profilesShowCommand())
	cmd.AddCommand(c.profilesExportCommand())
	cmd.AddCommand(c.profilesImportCommand())

	return cmd
}

func (c *CLI) profilesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			all := make([]model.SelectionProfile, 0, len(model.SelectionProfiles)+len(ws.profiles))
			all = append(all, model.SelectionProfiles...)
			all = append(all, ws.profiles...)

			var rows [][]string
			for _, p := range all {
				kind := "custom"
				if p.IsBuiltIn {
					kind = "built-in"
				}
				name := p.Name
				if name == ws.profile {
					name += " *"
				}
				rows = append(rows, []string{name, kind, fmt.Sprint(len(p.Selection.Roles())), p.Description})
			}
			c.out.table([]string{"Name", "Kind", "Roles", "Description"}, rows)
			return nil
		},
	}
}

func (c *CLI) profilesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the role bindings of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			p, ok := model.FindSelectionProfile(args[0], ws.profiles)
			if !ok {
				return fmt.Errorf("profile %q not found", args[0])
			}
			rows := make([][]string, 0, len(model.AllRoles))
			for _, r := range model.AllRoles {
				id := p.Selection.Get(r)
				if id == "" {
					continue
				}
				rows = append(rows, []string{string(r), id, ws.catalog.Describe(id)})
			}
			c.out.title(p.Name)
			c.out.table([]string{"Role", "Material", "Description"}, rows)
			return nil
		},
	}
}

func (c *CLI) profilesExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Write a profile to a file for sharing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			p, ok := model.FindSelectionProfile(args[0], ws.profiles)
			if !ok {
				return fmt.Errorf("profile %q not found", args[0])
			}
			if err := project.ExportProfile(args[1], p); err != nil {
				return err
			}
			c.out.success("Exported profile %s", p.Name)
			c.out.file(args[1])
			return nil
		},
	}
}

func (c *CLI) profilesImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add a profile from a file, replacing a custom profile of the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			p, err := project.ImportProfile(args[0])
			if err != nil {
				return fmt.Errorf("import profile: %w", err)
			}
			for _, builtin := range model.SelectionProfiles {
				if builtin.Name == p.Name {
					return fmt.Errorf("profile %q is built in and cannot be replaced", p.Name)
				}
			}
			for _, r := range p.Selection.Roles() {
				if ws.catalog.FindByID(p.Selection[r]) == nil {
					c.out.warning("%s: material %s is not in the catalog", r, p.Selection[r])
				}
			}

			profiles := make([]model.SelectionProfile, 0, len(ws.profiles)+1)
			for _, existing := range ws.profiles {
				if existing.Name != p.Name {
					profiles = append(profiles, existing)
				}
			}
			profiles = append(profiles, p)
			if err := project.SaveCustomProfiles(ws.path(profilesFile), profiles); err != nil {
				return err
			}
			c.out.success("Imported profile %s", p.Name)
			return nil
		},
	}
}
