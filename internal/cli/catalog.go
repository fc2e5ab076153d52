package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the material catalog",
	}

	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogAddCommand())
	cmd.AddCommand(c.catalogRemoveCommand())
	cmd.AddCommand(c.catalogImportCommand())
	cmd.AddCommand(c.catalogResetCommand())

	return cmd
}

func (c *CLI) catalogListCommand() *cobra.Command {
	var materialType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			materials := ws.catalog.Materials
			if materialType != "" {
				materials = ws.catalog.ByType(materialType)
			}
			rows := make([][]string, len(materials))
			for i, m := range materials {
				rows[i] = []string{
					m.ID, m.Code, m.Description, m.Type, m.Unit,
					fmt.Sprintf("%s x %s", formatNumber(m.UnitsPerCommercialUnit), m.CommercialUnit),
				}
			}
			c.out.table([]string{"ID", "Code", "Description", "Type", "Unit", "Sold As"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&materialType, "type", "", "only list materials of this type, e.g. Board")
	return cmd
}

func (c *CLI) catalogAddCommand() *cobra.Command {
	var m model.Material

	cmd := &cobra.Command{
		Use:   "add <code> <description>",
		Short: "Add a material to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			if ws.catalog.FindByCode(args[0]) != nil {
				return fmt.Errorf("material code %q already exists", args[0])
			}
			if m.CommercialUnit == "" {
				m.CommercialUnit = m.Unit
			}
			material := model.NewMaterial(args[0], args[1], m.Type, m.Unit, m.CommercialUnit, m.UnitsPerCommercialUnit)
			ws.catalog.Add(material)
			if err := project.SaveCatalog(ws.path(catalogFile), ws.catalog); err != nil {
				return err
			}
			c.out.success("Added %s (%s)", material.Description, material.ID)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&m.Type, "type", model.MaterialHardware, "material type")
	fl.StringVar(&m.Unit, "unit", model.UnitPiece, "unit the bill of materials uses")
	fl.StringVar(&m.CommercialUnit, "sold-as", "", "commercial unit, defaults to the unit")
	fl.Float64Var(&m.UnitsPerCommercialUnit, "per-unit", 1, "units per commercial unit")
	return cmd
}

func (c *CLI) catalogRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a material from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			description := ws.catalog.Describe(args[0])
			if !ws.catalog.Remove(args[0]) {
				return fmt.Errorf("material %q not found", args[0])
			}
			if err := project.SaveCatalog(ws.path(catalogFile), ws.catalog); err != nil {
				return err
			}
			c.out.success("Removed %s", description)
			return nil
		},
	}
}

func (c *CLI) catalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog.json>",
		Short: "Merge materials from another catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.loadWorkspace(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			merged, added, err := project.ImportCatalog(args[0], ws.catalog)
			if err != nil {
				return err
			}
			if err := project.SaveCatalog(ws.path(catalogFile), merged); err != nil {
				return err
			}
			c.out.success("Imported %d new material(s)", added)
			return nil
		},
	}
}

func (c *CLI) catalogResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the catalog with the default one",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := (&workspace{dir: c.dataDir}).path(catalogFile)
			if err := project.SaveCatalog(path, model.DefaultCatalog()); err != nil {
				return err
			}
			c.out.success("Catalog reset")
			c.out.file(path)
			return nil
		},
	}
}
