package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/export"
	"github.com/piwi3910/ModuleCut/internal/importer"
	"github.com/piwi3910/ModuleCut/internal/model"
)

func (c *CLI) batchCommand() *cobra.Command {
	var outDir string
	var profile string

	cmd := &cobra.Command{
		Use:   "batch <modules.csv|modules.xlsx>",
		Short: "Calculate every module listed in a spreadsheet",
		Long: `Import a list of modules from CSV or Excel and calculate each one.

Columns are matched by header name in English or Spanish (type/tipo,
width/ancho, height/alto, depth/profundidad, doors/puertas, ...). Rows that
fail to parse or calculate are reported and skipped. With --out, a workbook
per module and a combined bill of materials are written to the directory.`,
		Example: `  modulecut batch kitchen.xlsx --out build/
  modulecut batch modules.csv --profile "Premium Hardware"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ws, err := c.loadWorkspace(logger)
			if err != nil {
				return err
			}

			imported := importer.Import(args[0])
			for _, w := range imported.Warnings {
				logger.Debug(w)
			}
			for _, e := range imported.Errors {
				c.out.warning("%s", e)
			}
			if len(imported.Jobs) == 0 {
				return fmt.Errorf("no modules imported from %s", args[0])
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}

			prog := newProgress(logger)
			calc := ws.calculator()
			var total []model.MaterialUsage
			rows := make([][]string, 0, len(imported.Jobs))
			ok := 0
			for i, job := range imported.Jobs {
				if profile != "" && job.Profile == "" {
					job.Profile = profile
				}
				name := job.Module.Label
				if name == "" {
					name = fmt.Sprintf("%s-%d", job.Module.ModuleType, i+1)
				}

				spec, err := ws.resolve(job)
				if err == nil {
					var result model.CalculationResult
					result, err = calc.Calculate(spec, job.Extras)
					if err == nil {
						ok++
						total, _ = engine.MergeExtras(append(total, result.Materials...), nil, nil)
						rows = append(rows, []string{
							name, string(result.Spec.ModuleType), result.Spec.Dimensions.String(),
							strconv.Itoa(result.PieceCount()), formatNumber(result.BoardArea()), "ok",
						})
						if outDir != "" {
							path := filepath.Join(outDir, fileSafe(name)+".xlsx")
							if err := export.ExportXLSX(path, ws.report(result)); err != nil {
								return err
							}
							logger.Debug("Wrote workbook", "path", path)
						}
						continue
					}
				}
				rows = append(rows, []string{
					name, string(job.Module.ModuleType), job.Module.Dimensions.String(), "-", "-", engine.UserMessage(err),
				})
			}
			prog.done(fmt.Sprintf("Calculated %d of %d modules", ok, len(imported.Jobs)))

			c.out.table([]string{"Module", "Type", "Size", "Pieces", "Board m²", "Status"}, rows)
			if len(total) > 0 {
				c.out.title("Combined materials")
				materialRows := make([][]string, len(total))
				for i, m := range total {
					materialRows[i] = []string{m.MaterialID, ws.catalog.Describe(m.MaterialID), formatNumber(m.Quantity), m.Unit}
				}
				c.out.table([]string{"Material", "Description", "Quantity", "Unit"}, materialRows)
			}

			if outDir != "" && len(total) > 0 {
				path := filepath.Join(outDir, "materials.csv")
				combined := ws.report(model.CalculationResult{Materials: total})
				if err := export.ExportCSV(path, combined); err != nil {
					return err
				}
				c.out.success("Wrote reports to %s", outDir)
			}

			if ok == 0 {
				return fmt.Errorf("none of the %d modules could be calculated", len(imported.Jobs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for per-module workbooks and the combined materials CSV")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "selection profile for rows that name none")
	return cmd
}

// fileSafe replaces path separators and spaces in a module name.
func fileSafe(name string) string {
	out := []rune(name)
	for i, r := range out {
		switch r {
		case '/', '\\', ' ', ':':
			out[i] = '_'
		}
	}
	return string(out)
}
