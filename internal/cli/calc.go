package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/export"
	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

// outputFlags selects the report files written after a calculation.
type outputFlags struct {
	json    bool
	draft   bool
	pdf     string
	labels  string
	xlsx    string
	csv     string
	dxf     string
	saveJob string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.BoolVar(&o.json, "json", false, "print the result as JSON")
	fl.BoolVar(&o.draft, "draft", false, "print a product draft (name, category, description, materials) instead of the cut list")
	fl.StringVar(&o.pdf, "pdf", "", "write a PDF report")
	fl.StringVar(&o.labels, "labels", "", "write QR piece labels (PDF)")
	fl.StringVar(&o.xlsx, "xlsx", "", "write an Excel workbook")
	fl.StringVar(&o.csv, "csv", "", "write a CSV cut list")
	fl.StringVar(&o.dxf, "dxf", "", "write DXF panel outlines")
	fl.StringVar(&o.saveJob, "save-job", "", "save the module as a job file (.toml, .yaml or .json)")
}

// write runs every requested exporter and returns the written paths.
func (o *outputFlags) write(r export.Report) ([]string, error) {
	exporters := []struct {
		path string
		fn   func(string, export.Report) error
	}{
		{o.pdf, export.ExportPDF},
		{o.labels, export.ExportLabels},
		{o.xlsx, export.ExportXLSX},
		{o.csv, export.ExportCSV},
		{o.dxf, export.ExportDXF},
	}
	var written []string
	for _, e := range exporters {
		if e.path == "" {
			continue
		}
		if err := e.fn(e.path, r); err != nil {
			return written, err
		}
		written = append(written, e.path)
	}
	return written, nil
}

func (c *CLI) calcCommand() *cobra.Command {
	var spec specFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "calc [job-file]",
		Short: "Decompose a module into pieces and materials",
		Long: `Decompose a module into its cut list and bill of materials.

The module comes from a job file (.toml, .yaml or .json), a saved preset or
a module type with factory defaults. Flags override individual fields.`,
		Example: `  modulecut calc kitchen/sink.toml --pdf sink.pdf
  modulecut calc --type placard -W 1800 -H 2200 -D 550 --doors 2 --rods 2
  modulecut calc --type bajo-mesada --extra mat-60=2 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ws, err := c.loadWorkspace(logger)
			if err != nil {
				return err
			}

			job, err := spec.job(cmd, args, c.loadPresets)
			if err != nil {
				return err
			}
			resolved, err := ws.resolve(job)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			result, err := ws.calculator().Calculate(resolved, job.Extras)
			if err != nil {
				logger.Debug("Calculation failed", "kind", engine.KindOf(err))
				return fmt.Errorf("calculate %s: %w", resolved.ModuleType, err)
			}
			prog.done(fmt.Sprintf("Calculated %d pieces, %d materials", result.PieceCount(), len(result.Materials)))

			var draft engine.ProductDraft
			if out.draft {
				if draft, err = engine.DraftProduct(result); err != nil {
					return err
				}
			}

			switch {
			case out.json && out.draft:
				err = c.printJSON(draft)
			case out.json:
				err = c.printJSON(result)
			case out.draft:
				c.printDraft(ws, draft)
			default:
				c.printResult(ws, result)
			}
			if err != nil {
				return err
			}

			written, err := out.write(ws.report(result))
			for _, path := range written {
				logger.Debug("Wrote report", "path", path)
			}
			if err != nil {
				return err
			}
			if out.saveJob != "" {
				if err := project.SaveJob(out.saveJob, job); err != nil {
					return err
				}
				written = append(written, out.saveJob)
			}
			if len(written) > 0 && !out.json {
				c.out.newline()
				c.out.success("Wrote %d file(s)", len(written))
				for _, path := range written {
					c.out.file(path)
				}
			}

			if len(args) > 0 {
				if err := ws.rememberJob(args[0]); err != nil {
					logger.Warn("Could not update recent jobs", "err", err)
				}
			}
			return nil
		},
	}

	spec.register(cmd)
	out.register(cmd)
	return cmd
}

func (c *CLI) loadPresets() (model.PresetStore, error) {
	return project.LoadPresets((&workspace{dir: c.dataDir}).path(presetsFile))
}

func (c *CLI) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out.w, string(data))
	return nil
}

func (c *CLI) printDraft(ws *workspace, d engine.ProductDraft) {
	c.out.title(d.Name)
	c.out.keyValue("Category", d.Category)
	c.out.keyValue("Description", d.Description)
	c.out.newline()
	rows := make([][]string, len(d.Materials))
	for i, m := range d.Materials {
		rows[i] = []string{m.MaterialID, ws.catalog.Describe(m.MaterialID), formatNumber(m.Quantity), m.Unit}
	}
	c.out.table([]string{"Material", "Description", "Quantity", "Unit"}, rows)
}

func (c *CLI) printResult(ws *workspace, result model.CalculationResult) {
	spec := result.Spec
	name := spec.Label
	if name == "" {
		name = engine.Label(spec.ModuleType)
	}
	c.out.title(fmt.Sprintf("%s %s", name, spec.Dimensions))
	c.out.newline()

	rows := make([][]string, len(result.Pieces))
	for i, p := range result.Pieces {
		rows[i] = []string{
			p.Name,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.Length),
			strconv.Itoa(p.Width),
			string(p.Class),
			p.Edges.String(),
		}
	}
	c.out.table([]string{"Piece", "Qty", "Length", "Width", "Class", "Edges"}, rows)

	rows = make([][]string, len(result.Materials))
	for i, m := range result.Materials {
		rows[i] = []string{m.MaterialID, ws.catalog.Describe(m.MaterialID), formatNumber(m.Quantity), m.Unit}
	}
	c.out.table([]string{"Material", "Description", "Quantity", "Unit"}, rows)

	c.out.keyValue("Pieces", strconv.Itoa(result.PieceCount()))
	c.out.keyValue("Board area", formatNumber(result.BoardArea())+" m²")
	c.out.keyValue("Edge band", formatNumber(engine.EdgeLength(result.Pieces)/1000)+" m")
}

var numbers = message.NewPrinter(language.English)

// formatNumber prints v with thousands separators and at most 4 decimals.
func formatNumber(v float64) string {
	return numbers.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(4)))
}
