package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/engine"
)

func (c *CLI) compareCommand() *cobra.Command {
	var spec specFlags

	cmd := &cobra.Command{
		Use:   "compare [job-file]",
		Short: "Compare a module as specified, open and with other doors",
		Long: `Calculate what-if variants of a module side by side: as specified, as an
open module, and with glass or board doors, whichever applies.`,
		Example: `  modulecut compare --type alacena -W 900 -H 700 -D 330 --doors 2`,
		Args:    cobra.MaximumNArgs(1),
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

			variants := engine.BuildDefaultVariants(resolved)
			results := engine.CompareVariants(ws.calculator(), variants, job.Extras)

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					logger.Debug("Variant failed", "variant", r.Variant.Name, "err", r.Err)
					rows = append(rows, []string{r.Variant.Name, "-", "-", "-", "-", engine.UserMessage(r.Err)})
					continue
				}
				rows = append(rows, []string{
					r.Variant.Name,
					strconv.Itoa(r.PieceCount),
					formatNumber(r.BoardArea),
					formatNumber(r.EdgeLength),
					strconv.Itoa(r.Materials),
					"ok",
				})
			}
			c.out.table([]string{"Variant", "Pieces", "Board m²", "Edge m", "Materials", "Status"}, rows)

			if failed == len(results) {
				return fmt.Errorf("no variant could be calculated: %w", results[0].Err)
			}
			return nil
		},
	}

	spec.register(cmd)
	return cmd
}
