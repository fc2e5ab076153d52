package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/ModuleCut/internal/engine"
)

func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported module types",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(engine.Rules()))
			for _, r := range engine.Rules() {
				rows = append(rows, []string{string(r.Type), r.Label, r.Category, r.Mount.String(), r.Features.String()})
			}
			c.out.table([]string{"Type", "Label", "Category", "Mount", "Features"}, rows)
			return nil
		},
	}
}
