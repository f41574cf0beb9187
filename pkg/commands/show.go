package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/commands/options"
	"tableflip.dev/reflect/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get"},
		Short:   "Print the journal for a day",
		Example: `
reflect show
reflect show --on 2024-3-15 -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetOn()
			if err != nil {
				return err
			}
			e, err := openEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			defer e.Close()

			s := show.Show{
				Store:  e.store,
				On:     date,
				Output: po.Output,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArgs(cmd, po)
	topLevel.AddCommand(cmd)
}
