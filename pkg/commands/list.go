package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/commands/options"
	"tableflip.dev/reflect/pkg/runner/list"
	"tableflip.dev/reflect/pkg/timeutil"
)

func addList(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "log"},
		Short:   "List the days journaled within a time window",
		Example: `
reflect list
reflect list --last 1m --calendar
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, label, err := timeutil.ParseWindow(wo.Last)
			if err != nil {
				return err
			}
			until, err := oo.GetOn()
			if err != nil {
				return err
			}
			e, err := openEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			defer e.Close()

			l := list.List{
				Store:    e.store,
				Window:   window,
				Label:    label,
				Until:    until,
				Calendar: wo.Calendar,
				Out:      cmd.OutOrStdout(),
			}
			return l.Do(commandContext(cmd))
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
