package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/commands/options"
	"tableflip.dev/reflect/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
reflect ui
reflect ui --on yesterday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, oo.OnString)
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, on string) error {
	cmd.SilenceUsage = true
	oo := &options.OnOptions{OnString: on}
	date, err := oo.GetOn()
	if err != nil {
		return err
	}

	e, err := openEnv(cmd, envOptions{logToFile: true})
	if err != nil {
		return err
	}
	defer e.Close()

	u := ui.UI{
		Store:  e.store,
		Logger: e.logger,
		Tick:   e.cfg.Tick(),
		On:     date,
	}
	return u.Do(commandContext(cmd))
}
