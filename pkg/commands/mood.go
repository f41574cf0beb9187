package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/commands/options"
	"tableflip.dev/reflect/pkg/day"
	"tableflip.dev/reflect/pkg/runner/edit"
)

func addMood(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var mood day.Mood

	cmd := &cobra.Command{
		Use:   "mood N|NAME",
		Short: "Pick a mood for a day: 1 great, 2 good, 3 okay, 4 low, 5 bad, 0 clears it",
		Example: `
reflect mood 2
reflect mood --on yesterday low
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a mood")
			}
			var err error
			mood, err = day.ParseMood(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
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

			s := edit.Edit{
				Store:  e.store,
				Logger: e.logger,
				On:     date,
				Mood:   &mood,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
