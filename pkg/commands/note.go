package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/commands/options"
	"tableflip.dev/reflect/pkg/runner/edit"
)

func addNote(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var appendNote bool

	cmd := &cobra.Command{
		Use:   "note TEXT...",
		Short: "Set the note for a day",
		Example: `
reflect note Had a good day
reflect note --on yesterday --append Forgot to mention the walk
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note")
			}
			return nil
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

			note := strings.Join(args, " ")
			s := edit.Edit{
				Store:  e.store,
				Logger: e.logger,
				On:     date,
				Note:   &note,
				Append: appendNote,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVarP(&appendNote, "append", "a", false, "Append to the existing note instead of replacing it.")
	topLevel.AddCommand(cmd)
}
