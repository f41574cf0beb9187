package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/commands/options"
	"tableflip.dev/reflect/pkg/runner/edit"
)

func addAction(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "action",
		Aliases: []string{"actions"},
		Short:   "Add or remove the actions logged for a day",
	}

	addActionAdd(cmd)
	addActionRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addActionAdd(parent *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Log an action",
		Example: `
reflect action add Went for a run
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an action")
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

			s := edit.Edit{
				Store:  e.store,
				Logger: e.logger,
				On:     date,
				Add:    []string{strings.Join(args, " ")},
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	options.AddOnArgs(cmd, oo)
	parent.AddCommand(cmd)
}

func addActionRemove(parent *cobra.Command) {
	oo := &options.OnOptions{}
	var position int

	cmd := &cobra.Command{
		Use:     "rm N",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove the action at position N, as numbered by show",
		Example: `
reflect action rm 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires the action number")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid action number %q", args[0])
			}
			position = n
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

			s := edit.Edit{
				Store:  e.store,
				Logger: e.logger,
				On:     date,
				Remove: position,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	options.AddOnArgs(cmd, oo)
	parent.AddCommand(cmd)
}
