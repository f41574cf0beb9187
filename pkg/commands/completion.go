package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Print a shell completion script for reflect",
		Long: `Prints the completion script for the given shell, bash when none is named.

Load it into the current bash session with

  . <(reflect completion)

or keep it around by adding that line to ~/.bashrc. For zsh, write the
script somewhere on $fpath:

  reflect completion zsh > "${fpath[1]}/_reflect"
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			default:
				cmd.SilenceUsage = true
				return fmt.Errorf("no completion for shell %q, expected bash, zsh or fish", shell)
			}
		},
	}

	topLevel.AddCommand(cmd)
}
