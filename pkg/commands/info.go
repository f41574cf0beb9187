package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where days are stored.",
		Example: `
reflect info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			defer e.Close()

			s := info.Info{
				Config: e.cfg,
				Store:  e.store,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(commandContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
