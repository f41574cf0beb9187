package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/runner/migrate"
)

func addMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Convert plain text day files (YYYY-MM-DD.txt) into journal entries",
		Long: `Every command already does this on startup. Run it by hand to see which
files were converted and which could not be.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(cmd, envOptions{skipMigration: true})
			if err != nil {
				return err
			}
			defer e.Close()

			m := migrate.Migrate{Store: e.store, Out: cmd.OutOrStdout()}
			return m.Do(commandContext(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
