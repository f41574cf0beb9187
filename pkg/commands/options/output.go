package options

import (
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	Output string
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "text",
		"Output format. One of 'text', 'json' or 'yaml'.")
}
