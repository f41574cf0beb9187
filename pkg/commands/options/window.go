package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Last     string
	Calendar bool
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		"Window of days to include, for example 3d, 2w or 1m.")
	cmd.Flags().BoolVarP(&o.Calendar, "calendar", "c", false,
		"Also print a month calendar with stored days in bold.")
}
