package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/reflect/pkg/store"
)

type Info struct {
	Config store.Config
	Store  *store.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = os.Stdout
	}

	if override := os.Getenv("REFLECT_CONFIG_PATH"); override != "" {
		fmt.Fprintln(n.Out, "REFLECT_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(n.Out, "REFLECT_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(n.Out, "Config.path:", n.Config.BasePath())
	fmt.Fprintln(n.Out, "Config.log.file:", n.Config.LogFile())
	fmt.Fprintln(n.Out, "Config.log.level:", n.Config.LogLevel())
	fmt.Fprintln(n.Out, "Config.tick:", n.Config.Tick())

	if n.Store == nil {
		return fmt.Errorf("failed to open the entry store")
	}

	days := n.Store.Days(ctx)
	switch len(days) {
	case 0:
		fmt.Fprintln(n.Out, "Days: none")
	default:
		fmt.Fprintf(n.Out, "Days: %d (%s → %s)\n", len(days), days[0], days[len(days)-1])
	}
	return nil
}
