package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/logging"
	"tableflip.dev/reflect/pkg/store"
)

// env is what every command needs: config, a logger and an open store with
// legacy entries already migrated.
type env struct {
	cfg    store.Config
	logger *log.Logger
	store  *store.Store
	closer io.Closer
}

type envOptions struct {
	// logToFile keeps the terminal clean for the full screen UI.
	logToFile bool
	// skipMigration leaves legacy files for the migrate command to report.
	skipMigration bool
}

func openEnv(cmd *cobra.Command, o envOptions) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	var (
		out    io.Writer = cmd.ErrOrStderr()
		closer io.Closer
	)
	if o.logToFile {
		w, err := logging.Rotating(cfg.LogFile())
		if err != nil {
			return nil, err
		}
		out, closer = w, w
	}
	logger, err := logging.New(cfg.LogLevel(), out)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	st, err := store.New(cfg, logger)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	if !o.skipMigration {
		st.Migrate(commandContext(cmd))
	}

	if f, ok := cmd.OutOrStdout().(interface{ Fd() uintptr }); ok && !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}

	return &env{cfg: cfg, logger: logger, store: st, closer: closer}, nil
}

func (e *env) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}
