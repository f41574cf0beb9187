package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/reflect/pkg/store"
)

// Migrator converts legacy day files.
type Migrator interface {
	Migrate(ctx context.Context) store.MigrationReport
}

type Migrate struct {
	Store Migrator
	Out   io.Writer
}

func (n *Migrate) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not migrate, no store")
	}
	if n.Out == nil {
		n.Out = os.Stdout
	}

	report := n.Store.Migrate(ctx)
	for _, d := range report.Migrated {
		_, _ = fmt.Fprintf(n.Out, "migrated %s\n", d)
	}
	for _, f := range report.Skipped {
		_, _ = fmt.Fprintf(n.Out, "skipped  %s\n", f)
	}
	if len(report.Migrated) == 0 && len(report.Skipped) == 0 {
		_, _ = fmt.Fprintln(n.Out, "no legacy entries found")
	}
	if len(report.Skipped) > 0 {
		return fmt.Errorf("%d legacy entries could not be migrated", len(report.Skipped))
	}
	return nil
}
