package eventgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

var ErrOutdated = errors.New("generated file is out of date")

// Run loads the package in cfg.Dir and writes its generated file.
// In check mode nothing is written and an outdated file is an error.
func Run(ctx context.Context, cfg Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	pkg, err := Load(ctx, cfg.Dir)
	if err != nil {
		return err
	}

	src, err := Generate(pkg, cfg.MaxEvents)
	if err != nil {
		return err
	}

	if src == nil {
		log.InfoContext(ctx, "no directives found", "package", pkg.Name)
		return nil
	}

	path := OutputPath(cfg.Dir, cfg.Output, pkg)
	log.DebugContext(ctx, "generated",
		"package", pkg.Name,
		"events", len(pkg.Events),
		"sets", len(pkg.Sets),
		"path", path,
	)

	if cfg.Check {
		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if !bytes.Equal(current, src) {
			return fmt.Errorf("check %s: %w", path, ErrOutdated)
		}
		return nil
	}

	//nolint:gosec // Generated sources are meant to be readable.
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.InfoContext(ctx, "wrote generated file", "path", path)
	return nil
}
