package eventgen

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

var ErrNoPackage = errors.New("no package found")

// Load parses the package in dir and collects its directives.
func Load(ctx context.Context, dir string) (*Package, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Context: ctx,
		Dir:     dir,
		Fset:    fset,
		Tests:   false,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("load %s: %w", dir, ErrNoPackage)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		return nil, fmt.Errorf("load %s: %w", dir, errors.Join(errs...))
	}

	return Parse(fset, pkg.Name, pkg.Syntax)
}

// OutputPath returns where the generated file of pkg goes.
func OutputPath(dir, output string, pkg *Package) string {
	if output == "" {
		output = strings.ToLower(pkg.Name) + "_events_gen.go"
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(dir, output)
}
