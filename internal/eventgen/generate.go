package eventgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
)

const (
	eventImport   = "github.com/DeluxeOwl/evolve/event"
	versionImport = "github.com/DeluxeOwl/evolve/version"
)

// Generate renders the generated file of the package.
// It returns nil when the package has no directives.
func Generate(pkg *Package, maxEvents int) ([]byte, error) {
	if len(pkg.Events) == 0 && len(pkg.Sets) == 0 {
		return nil, nil
	}

	sets, err := pkg.Resolve(maxEvents)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by eventgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg.Name)

	fmt.Fprintf(&buf, "import (\n")
	if len(sets) > 0 {
		fmt.Fprintf(&buf, "\t\"reflect\"\n\n")
	}
	fmt.Fprintf(&buf, "\t%q\n", eventImport)
	fmt.Fprintf(&buf, "\t%q\n", versionImport)
	fmt.Fprintf(&buf, ")\n")

	for _, ev := range pkg.Events {
		recv := ev.Type
		if ev.Pointer {
			recv = "*" + ev.Type
		}

		fmt.Fprintf(&buf, "\nfunc (%s) EventName() event.Name { return %s }\n", recv, strconv.Quote(ev.Name))
		fmt.Fprintf(&buf, "\nfunc (%s) EventVersion() version.Version { return version.Unchecked(%d) }\n", recv, ev.Version.Get())
	}

	for _, s := range sets {
		fmt.Fprintf(&buf, "\n// %sTable lists every event of the %s set.\n", s.Set.Name, s.Set.Name)
		fmt.Fprintf(&buf, "func %sTable() event.Table {\n", s.Set.Name)
		fmt.Fprintf(&buf, "\treturn event.Table{\n")
		for _, ev := range s.Events {
			typ := ev.Type
			if ev.Pointer {
				typ = "*" + ev.Type
			}
			fmt.Fprintf(&buf, "\t\t{Type: reflect.TypeFor[%s](), Name: %s, Version: version.Unchecked(%d)},\n",
				typ, strconv.Quote(ev.Name), ev.Version.Get())
		}
		fmt.Fprintf(&buf, "\t}\n}\n")
	}

	if len(sets) > 0 {
		fmt.Fprintf(&buf, "\nfunc init() {\n")
		for _, s := range sets {
			fmt.Fprintf(&buf, "\tevent.MustVerify(%q, %sTable())\n", s.Set.Name, s.Set.Name)
		}
		fmt.Fprintf(&buf, "}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generate %s: format: %w", pkg.Name, err)
	}

	return src, nil
}
