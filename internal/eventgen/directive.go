// Package eventgen reads //evolve: directives from Go sources and generates
// event identity methods and event set tables.
package eventgen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/DeluxeOwl/evolve/version"
)

const (
	eventDirective = "//evolve:event"
	setDirective   = "//evolve:set"
)

var (
	ErrInvalidDirective   = errors.New("invalid directive")
	ErrInvalidVersion     = errors.New("invalid version")
	ErrDuplicateDirective = errors.New("duplicate directive")
	ErrUnknownMember      = errors.New("unknown set member")
	ErrCycle              = errors.New("set contains itself")
)

// Event is a struct type annotated with //evolve:event.
type Event struct {
	Type    string
	Name    string
	Version version.Version
	Pointer bool
	Pos     token.Position
}

// Set is an interface type annotated with //evolve:set.
type Set struct {
	Name    string
	Members []string
	Pos     token.Position
}

// Package holds every directive found in the files of one Go package.
type Package struct {
	Name   string
	Events []*Event
	Sets   []*Set
}

func (p *Package) event(typ string) (*Event, bool) {
	for _, ev := range p.Events {
		if ev.Type == typ {
			return ev, true
		}
	}
	return nil, false
}

func (p *Package) set(name string) (*Set, bool) {
	for _, s := range p.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Parse collects the directives of the files of a package.
// The files must have been parsed with comments.
func Parse(fset *token.FileSet, name string, files []*ast.File) (*Package, error) {
	pkg := &Package{
		Name:   name,
		Events: nil,
		Sets:   nil,
	}

	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				//nolint:forcetypeassert // Type declarations only hold type specs.
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				if doc == nil {
					continue
				}

				if err := pkg.parseSpec(fset, ts, doc); err != nil {
					return nil, err
				}
			}
		}
	}

	return pkg, nil
}

func (p *Package) parseSpec(fset *token.FileSet, ts *ast.TypeSpec, doc *ast.CommentGroup) error {
	seen := false

	for _, c := range doc.List {
		text := strings.TrimSpace(c.Text)
		pos := fset.Position(c.Pos())

		var (
			err error
			ok  bool
		)
		switch {
		case hasDirective(text, eventDirective):
			ok = true
			err = p.parseEvent(ts, strings.TrimPrefix(text, eventDirective), pos)
		case hasDirective(text, setDirective):
			ok = true
			err = p.parseSet(ts, strings.TrimPrefix(text, setDirective), pos)
		}
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if seen {
			return fmt.Errorf("%s: %s: %w", pos, ts.Name.Name, ErrDuplicateDirective)
		}
		seen = true
	}

	return nil
}

func hasDirective(text, directive string) bool {
	rest, ok := strings.CutPrefix(text, directive)
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

func (p *Package) parseEvent(ts *ast.TypeSpec, args string, pos token.Position) error {
	typ := ts.Name.Name
	if _, ok := ts.Type.(*ast.StructType); !ok {
		return fmt.Errorf("%s: %s: events must be struct types: %w", pos, typ, ErrInvalidDirective)
	}
	if ts.TypeParams != nil {
		return fmt.Errorf("%s: %s: events can't be generic: %w", pos, typ, ErrInvalidDirective)
	}

	ev := &Event{
		Type:    typ,
		Name:    "",
		Version: 0,
		Pointer: false,
		Pos:     pos,
	}

	for _, field := range strings.Fields(args) {
		key, value, hasValue := strings.Cut(field, "=")

		switch {
		case key == "pointer" && !hasValue:
			ev.Pointer = true
		case key == "name" && hasValue:
			name, err := unquote(value)
			if err != nil || name == "" {
				return fmt.Errorf("%s: %s: bad name %s: %w", pos, typ, value, ErrInvalidDirective)
			}
			ev.Name = name
		case key == "version" && hasValue:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("%s: %s: version %q: %w", pos, typ, value, ErrInvalidVersion)
			}
			v, ok := version.New(n)
			if !ok {
				return fmt.Errorf("%s: %s: version %d is outside [1, %d]: %w", pos, typ, n, version.Max, ErrInvalidVersion)
			}
			ev.Version = v
		default:
			return fmt.Errorf("%s: %s: unexpected %q: %w", pos, typ, field, ErrInvalidDirective)
		}
	}

	if ev.Name == "" {
		return fmt.Errorf("%s: %s: missing name: %w", pos, typ, ErrInvalidDirective)
	}
	if !ev.Version.Valid() {
		return fmt.Errorf("%s: %s: missing version: %w", pos, typ, ErrInvalidVersion)
	}

	p.Events = append(p.Events, ev)
	return nil
}

func (p *Package) parseSet(ts *ast.TypeSpec, args string, pos token.Position) error {
	if _, ok := ts.Type.(*ast.InterfaceType); !ok {
		return fmt.Errorf("%s: %s: sets must be interface types: %w", pos, ts.Name.Name, ErrInvalidDirective)
	}

	members := strings.Fields(args)
	if len(members) == 0 {
		return fmt.Errorf("%s: %s: a set needs members: %w", pos, ts.Name.Name, ErrInvalidDirective)
	}

	p.Sets = append(p.Sets, &Set{
		Name:    ts.Name.Name,
		Members: members,
		Pos:     pos,
	})
	return nil
}

// unquote accepts both bare and Go quoted names.
func unquote(value string) (string, error) {
	if strings.HasPrefix(value, `"`) {
		return strconv.Unquote(value)
	}
	return value, nil
}
