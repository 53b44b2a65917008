// Command generrno renders macoserrno/zerrno.go from the declarative
// error-number table in table.go. Constants and the name/description
// lookup share that one table so they cannot drift apart.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/template"

	"github.com/ngicks/go-common/serr"
	"golang.org/x/tools/imports"
)

var out = flag.String("out", "zerrno.go", "output path, relative to cwd")

//go:embed zerrno.tmpl
var zerrnoTmpl string

var tmpl = template.Must(template.New("zerrno").Parse(zerrnoTmpl))

type errnoDef struct {
	Name  string
	Value int32
	Desc  string
}

type templateParam struct {
	Groups [][]errnoDef
	All    []errnoDef
}

func main() {
	flag.Parse()
	if err := run(*out); err != nil {
		fmt.Fprintf(os.Stderr, "generrno: %v\n", err)
		os.Exit(1)
	}
}

func run(out string) error {
	if err := validateDefs(errnoDefs); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	src, err := render(errnoDefs)
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

func render(groups [][]errnoDef) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, templateParam{Groups: groups, All: flatten(groups)})
	if err != nil {
		return nil, err
	}
	formatted, err := imports.Process("zerrno.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return formatted, nil
}

func flatten(groups [][]errnoDef) []errnoDef {
	var all []errnoDef
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// validateDefs checks the whole table and reports every broken entry at
// once, not just the first.
func validateDefs(groups [][]errnoDef) error {
	all := flatten(groups)
	seenName := make(map[string]bool, len(all))
	seenValue := make(map[int32]string, len(all))
	errs := make([]serr.PrefixErr, len(all))
	var prev int32
	for i, def := range all {
		errs[i] = serr.PrefixErr{
			P: fmt.Sprintf("entry %d (%s): ", i, def.Name),
			E: checkDef(def, prev, seenName, seenValue),
		}
		seenName[def.Name] = true
		seenValue[def.Value] = def.Name
		prev = def.Value
	}
	return serr.GatherPrefixed(errs)
}

func checkDef(def errnoDef, prev int32, seenName map[string]bool, seenValue map[int32]string) error {
	switch {
	case def.Name == "":
		return errors.New("empty name")
	case def.Value == 0:
		return errors.New("zero is not an error number")
	case seenName[def.Name]:
		return errors.New("duplicate name")
	}
	if other, ok := seenValue[def.Value]; ok {
		return fmt.Errorf("value %d already taken by %s", def.Value, other)
	}
	if def.Value < prev {
		return fmt.Errorf("value %d out of order", def.Value)
	}
	return nil
}
