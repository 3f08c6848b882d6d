// Command rex runs pattern operations from the command line and prints the
// result as JSON.
//
// Usage:
//
//	rex [flags] <op> <pattern> [template]
//
// where op is one of match, find, find-all, replace, replace-all, split or
// count. The subject is read from -s, from the file named by -f, or from
// standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cast"

	"go.dw1.io/pattern"
	"go.dw1.io/pattern/internal/json"
	"go.dw1.io/pattern/internal/source"
)

const (
	exitOK = iota
	exitFailure
	exitCompile
	exitUsage
)

var errUsage = errors.New("usage: rex [flags] <op> <pattern> [template]")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	engine  string
	names   string
	file    string
	subject string
	group   string
	indent  bool
	hasSubj bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var cfg config
	fset := flag.NewFlagSet("rex", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&cfg.engine, "e", "auto", "engine: auto, core, pcre or re2")
	fset.StringVar(&cfg.names, "names", "", "comma-separated names for the leading capturing groups")
	fset.StringVar(&cfg.file, "f", source.Stdin, "file to read the subject from")
	fset.StringVar(&cfg.subject, "s", "", "subject text; overrides -f")
	fset.StringVar(&cfg.group, "group", "", "print only this group (index or name) for find and find-all")
	fset.BoolVar(&cfg.indent, "indent", false, "indent JSON output")
	if err := fset.Parse(args); err != nil {
		return exitUsage
	}
	fset.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			cfg.hasSubj = true
		}
	})

	rest := fset.Args()
	if len(rest) < 2 {
		logger.Error("missing arguments", "error", errUsage)
		return exitUsage
	}
	op, src := rest[0], rest[1]

	p, err := compile(src, cfg)
	if err != nil {
		logger.Error("invalid pattern", "pattern", src, "error", err)
		if errors.Is(err, pattern.ErrCompile) {
			return exitCompile
		}
		return exitUsage
	}

	subject := cfg.subject
	if !cfg.hasSubj {
		subject, err = source.Read(cfg.file, stdin)
		if err != nil {
			logger.Error("cannot read subject", "file", cfg.file, "error", err)
			return exitFailure
		}
	}

	out, err := apply(p, op, subject, rest[2:], cfg.group)
	if err != nil {
		logger.Error("cannot run operation", "op", op, "error", err)
		return exitUsage
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if cfg.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		logger.Error("cannot write result", "error", err)
		return exitFailure
	}

	return exitOK
}

func compile(src string, cfg config) (*pattern.Pattern, error) {
	kind, err := pattern.ParseEngine(cfg.engine)
	if err != nil {
		return nil, err
	}

	var names []string
	if cfg.names != "" {
		names = strings.Split(cfg.names, ",")
	}

	return pattern.CompileWith(src, pattern.Options{GroupNames: names, Engine: kind})
}

func apply(p *pattern.Pattern, op, subject string, args []string, group string) (any, error) {
	template := func() (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("%s needs a template: %w", op, errUsage)
		}
		return args[0], nil
	}

	switch op {
	case "match":
		return map[string]bool{"matched": p.MatchString(subject)}, nil
	case "find":
		m, ok := p.FindFirst(subject)
		if !ok {
			return nil, nil
		}
		return selectGroup(m, group), nil
	case "find-all":
		all := make([]any, 0)
		for m := range p.FindAll(subject) {
			all = append(all, selectGroup(m, group))
		}
		return all, nil
	case "replace", "replace-all":
		tmpl, err := template()
		if err != nil {
			return nil, err
		}
		if op == "replace" {
			return map[string]string{"result": p.ReplaceFirst(subject, tmpl)}, nil
		}
		return map[string]string{"result": p.ReplaceAll(subject, tmpl)}, nil
	case "split":
		return p.Split(subject), nil
	case "count":
		return map[string]int{"count": p.Count(subject)}, nil
	}

	return nil, fmt.Errorf("unknown op %q: %w", op, errUsage)
}

// selectGroup returns m itself when group is empty, and otherwise the value of
// that group (nil when absent). group is read as an index when it parses as
// an integer and as a name otherwise.
func selectGroup(m *pattern.Match, group string) any {
	if group == "" {
		return m
	}

	var (
		g  string
		ok bool
	)
	if i, err := cast.ToIntE(group); err == nil {
		g, ok = m.Group(i)
	} else {
		g, ok = m.NamedGroup(group)
	}
	if !ok {
		return nil
	}

	return g
}
