package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/kage/core/glyph/glyphdb"
	"github.com/npillmayer/kage/engine/resolve"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object for inspecting a glyph store.
type Intp struct {
	db   *glyphdb.Store
	out  io.Writer
	opts []resolve.Option
}

// NewIntp creates an interpreter writing to out.
func NewIntp(db *glyphdb.Store, out io.Writer, opts ...resolve.Option) *Intp {
	return &Intp{db: db, out: out, opts: opts}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() error {
	repl, err := readline.New("kage > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

var errUsage = errors.New("usage: find|strokes|refs|resolve NAME, count [PATTERN], help, quit")

// Execute interprets a single command line.
func (intp *Intp) Execute(line string) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(words[0]), words[1:]
	tracer().Debugf("command %s %v", cmd, args)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, errUsage.Error())
		return false, nil
	case "count":
		if len(args) == 0 {
			fmt.Fprintf(intp.out, "%d glyphs\n", intp.db.Len())
			return false, nil
		}
		sel, err := glyphdb.Pattern(args[0])
		if err != nil {
			return false, err
		}
		fmt.Fprintf(intp.out, "%d glyphs match %s\n", len(intp.db.Select(sel)), sel)
		return false, nil
	}
	if len(args) != 1 {
		return false, errUsage
	}
	name := args[0]
	switch cmd {
	case "find":
		g, ok := intp.db.FindByName(name)
		if !ok {
			fmt.Fprintf(intp.out, "%s: not found\n", name)
			return false, nil
		}
		fmt.Fprintf(intp.out, "%s | %s | %s\n", g.Name, g.Related, g.Data)
	case "strokes":
		g, ok := intp.db.FindByName(name)
		if !ok {
			fmt.Fprintf(intp.out, "%s: not found\n", name)
			return false, nil
		}
		for i, s := range g.Strokes() {
			kind := "stroke"
			if s.IsComposite() {
				kind = "component"
			}
			fmt.Fprintf(intp.out, "%3d %-9s %s\n", i, kind, s)
		}
	case "refs":
		g, ok := intp.db.FindByName(name)
		if !ok {
			fmt.Fprintf(intp.out, "%s: not found\n", name)
			return false, nil
		}
		fmt.Fprintf(intp.out, "%s references [%s]\n", name, strings.Join(g.References(), " "))
	case "resolve":
		r, err := resolve.Resolve(intp.db, name, intp.opts...)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(intp.out, "%s: %s\n", name, strings.Join(r.Names(), " "))
	default:
		return false, errUsage
	}
	return false, nil
}
