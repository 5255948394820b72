package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph/glyphdb"
	"github.com/npillmayer/kage/engine/batch"
	"github.com/npillmayer/kage/engine/resolve"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// app carries state shared by all commands.
type app struct {
	configFile string
	conf       *Config
}

func rootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "kagecli",
		Short: "Render glyphs of a KAGE glyph dump",
		Long: `kagecli loads a glyph dump (name|related|data per line), resolves
composite glyphs into their components and renders them to image files.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := LoadConfig(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := initTracing(conf.Trace); err != nil {
				return err
			}
			tracer().Infof("configuration: %s", conf)
			a.conf = conf
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file (default ./kage.yaml)")
	flags.String("dump", "", "glyph dump file")
	flags.Bool("psql", false, "dump is psql table output, skip its decoration")
	flags.StringP("out", "o", "", "output directory (has to exist)")
	flags.String("format", "", "output format [svg|png]")
	flags.Int("size", 0, "edge length of PNG images in pixels")
	flags.Float64("weight", 0, "stroke width in KAGE units")
	flags.String("preset", "", "glyph selection preset [unicode|dkw]")
	flags.String("pattern", "", "select glyphs by regular expression")
	flags.String("prefix", "", "select glyphs by name prefix")
	flags.IntP("workers", "j", 0, "number of concurrent workers (default: number of CPUs)")
	flags.Bool("dedup", false, "hand every component to the renderer only once")
	flags.String("trace", "", "trace level [Debug|Info|Error]")

	root.AddCommand(a.renderCommand())
	root.AddCommand(a.listCommand())
	root.AddCommand(a.resolveCommand())
	root.AddCommand(a.inspectCommand())
	return root
}

// loadStore loads the configured glyph dump. Loading has to complete before
// any glyph is resolved.
func (a *app) loadStore() (*glyphdb.Store, error) {
	spinner, _ := pterm.DefaultSpinner.Start("Loading glyph dump " + a.conf.Dump)
	db, err := glyphdb.LoadFile(a.conf.Dump, a.conf.LoadOptions()...)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Cannot load glyph dump")
		}
		return nil, err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("Loaded %d glyphs", db.Len()))
	}
	return db, nil
}

func (a *app) candidates(db *glyphdb.Store) ([]string, error) {
	sel, err := a.conf.Selector()
	if err != nil {
		return nil, err
	}
	names := db.Select(sel)
	tracer().Infof("%s selects %d glyphs", sel, len(names))
	return names, nil
}

func (a *app) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render all selected glyphs to image files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.loadStore()
			if err != nil {
				return err
			}
			names, err := a.candidates(db)
			if err != nil {
				return err
			}
			renderer, err := a.conf.Renderer()
			if err != nil {
				return err
			}
			driver, err := batch.New(db, renderer, batch.Config{
				OutputDir: a.conf.Output.Dir,
				Workers:   a.conf.Workers,
				Resolve:   a.conf.ResolveOptions(),
				Progress:  &progressBar{title: "Rendering glyphs"},
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			report, err := driver.Run(ctx, names)
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}
}

func printReport(report *batch.Report) {
	pterm.Success.Println(report.Summary())
	if len(report.Skipped) == 0 {
		return
	}
	counts := report.SkipCounts()
	codes := make([]int, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		pterm.Warning.Printfln("%d glyphs skipped: %s", counts[code], codeText(code))
	}
	for _, s := range report.Skipped {
		tracer().Infof("skipped %s: %s", s.Name, s.Reason())
	}
}

func codeText(code int) string {
	return core.UserMessage(core.ErrorWithCode(nil, code))
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the names of all selected glyphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.loadStore()
			if err != nil {
				return err
			}
			names, err := a.candidates(db)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Show the glyphs needed to render the given glyphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.loadStore()
			if err != nil {
				return err
			}
			for _, name := range args {
				r, err := resolve.Resolve(db, name, a.conf.ResolveOptions()...)
				if err != nil {
					pterm.Error.Println(err.Error())
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(r.Names(), " "))
			}
			return nil
		},
	}
}

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Interactively inspect the glyph dump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.loadStore()
			if err != nil {
				return err
			}
			intp := NewIntp(db, cmd.OutOrStdout(), a.conf.ResolveOptions()...)
			return intp.REPL()
		},
	}
}
