package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gridkit/archive"
	"gridkit/deck"
	"gridkit/state"
	"gridkit/table"
	"gridkit/utils/debug"
)

func inspect(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() != 1 {
		return errors.New("inspect requires exactly one SOURCE argument")
	}
	src := cmd.Args().Get(0)

	opts := describeOptions{cells: cmd.Bool("cells"), tree: cmd.Bool("tree")}

	if strings.EqualFold(filepath.Ext(src), ".zip") {
		// every deck in the archive
		return archive.Walk(src, cmd.String("prefix"), ".xml", func(name string, r io.Reader) error {
			doc, err := deck.Read(r, env.Log.Named("deck"))
			if err != nil {
				return fmt.Errorf("unable to load deck '%s' from '%s': %w", name, src, err)
			}
			env.Log.Debug("Deck loaded", zap.String("archive", src), zap.String("file", name), zap.Stringer("id", doc.ID))
			if _, err := fmt.Fprintf(os.Stdout, "== %s\n", name); err != nil {
				return err
			}
			return describe(os.Stdout, doc, opts)
		})
	}

	doc, err := deck.ReadFile(src, env.Log.Named("deck"))
	if err != nil {
		return fmt.Errorf("unable to load deck '%s': %w", src, err)
	}
	if err := env.Rpt.StoreCopy("source.xml", src); err != nil {
		env.Log.Warn("Unable to store source in report", zap.Error(err))
	}
	env.Log.Debug("Deck loaded", zap.String("file", src), zap.Stringer("id", doc.ID))
	return describe(os.Stdout, doc, opts)
}

type describeOptions struct {
	cells bool
	tree  bool
}

// describe prints human readable summary of the deck. Layouts are listed in
// natural order, the one used as relocation fallback is marked.
func describe(w io.Writer, doc *deck.Document, opts describeOptions) error {
	tw := debug.NewTreeWriter()

	if doc.Name != "" {
		tw.Line(0, "deck %s %q", doc.ID, doc.Name)
	} else {
		tw.Line(0, "deck %s", doc.ID)
	}
	tw.Line(0, "layouts:")
	layouts := doc.Layouts()
	fallback := layouts[0].Name
	names := make([]string, 0, len(layouts))
	for _, l := range layouts {
		names = append(names, l.Name)
	}
	sort.Sort(natural.StringSlice(names))
	for _, n := range names {
		mark := ""
		if n == fallback {
			mark = " (fallback)"
		}
		tw.Line(1, "%s%s", n, mark)
	}

	for i, s := range doc.Slides() {
		tw.Line(0, "slide %d [%s]", i, s.LayoutName())
		for _, f := range s.Frames() {
			tbl := f.Table()
			r := f.Bounds()
			tw.Line(1, "frame %q at %.2fx%.2fcm size %.2fx%.2fcm: %dx%d table, %d merged",
				f.Name, r.X.Cm(), r.Y.Cm(), r.W.Cm(), r.H.Cm(), tbl.Rows(), tbl.Cols(), countMerges(tbl))
			if opts.cells {
				describeCells(tw, tbl)
			}
			if opts.tree {
				tw.Grid(tbl.Arena(), tbl.Root(), 2)
			}
		}
	}

	_, err := io.WriteString(w, tw.String())
	return err
}

func countMerges(tbl *table.Table) int {
	n := 0
	for c := range tbl.IterCells() {
		if c.IsMergeOrigin() {
			n++
		}
	}
	return n
}

func describeCells(tw *debug.TreeWriter, tbl *table.Table) {
	for c := range tbl.IterRealCells() {
		row, col, err := c.Index()
		if err != nil {
			continue
		}
		span := ""
		if c.IsMergeOrigin() {
			span = fmt.Sprintf(" span %dx%d", c.SpanHeight(), c.SpanWidth())
		}
		tw.TextBlock(2, fmt.Sprintf("(%d,%d)%s", row, col, span), c.Text())
	}
}
