package script

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gridkit/common"
	"gridkit/deck"
	"gridkit/table"
	"gridkit/units"
)

// Defaults fill in values steps leave out.
type Defaults struct {
	Layout      string
	RowHeight   units.Length
	ColumnWidth units.Length
	Join        table.JoinOptions
}

type Runner struct {
	doc      *deck.Document
	defaults Defaults
	dir      string
	log      *zap.Logger
}

// NewRunner prepares runner editing doc. Relative deck paths in relocate
// steps are resolved against dir.
func NewRunner(doc *deck.Document, defaults Defaults, dir string, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{doc: doc, defaults: defaults, dir: dir, log: log}
}

// Run executes steps in order. Every step either succeeds or leaves document
// unchanged, so with KeepGoing set later steps still see consistent state.
func (r *Runner) Run(ctx context.Context, s *Script) error {
	var errs error
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		r.log.Debug("Executing step", zap.Int("step", i), zap.Stringer("op", st.Op))
		if err := r.step(st); err != nil {
			err = fmt.Errorf("step %d (%s): %w", i, st.Op, err)
			if !s.KeepGoing {
				return err
			}
			r.log.Warn("Step failed", zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (r *Runner) step(st Step) error {
	switch st.Op {
	case OpAddSlide:
		return r.addSlide(st)
	case OpAddTable:
		return r.addTable(st)
	case OpRelocate:
		return r.relocate(st)
	case OpMoveFrame:
		return r.moveFrame(st)
	}

	f, err := r.frame(st.Slide, st.Frame)
	if err != nil {
		return err
	}
	tbl := f.Table()

	switch st.Op {
	case OpMerge:
		a, err := cell(tbl, st.From)
		if err != nil {
			return err
		}
		b, err := cell(tbl, st.To)
		if err != nil {
			return err
		}
		return tbl.Merge(a, b)
	case OpSplit:
		c, err := cell(tbl, st.Cell)
		if err != nil {
			return err
		}
		return tbl.Split(c)
	case OpAddRows:
		_, err := tbl.AddRows(count(st.Count), st.Size)
		return err
	case OpAddColumns:
		_, err := tbl.AddColumns(count(st.Count), st.Size)
		return err
	case OpDeleteRow:
		return tbl.DeleteRow(st.Index)
	case OpDeleteColumn:
		return tbl.DeleteColumn(st.Index)
	case OpSetText:
		c, err := cell(tbl, st.Cell)
		if err != nil {
			return err
		}
		if c.IsSpanned() {
			return fmt.Errorf("cell %v is covered by merge: %w", st.Cell, table.ErrOverlap)
		}
		c.SetText(st.Text)
		return nil
	case OpSetRowHeight:
		row, err := tbl.Row(st.Index)
		if err != nil {
			return err
		}
		return row.SetHeight(st.Size)
	case OpSetColumnWidth:
		col, err := tbl.Column(st.Index)
		if err != nil {
			return err
		}
		return col.SetWidth(st.Size)
	case OpJoin:
		return r.join(tbl, st)
	case OpOrient:
		return table.Orient(f, st.X, st.Y, st.Ref)
	}
	return fmt.Errorf("unsupported operation %s: %w", st.Op, ErrBadStep)
}

func cell(tbl *table.Table, ref CellRef) (table.Cell, error) {
	return tbl.Cell(ref.Row, ref.Col)
}

func (r *Runner) slide(idx int) (*deck.Slide, error) {
	return r.doc.Slide(idx)
}

func (r *Runner) frame(slide int, name string) (*deck.Frame, error) {
	if name == "" {
		return nil, fmt.Errorf("frame name is required: %w", ErrBadStep)
	}
	s, err := r.slide(slide)
	if err != nil {
		return nil, err
	}
	return s.Frame(name)
}

func (r *Runner) layout(name string) (*deck.Layout, error) {
	if name == "" {
		name = r.defaults.Layout
	}
	if name == "" {
		return r.doc.Layouts()[0], nil
	}
	l := r.doc.Layout(name)
	if l == nil {
		return nil, fmt.Errorf("layout %q: %w", name, deck.ErrNotFound)
	}
	return l, nil
}

func (r *Runner) addSlide(st Step) error {
	l, err := r.layout(st.Layout)
	if err != nil {
		return err
	}
	_, err = r.doc.AddSlide(l)
	return err
}

func (r *Runner) addTable(st Step) error {
	s, err := r.slide(st.Slide)
	if err != nil {
		return err
	}
	if st.Name != "" {
		if _, err := s.Frame(st.Name); err == nil {
			return fmt.Errorf("frame %q already exists: %w", st.Name, ErrBadStep)
		}
	}

	var f *deck.Frame
	if len(st.Widths) > 0 || len(st.Heights) > 0 {
		f, err = s.AddTableSized(st.X, st.Y, st.Widths, st.Heights)
	} else {
		w, h := st.W, st.H
		if w == 0 {
			w = r.defaults.ColumnWidth * units.Length(st.Cols)
		}
		if h == 0 {
			h = r.defaults.RowHeight * units.Length(st.Rows)
		}
		f, err = s.AddTable(st.Rows, st.Cols, st.X, st.Y, w, h)
	}
	if err != nil {
		return err
	}
	if st.Name != "" {
		f.Name = st.Name
	}
	return nil
}

func (r *Runner) join(tbl *table.Table, st Step) error {
	donorSlide := st.Slide
	if st.DonorSlide != nil {
		donorSlide = *st.DonorSlide
	}
	df, err := r.frame(donorSlide, st.Donor)
	if err != nil {
		return fmt.Errorf("donor: %w", err)
	}
	side, err := common.ParseSideOrIndex(st.Side)
	if err != nil {
		return err
	}
	opts := r.defaults.Join
	if st.Trim != nil {
		opts.Trim = *st.Trim
	}
	if st.RemoveDonor != nil {
		opts.RemoveDonor = *st.RemoveDonor
	}
	return tbl.Join(df.Table(), side, opts)
}

// relocate copies slide of another deck (or of the edited one when no source
// is given) to the end of the edited deck.
func (r *Runner) relocate(st Step) error {
	src := r.doc
	if st.Source != "" {
		path := st.Source
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.dir, path)
		}
		var err error
		if src, err = deck.ReadFile(path, r.log.Named("source")); err != nil {
			return err
		}
	}
	s, err := src.Slide(st.Slide)
	if err != nil {
		return err
	}
	_, err = deck.Relocate(s, r.doc)
	return err
}

func (r *Runner) moveFrame(st Step) error {
	f, err := r.frame(st.Slide, st.Frame)
	if err != nil {
		return err
	}
	dst, err := r.slide(st.Target)
	if err != nil {
		return err
	}
	_, err = f.MoveTo(dst, st.Duplicate)
	return err
}

// count treats absent count as 1, anything else goes to the table as is.
func count(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
