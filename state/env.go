// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gridkit/config"
	"gridkit/deck"
	"gridkit/script"
	"gridkit/table"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by apply subcommand
	Overwrite bool

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// NewDocument creates empty deck with configured layouts.
func (e *LocalEnv) NewDocument(name string) (*deck.Document, error) {
	return deck.New(name, e.Cfg.Document.Layouts, e.Log.Named("deck"))
}

// ScriptDefaults returns configured values for edit steps which leave them
// out.
func (e *LocalEnv) ScriptDefaults() script.Defaults {
	doc := &e.Cfg.Document
	return script.Defaults{
		Layout:      doc.DefaultLayout,
		RowHeight:   doc.Table.RowHeight,
		ColumnWidth: doc.Table.ColumnWidth,
		Join: table.JoinOptions{
			Trim:        doc.Join.Trim,
			RemoveDonor: doc.Join.RemoveDonor,
		},
	}
}
