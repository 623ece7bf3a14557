package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gridkit/deck"
	"gridkit/script"
	"gridkit/state"
	"gridkit/utils/debug"
)

func apply(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	args := cmd.Args()
	if args.Len() < 2 || args.Len() > 3 {
		return errors.New("apply requires SCRIPT and SOURCE arguments")
	}
	env.Overwrite = cmd.Bool("overwrite")

	dst, err := runApply(ctx, env, args.Get(0), args.Get(1), args.Get(2), cmd.Bool("create"))
	if err != nil {
		return err
	}
	env.Log.Info("Deck written", zap.String("file", dst), zap.Duration("elapsed", env.Uptime()))
	return nil
}

// runApply executes script against source deck and writes result, returns
// name of the written file.
func runApply(ctx context.Context, env *state.LocalEnv, scriptPath, src, dst string, create bool) (string, error) {
	s, err := script.Load(scriptPath)
	if err != nil {
		return "", err
	}
	if err := env.Rpt.StoreCopy("script.yaml", scriptPath); err != nil {
		env.Log.Warn("Unable to store script in report", zap.Error(err))
	}

	if dst == "" {
		name, err := env.Cfg.Document.OutputName(src, scriptPath)
		if err != nil {
			return "", err
		}
		dst = filepath.Join(filepath.Dir(src), name)
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return "", fmt.Errorf("destination '%s' already exists", dst)
	}

	doc, err := loadOrCreate(env, src, create)
	if err != nil {
		return "", err
	}

	r := script.NewRunner(doc, env.ScriptDefaults(), filepath.Dir(scriptPath), env.Log.Named("script"))
	if err := r.Run(ctx, s); err != nil {
		if !s.KeepGoing {
			return "", fmt.Errorf("unable to apply '%s': %w", scriptPath, err)
		}
		// every step is atomic, so partial result is still consistent
		env.Log.Warn("Some steps failed", zap.Error(err))
	}

	if err := doc.WriteFile(dst); err != nil {
		return "", err
	}
	env.Rpt.Store("result.xml", dst)
	env.Rpt.StoreData("result-tree.txt", []byte(treeDump(doc)))
	return dst, nil
}

// treeDump renders node trees of all tables in the document.
func treeDump(doc *deck.Document) string {
	tw := debug.NewTreeWriter()
	for i, s := range doc.Slides() {
		tw.Line(0, "slide %d", i)
		for _, f := range s.Frames() {
			tw.Line(1, "frame %q", f.Name)
			tw.Grid(f.Table().Arena(), f.Table().Root(), 2)
		}
	}
	return tw.String()
}

func loadOrCreate(env *state.LocalEnv, src string, create bool) (*deck.Document, error) {
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) && create {
		env.Log.Info("Creating new deck", zap.String("file", src))
		return env.NewDocument(filepath.Base(src))
	}
	doc, err := deck.ReadFile(src, env.Log.Named("deck"))
	if err != nil {
		return nil, fmt.Errorf("unable to load deck '%s': %w", src, err)
	}
	if err := env.Rpt.StoreCopy("source.xml", src); err != nil {
		env.Log.Warn("Unable to store source in report", zap.Error(err))
	}
	return doc, nil
}
