package scene

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"electric-field/internal/render"
)

// Runner renders layouts to files, one scene at a time.
type Runner struct {
	// OutDir receives the artifacts; empty means the working directory.
	OutDir string
	// Format replaces the extension of every output file when set.
	Format string
	Logger *zap.Logger
}

func NewRunner(outDir string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{OutDir: outDir, Logger: logger}
}

// Figure computes the layout's field and draws it on a fresh figure,
// charges on top.
func (r *Runner) Figure(l Layout) (*render.Figure, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	f := l.Field()
	r.Logger.Debug("field computed",
		zap.String("scene", l.Name),
		zap.Int("charges", len(l.Charges)),
		zap.Int("samples", l.Grid.Len()),
		zap.Duration("took", time.Since(start)))

	fig, err := render.NewFigure(l.Style)
	if err != nil {
		return nil, err
	}
	if err := fig.AddField(f); err != nil {
		return nil, fmt.Errorf("scene %s: %w", l.Name, err)
	}
	fig.AddCharges(l.Charges)
	return fig, nil
}

// Path is where Run writes l.
func (r *Runner) Path(l Layout) string {
	name := l.File
	if r.Format != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + r.Format
	}
	return filepath.Join(r.OutDir, name)
}

// Run renders l and writes it, replacing any previous artifact.
func (r *Runner) Run(l Layout) (string, error) {
	start := time.Now()
	fig, err := r.Figure(l)
	if err != nil {
		return "", err
	}

	path := r.Path(l)
	if err := fig.Save(path); err != nil {
		return "", fmt.Errorf("scene %s: %w", l.Name, err)
	}
	r.Logger.Info("scene written",
		zap.String("scene", l.Name),
		zap.String("path", path),
		zap.Duration("took", time.Since(start)))
	return path, nil
}

// Demo runs the demo scenes in order with default parameters and stops at
// the first failure.
func (r *Runner) Demo() ([]string, error) {
	paths := make([]string, 0, len(DemoNames))
	for _, name := range DemoNames {
		e, ok := Lookup(name)
		if !ok {
			return paths, fmt.Errorf("unknown scene %q", name)
		}
		l, err := e.Build(e.Defaults())
		if err != nil {
			return paths, err
		}
		path, err := r.Run(l)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
