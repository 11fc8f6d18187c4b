// Package report stores finished report sections on disk.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/fraglen/internal/adapters/fs"
	"github.com/bft-labs/fraglen/internal/ports"
	"github.com/bft-labs/fraglen/pkg/log"
	"github.com/bft-labs/fraglen/pkg/report"
)

// sectionDocument is the JSON written for each section.
type sectionDocument struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Section     report.Section `json:"section"`
}

// Registry implements ports.SectionRegistry. Every section is written to
// <dir>/<anchor>.json and, when rendering is enabled, drawn to
// <dir>/<anchor>.png.
type Registry struct {
	dir      string
	render   bool
	width    int
	height   int
	runID    uuid.UUID
	now      func() time.Time
	logger   ports.Logger
	sections []report.Section
}

// NewRegistry creates a registry writing into dir. Each registry gets a
// fresh run ID that is stamped on every section it writes.
func NewRegistry(dir string, render bool, logger ports.Logger) *Registry {
	return &Registry{
		dir:    dir,
		render: render,
		width:  DefaultWidth,
		height: DefaultHeight,
		runID:  uuid.New(),
		now:    time.Now,
		logger: logger,
	}
}

// RunID identifies the report the sections belong to.
func (r *Registry) RunID() uuid.UUID {
	return r.runID
}

// Sections returns the sections registered so far, in order.
func (r *Registry) Sections() []report.Section {
	return append([]report.Section(nil), r.sections...)
}

// JSONPath returns the file a section with anchor is written to.
func (r *Registry) JSONPath(anchor string) string {
	return filepath.Join(r.dir, anchor+".json")
}

// PNGPath returns the file a section with anchor is drawn to.
func (r *Registry) PNGPath(anchor string) string {
	return filepath.Join(r.dir, anchor+".png")
}

// AddSection persists s and records it.
func (r *Registry) AddSection(ctx context.Context, s report.Section) error {
	if s.Anchor == "" {
		return fmt.Errorf("section %q has no anchor", s.Name)
	}

	doc := sectionDocument{
		RunID:       r.runID.String(),
		GeneratedAt: r.now().UTC(),
		Section:     s,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode section %s: %w", s.Anchor, err)
	}
	if err := fs.WriteFileAtomic(r.JSONPath(s.Anchor), data); err != nil {
		return fmt.Errorf("write section %s: %w", s.Anchor, err)
	}

	if r.render {
		if err := r.renderPNG(s); err != nil {
			return err
		}
	}

	r.sections = append(r.sections, s)
	r.logger.Info("section registered",
		log.String("anchor", s.Anchor),
		log.String("run_id", r.runID.String()))
	return nil
}

func (r *Registry) renderPNG(s report.Section) error {
	var buf bytes.Buffer
	err := RenderLineGraph(&buf, s.Plot, r.width, r.height)
	if errors.Is(err, ErrNothingToPlot) {
		r.logger.Debug("no points to draw, skipping plot", log.String("anchor", s.Anchor))
		return nil
	}
	if err != nil {
		return fmt.Errorf("render section %s: %w", s.Anchor, err)
	}
	if err := fs.WriteFileAtomic(r.PNGPath(s.Anchor), buf.Bytes()); err != nil {
		return fmt.Errorf("write plot %s: %w", s.Anchor, err)
	}
	return nil
}
