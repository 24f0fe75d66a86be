package dash

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/midbel/plot/internal/logging"
	"github.com/midbel/plot/render"
	"golang.org/x/sync/errgroup"
)

// DefaultDonut is the inner radius ratio of a donut chart without an
// explicit one.
const DefaultDonut = 0.5

var discard = logging.Discard()

// Builder renders every chart of a dashboard in its own SVG file.
type Builder struct {
	Logger *bolt.Logger
	// Dir overrides the output directory of the dashboard.
	Dir string
	// Limit is the number of charts rendered at the same time. Zero uses
	// the number of CPUs.
	Limit int
}

// Build renders the charts of cfg concurrently. The first failure cancels
// the charts not rendered yet and is returned.
func (b Builder) Build(ctx context.Context, cfg Config) error {
	dir := cfg.Dir
	if b.Dir != "" {
		dir = b.Dir
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	limit := b.Limit
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(limit)

	now := time.Now()
	for i, ch := range cfg.Charts {
		file := filepath.Join(dir, ch.output(i))
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := b.build(ctx, cfg, ch, file); err != nil {
				b.logger().Error().Int("chart", i).Str("title", ch.Title).Err(err).Msg("render failed")
				return fmt.Errorf("chart %d (%s): %w", i, ch.Title, err)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	b.logger().Info().
		Str("dashboard", cfg.Title).
		Int("charts", len(cfg.Charts)).
		Dur("elapsed", time.Since(now)).
		Msg("dashboard built")
	return nil
}

func (b Builder) build(ctx context.Context, cfg Config, c ChartConfig, file string) error {
	ds, err := c.dataset(ctx, cfg)
	if err != nil {
		return err
	}
	ch, err := c.chart(cfg)
	if err != nil {
		return err
	}
	cv := render.FromChart(ch)
	cv.Title = c.Title
	c.Style.merge(cfg.Style).apply(&ch, &cv)
	if c.isDonut() && ch.InnerRatio == 0 {
		ch.InnerRatio = DefaultDonut
	}

	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := render.Draw(w, c.kind(), ch, cv, ds); err != nil {
		w.Close()
		os.Remove(file)
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	b.logger().Debug().
		Str("title", c.Title).
		Str("type", c.kind().String()).
		Int("categories", len(ds.Labels)).
		Int("series", len(ds.Series)).
		Str("file", file).
		Msg("chart rendered")
	return nil
}

func (b Builder) logger() *bolt.Logger {
	if b.Logger == nil {
		return discard
	}
	return b.Logger
}
