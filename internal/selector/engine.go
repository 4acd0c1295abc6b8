package selector

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HerbHall/drivepick/pkg/models"
)

// Source supplies the ordered drive catalog for an Engine.
type Source interface {
	Drives(ctx context.Context) ([]models.Drive, error)
}

// Engine runs selections against a named drive Source.
type Engine struct {
	name    string
	src     Source
	logger  *zap.Logger
	metrics *Metrics
}

// NewEngine creates an Engine for src. metrics may be nil.
func NewEngine(name string, src Source, logger *zap.Logger, metrics *Metrics) *Engine {
	return &Engine{
		name:    name,
		src:     src,
		logger:  logger.Named(name),
		metrics: metrics,
	}
}

// Name returns the source name the engine was registered under.
func (e *Engine) Name() string {
	return e.name
}

// Select loads the current catalog from the source and selects the
// available drives matching any of manufacturers.
func (e *Engine) Select(ctx context.Context, manufacturers []string) (models.Selection, error) {
	drives, err := e.src.Drives(ctx)
	if err != nil {
		e.metrics.Observe(e.name, models.Selection{}, err)
		return models.Selection{}, fmt.Errorf("load %s drives: %w", e.name, err)
	}

	catalog, availability := models.Columns(drives)
	sel := Select(catalog, availability, manufacturers)
	e.metrics.Observe(e.name, sel, nil)

	e.logger.Debug("selection complete",
		zap.Int("catalog", len(catalog)),
		zap.Strings("manufacturers", manufacturers),
		zap.Int("count", sel.Count),
	)
	return sel, nil
}
