package tilt

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine evaluates panel tilt strategies against one year of hourly
// solar data. All methods are pure functions of the immutable dataset
// and site constants, so an Engine is safe for concurrent use.
type Engine struct {
	site   Site
	data   *Dataset
	logger *zap.SugaredLogger
}

// NewEngine creates an Engine for the given site and dataset. A nil
// logger disables engine logging.
func NewEngine(site Site, data *Dataset, logger *zap.SugaredLogger) (*Engine, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}
	if data == nil || data.Len() == 0 {
		return nil, fmt.Errorf("nil or empty dataset: %w", ErrInvalidParameter)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{
		site:   site,
		data:   data,
		logger: logger,
	}, nil
}

// Site returns the site constants the engine was built with.
func (e *Engine) Site() Site {
	return e.site
}
