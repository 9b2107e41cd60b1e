package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrViewNotFound = errors.New("view not found")

// ViewRegistry holds the catalog views opened over HTTP, keyed by view id.
type ViewRegistry struct {
	mu     sync.RWMutex
	views  map[string]*ViewController
	logger *zap.Logger
	now    func() time.Time
}

func NewViewRegistry(logger *zap.Logger) *ViewRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewRegistry{
		views:  make(map[string]*ViewController),
		logger: logger.Named("views"),
		now:    time.Now,
	}
}

// NewID returns a fresh view id.
func (r *ViewRegistry) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Add registers a view under its id.
func (r *ViewRegistry) Add(v *ViewController) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[v.ID()] = v
}

func (r *ViewRegistry) Get(id string) (*ViewController, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	return v, nil
}

// Remove closes and forgets a view.
func (r *ViewRegistry) Remove(id string) error {
	r.mu.Lock()
	v, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()
	if !ok {
		return ErrViewNotFound
	}
	v.Close()
	return nil
}

func (r *ViewRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// Sweep closes and removes views idle for longer than maxIdle. It returns how many were removed.
func (r *ViewRegistry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var idle []*ViewController
	for id, v := range r.views {
		if v.LastActivity().Before(cutoff) {
			idle = append(idle, v)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range idle {
		v.Close()
	}
	if len(idle) > 0 {
		r.logger.Info("swept idle views", zap.Int("removed", len(idle)))
	}
	return len(idle)
}

// RunSweeper sweeps every interval until ctx is done.
func (r *ViewRegistry) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(maxIdle)
		}
	}
}

// CloseAll closes every registered view; used on shutdown.
func (r *ViewRegistry) CloseAll() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*ViewController)
	r.mu.Unlock()
	for _, v := range views {
		v.Close()
	}
}
