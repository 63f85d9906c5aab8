// Package chaos provides synthetic fault injection for exercising rollback
// and alarm paths during progressive deployments.
package chaos

import (
	"math/rand/v2"

	"order-service/internal/pkg/errs"
)

// ErrInjected marks a deliberately injected failure.
var ErrInjected = errs.New("injected random error")

// DefaultThreshold yields a nominal 25% failure rate when enabled.
const DefaultThreshold = 0.75

// Injector randomly aborts an operation. It must be invoked before any
// persistent mutation so a rejected request never leaves partial writes.
type Injector struct {
	enabled   bool
	threshold float64
	draw      func() float64
}

type Option func(*Injector)

// WithDraw replaces the uniform [0,1) source, for tests.
func WithDraw(draw func() float64) Option {
	return func(i *Injector) {
		i.draw = draw
	}
}

func NewInjector(enabled bool, threshold float64, opts ...Option) *Injector {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	i := &Injector{
		enabled:   enabled,
		threshold: threshold,
		draw:      rand.Float64,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// MaybeFail returns ErrInjected when the injector is enabled and the uniform
// draw exceeds the threshold. A disabled injector never fails.
func (i *Injector) MaybeFail() error {
	if !i.enabled {
		return nil
	}
	if i.draw() > i.threshold {
		return ErrInjected
	}
	return nil
}
