package battery

import (
	"runtime"

	"github.com/zonotope/battery/internal/errors"
)

// Manager fetches the batteries available on the system.
//
// A Manager shares its backend with every enumeration it spawns, so the
// backend stays alive for as long as any Batteries sequence (or battery
// produced by one) is still reachable, even after the Manager itself has
// been dropped.
type Manager struct {
	backend    SystemManager
	thresholds Thresholds
}

// Option adjusts Manager construction.
type Option func(*Manager)

// WithThresholds overrides the noise ceilings applied to derived time
// estimates on batteries produced by this manager.
func WithThresholds(th Thresholds) Option {
	return func(m *Manager) {
		m.thresholds = th
	}
}

// NewManager constructs the backend for the current platform. A single
// attempt, no caching: backend errors surface verbatim.
func NewManager(opts ...Option) (*Manager, error) {
	backend, err := newSystemManager(runtime.GOOS)
	if err != nil {
		return nil, err
	}

	return NewManagerWith(backend, opts...), nil
}

// NewManagerWith wraps an already-constructed backend. It is the hook for
// plugging a custom SystemManager implementation behind the same façade.
func NewManagerWith(backend SystemManager, opts ...Option) *Manager {
	m := &Manager{
		backend:    backend,
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// newSystemManager selects the backend implementation for the given OS.
func newSystemManager(goos string) (SystemManager, error) {
	switch goos {
	case "linux":
		return newSysfsManager(sysfsRoot)
	default:
		return nil, errors.New().WithData(errors.ErrUnsupportedPlatform, goos)
	}
}

// Batteries starts a fresh enumeration of the system's batteries. Each
// call re-enumerates from the OS and yields an independent, separately
// exhaustible sequence.
func (m *Manager) Batteries() (*Batteries, error) {
	inner, err := m.backend.Devices()
	if err != nil {
		return nil, err
	}

	return &Batteries{inner: inner, thresholds: m.thresholds}, nil
}

// Batteries is a finite, non-restartable sequence of batteries.
type Batteries struct {
	inner      DeviceIterator
	thresholds Thresholds
}

// Next returns the next battery. It returns Done when the sequence is
// exhausted. A non-Done error concerns that step's device only; the
// remaining sequence stays usable.
func (b *Batteries) Next() (*Battery, error) {
	device, err := b.inner.Next()
	if err != nil {
		return nil, err
	}

	return &Battery{device: device, thresholds: b.thresholds}, nil
}
