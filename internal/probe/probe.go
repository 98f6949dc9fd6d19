// Package probe decides, once per process, whether the hosted backend is used.
package probe

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rogerio-castellano/boutique/internal/cache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

type Mode string

const (
	Local  Mode = "local"
	Remote Mode = "remote"
)

const (
	DefaultTimeout = 2 * time.Second
	DefaultTTL     = 5 * time.Minute

	cacheKey = "probe:backend"
)

// CheckFunc reads from a real collection of the backend.
type CheckFunc func(ctx context.Context) error

type Config struct {
	// Enabled is false when no backend is configured or mock mode is forced.
	Enabled bool
	Check   CheckFunc
	Cache   cache.Cache
	TTL     time.Duration
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Result is what the session cache keeps between processes.
type Result struct {
	Available bool      `json:"available"`
	CheckedAt time.Time `json:"checked_at"`
}

type Prober struct {
	cfg   Config
	group singleflight.Group
	now   func() time.Time

	mu          sync.Mutex
	resolved    bool
	mode        Mode
	subscribers []func(Mode)

	attempts atomic.Int64
}

func New(cfg Config) *Prober {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Check == nil {
		cfg.Enabled = false
	}
	return &Prober{cfg: cfg, now: time.Now}
}

// Resolve returns the data source mode, probing the backend on first use.
// Concurrent first callers share a single probe. Failures select Local and are
// never returned.
func (p *Prober) Resolve(ctx context.Context) Mode {
	if !p.cfg.Enabled {
		return Local
	}
	if m, ok := p.Current(); ok {
		return m
	}

	// The shared probe must not die with the first caller's request.
	v, _, _ := p.group.Do(cacheKey, func() (any, error) {
		return p.resolve(context.WithoutCancel(ctx)), nil
	})
	return v.(Mode)
}

// Current reports the pinned mode, if any.
func (p *Prober) Current() (Mode, bool) {
	if !p.cfg.Enabled {
		return Local, true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode, p.resolved
}

// Attempts is the number of probes actually sent to the backend.
func (p *Prober) Attempts() int {
	return int(p.attempts.Load())
}

// Subscribe registers fn to be called once the mode is pinned.
func (p *Prober) Subscribe(fn func(Mode)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

func (p *Prober) resolve(ctx context.Context) Mode {
	if m, ok := p.Current(); ok {
		return m
	}

	res, ok := p.cached(ctx)
	if !ok {
		res = p.probe(ctx)
		p.store(ctx, res)
	}

	mode := Local
	if res.Available {
		mode = Remote
	}

	p.mu.Lock()
	p.mode, p.resolved = mode, true
	subscribers := append([]func(Mode){}, p.subscribers...)
	p.mu.Unlock()

	p.cfg.Logger.Info().Str("mode", string(mode)).Bool("from_cache", ok).Msg("data source resolved")
	for _, fn := range subscribers {
		fn(mode)
	}
	return mode
}

func (p *Prober) probe(ctx context.Context) Result {
	p.attempts.Add(1)
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	start := p.now()
	err := p.cfg.Check(ctx)
	if err != nil {
		p.cfg.Logger.Warn().Err(err).Dur("elapsed", p.now().Sub(start)).Msg("backend unreachable, using mock data")
	}
	return Result{Available: err == nil, CheckedAt: p.now()}
}

func (p *Prober) cached(ctx context.Context) (Result, bool) {
	if p.cfg.Cache == nil {
		return Result{}, false
	}
	b, err := p.cfg.Cache.Get(ctx, cacheKey)
	if err != nil {
		return Result{}, false
	}

	var res Result
	if err := json.Unmarshal(b, &res); err != nil {
		return Result{}, false
	}
	if p.now().Sub(res.CheckedAt) >= p.cfg.TTL {
		return Result{}, false
	}
	return res, true
}

func (p *Prober) store(ctx context.Context, res Result) {
	if p.cfg.Cache == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := p.cfg.Cache.Set(ctx, cacheKey, b, p.cfg.TTL); err != nil {
		p.cfg.Logger.Debug().Err(err).Msg("failed to cache probe result")
	}
}
