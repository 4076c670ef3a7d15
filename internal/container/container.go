// Package container implements a process-wide dependency registry.
//
// Interface types are bound to factories with one of two lifetimes:
// lazy singleton (factory runs at most once, result cached) or
// transient (factory runs on every resolution). Registration happens
// during application startup; resolving an unbound type or a circular
// singleton chain fails fast with a wiring error rather than at some
// later use.
package container

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Wiring errors. These indicate a configuration mistake and are fatal
// at startup, unlike domain failures which are expected at runtime.
var (
	// ErrNotRegistered indicates a resolution request for a type that
	// was never bound. No factory is invoked.
	ErrNotRegistered = errors.New("type not registered")

	// ErrCircularDependency indicates two or more lazy singletons
	// resolve each other. Detected on the resolution chain before any
	// unbounded recursion, and across concurrently constructing chains
	// before their build locks can deadlock.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrAlreadyResolved indicates an attempt to re-bind a singleton
	// whose instance has already been constructed.
	ErrAlreadyResolved = errors.New("singleton already resolved")
)

// Container maps interface types to resolution strategies. The zero
// value is not usable; construct with New.
//
// Registration is expected to finish before the application's
// initialization phase completes. Resolution is safe for concurrent
// use, including concurrent first-time resolution of the same lazy
// singleton: exactly one factory invocation occurs.
type Container struct {
	mu       sync.RWMutex
	bindings map[reflect.Type]*binding

	// Wait-for bookkeeping for singleton construction. builder records
	// which resolution chain holds a binding's build lock; waits records
	// the type each chain is currently blocked on. Together they expose
	// cycles that span concurrently constructing chains, which the
	// per-chain path check cannot see.
	graphMu  sync.Mutex
	builder  map[reflect.Type]uint64
	waits    map[uint64]reflect.Type
	chainSeq atomic.Uint64
}

type binding struct {
	factory   func(*Resolver) (any, error)
	singleton bool

	// Single-flight state for singletons. buildMu serializes
	// construction; built/instance are the cached result.
	buildMu  sync.Mutex
	built    bool
	instance any
}

// New creates an empty container.
func New() *Container {
	return &Container{
		bindings: make(map[reflect.Type]*binding),
		builder:  make(map[reflect.Type]uint64),
		waits:    make(map[uint64]reflect.Type),
	}
}

// Resolver carries the resolution chain through nested factory calls so
// circular singleton dependencies are detected instead of recursing.
// Factories receive a Resolver and use From to pull their own
// dependencies.
type Resolver struct {
	c     *Container
	chain uint64
	path  []reflect.Type
}

// typeOf returns the reflect.Type of the interface or concrete type T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Provide binds T to factory with lazy-singleton lifetime: the factory
// runs at most once, on first resolution, and the instance is cached
// for the process's remaining lifetime.
//
// Re-binding T is allowed until its singleton has been constructed
// (useful for swapping in test doubles); afterwards it fails with
// ErrAlreadyResolved.
func Provide[T any](c *Container, factory func(r *Resolver) (T, error)) error {
	return c.bind(typeOf[T](), true, wrap(factory))
}

// ProvideTransient binds T to factory with transient lifetime: the
// factory runs on every resolution and nothing is cached.
func ProvideTransient[T any](c *Container, factory func(r *Resolver) (T, error)) error {
	return c.bind(typeOf[T](), false, wrap(factory))
}

// ProvideValue binds T to an already-constructed instance.
func ProvideValue[T any](c *Container, value T) error {
	return Provide(c, func(*Resolver) (T, error) { return value, nil })
}

func wrap[T any](factory func(r *Resolver) (T, error)) func(*Resolver) (any, error) {
	return func(r *Resolver) (any, error) {
		return factory(r)
	}
}

func (c *Container) bind(t reflect.Type, singleton bool, factory func(*Resolver) (any, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.bindings[t]; ok && existing.singleton {
		existing.buildMu.Lock()
		built := existing.built
		existing.buildMu.Unlock()
		if built {
			return fmt.Errorf("%w: %s", ErrAlreadyResolved, t)
		}
	}

	c.bindings[t] = &binding{factory: factory, singleton: singleton}
	return nil
}

// Resolve returns the instance bound to T, constructing it if needed.
func Resolve[T any](c *Container) (T, error) {
	return From[T](&Resolver{c: c, chain: c.chainSeq.Add(1)})
}

// MustResolve is Resolve that panics on error. Intended for wiring code
// where a missing binding is a programming error.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// From resolves T within an ongoing resolution chain. Factories must use
// this (rather than Resolve on the bare container) so circular
// dependencies are detected.
func From[T any](r *Resolver) (T, error) {
	var zero T
	t := typeOf[T]()

	v, err := r.resolve(t)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("resolving %s: factory returned %T", t, v)
	}
	return typed, nil
}

func (r *Resolver) resolve(t reflect.Type) (any, error) {
	for _, seen := range r.path {
		if seen == t {
			return nil, fmt.Errorf("%w: %s", ErrCircularDependency, t)
		}
	}

	r.c.mu.RLock()
	b, ok := r.c.bindings[t]
	r.c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}

	next := &Resolver{c: r.c, chain: r.chain, path: append(r.path[:len(r.path):len(r.path)], t)}

	if !b.singleton {
		return b.factory(next)
	}

	// Declare intent before blocking on the build lock. If the chain
	// holding it is itself waiting on something this chain is building,
	// blocking here would deadlock both goroutines.
	c := r.c
	c.graphMu.Lock()
	if c.wouldDeadlock(r.chain, t) {
		c.graphMu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrCircularDependency, t)
	}
	c.waits[r.chain] = t
	c.graphMu.Unlock()

	b.buildMu.Lock()

	c.graphMu.Lock()
	delete(c.waits, r.chain)
	c.builder[t] = r.chain
	c.graphMu.Unlock()

	defer func() {
		c.graphMu.Lock()
		delete(c.builder, t)
		c.graphMu.Unlock()
		b.buildMu.Unlock()
	}()

	if b.built {
		return b.instance, nil
	}

	v, err := b.factory(next)
	if err != nil {
		return nil, err
	}

	b.built = true
	b.instance = v
	return v, nil
}

// wouldDeadlock follows the wait-for edges from t: if the chain holding
// t's build lock is blocked, however many hops away, on a type this
// chain is building, taking the lock would complete a cycle. Caller
// holds graphMu.
func (c *Container) wouldDeadlock(chain uint64, t reflect.Type) bool {
	for {
		holder, ok := c.builder[t]
		if !ok {
			return false
		}
		if holder == chain {
			return true
		}
		t, ok = c.waits[holder]
		if !ok {
			return false
		}
	}
}
