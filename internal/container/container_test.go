package container

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet() string
}

type staticGreeter struct {
	msg string
}

func (g *staticGreeter) Greet() string { return g.msg }

type echo interface {
	Echo() string
}

type greeterEcho struct {
	g greeter
}

func (e *greeterEcho) Echo() string { return e.g.Greet() }

func TestResolve_Singleton(t *testing.T) {
	c := New()

	calls := 0
	err := Provide(c, func(*Resolver) (greeter, error) {
		calls++
		return &staticGreeter{msg: "hello"}, nil
	})
	require.NoError(t, err)

	first, err := Resolve[greeter](c)
	require.NoError(t, err)
	second, err := Resolve[greeter](c)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "hello", first.Greet())
}

func TestResolve_Transient(t *testing.T) {
	c := New()

	calls := 0
	err := ProvideTransient(c, func(*Resolver) (greeter, error) {
		calls++
		return &staticGreeter{msg: "hi"}, nil
	})
	require.NoError(t, err)

	first, err := Resolve[greeter](c)
	require.NoError(t, err)
	second, err := Resolve[greeter](c)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestResolve_NotRegistered(t *testing.T) {
	c := New()

	_, err := Resolve[greeter](c)

	require.ErrorIs(t, err, ErrNotRegistered)
	assert.Contains(t, err.Error(), "greeter")
}

func TestResolve_NotRegistered_NoFactoryInvoked(t *testing.T) {
	c := New()

	invoked := false
	err := Provide(c, func(*Resolver) (echo, error) {
		invoked = true
		return nil, nil
	})
	require.NoError(t, err)

	_, err = Resolve[greeter](c)

	require.ErrorIs(t, err, ErrNotRegistered)
	assert.False(t, invoked)
}

func TestResolve_DependencyChain(t *testing.T) {
	c := New()

	require.NoError(t, Provide(c, func(*Resolver) (greeter, error) {
		return &staticGreeter{msg: "chained"}, nil
	}))
	require.NoError(t, Provide(c, func(r *Resolver) (echo, error) {
		g, err := From[greeter](r)
		if err != nil {
			return nil, err
		}
		return &greeterEcho{g: g}, nil
	}))

	e, err := Resolve[echo](c)

	require.NoError(t, err)
	assert.Equal(t, "chained", e.Echo())
}

func TestResolve_CircularDependency(t *testing.T) {
	c := New()

	require.NoError(t, Provide(c, func(r *Resolver) (greeter, error) {
		if _, err := From[echo](r); err != nil {
			return nil, err
		}
		return &staticGreeter{}, nil
	}))
	require.NoError(t, Provide(c, func(r *Resolver) (echo, error) {
		g, err := From[greeter](r)
		if err != nil {
			return nil, err
		}
		return &greeterEcho{g: g}, nil
	}))

	_, err := Resolve[greeter](c)

	require.ErrorIs(t, err, ErrCircularDependency)
}

func TestResolve_SelfCycle(t *testing.T) {
	c := New()

	require.NoError(t, Provide(c, func(r *Resolver) (greeter, error) {
		return From[greeter](r)
	}))

	_, err := Resolve[greeter](c)

	require.ErrorIs(t, err, ErrCircularDependency)
}

func TestResolve_ConcurrentCircularDoesNotDeadlock(t *testing.T) {
	c := New()

	// The gate holds both factories mid-construction so each goroutine
	// owns its binding's build lock before requesting the other type.
	gate := make(chan struct{})
	require.NoError(t, Provide(c, func(r *Resolver) (greeter, error) {
		<-gate
		if _, err := From[echo](r); err != nil {
			return nil, err
		}
		return &staticGreeter{}, nil
	}))
	require.NoError(t, Provide(c, func(r *Resolver) (echo, error) {
		<-gate
		g, err := From[greeter](r)
		if err != nil {
			return nil, err
		}
		return &greeterEcho{g: g}, nil
	}))

	errs := make(chan error, 2)
	go func() {
		_, err := Resolve[greeter](c)
		errs <- err
	}()
	go func() {
		_, err := Resolve[echo](c)
		errs <- err
	}()
	close(gate)

	for i := 0; i < 2; i++ {
		select {
		case err := <-errs:
			require.ErrorIs(t, err, ErrCircularDependency)
		case <-time.After(5 * time.Second):
			t.Fatal("resolution deadlocked")
		}
	}
}

func TestResolve_ConcurrentSingleFlight(t *testing.T) {
	c := New()

	var calls atomic.Int32
	require.NoError(t, Provide(c, func(*Resolver) (greeter, error) {
		calls.Add(1)
		return &staticGreeter{msg: "once"}, nil
	}))

	const n = 32
	results := make([]greeter, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := Resolve[greeter](c)
			assert.NoError(t, err)
			results[i] = g
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 1; i < n; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestProvide_RebindBeforeResolve(t *testing.T) {
	c := New()

	require.NoError(t, Provide(c, func(*Resolver) (greeter, error) {
		return &staticGreeter{msg: "first"}, nil
	}))
	require.NoError(t, Provide(c, func(*Resolver) (greeter, error) {
		return &staticGreeter{msg: "second"}, nil
	}))

	g, err := Resolve[greeter](c)

	require.NoError(t, err)
	assert.Equal(t, "second", g.Greet())
}

func TestProvide_RebindAfterResolveFails(t *testing.T) {
	c := New()

	require.NoError(t, Provide(c, func(*Resolver) (greeter, error) {
		return &staticGreeter{msg: "resolved"}, nil
	}))
	_, err := Resolve[greeter](c)
	require.NoError(t, err)

	err = Provide(c, func(*Resolver) (greeter, error) {
		return &staticGreeter{msg: "late"}, nil
	})

	require.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestProvideValue(t *testing.T) {
	c := New()

	g := &staticGreeter{msg: "value"}
	require.NoError(t, ProvideValue[greeter](c, g))

	got, err := Resolve[greeter](c)

	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestMustResolve_PanicsWhenMissing(t *testing.T) {
	c := New()

	assert.Panics(t, func() {
		MustResolve[greeter](c)
	})
}

func TestResolve_FactoryError(t *testing.T) {
	c := New()

	require.NoError(t, Provide(c, func(*Resolver) (greeter, error) {
		return nil, assert.AnError
	}))

	_, err := Resolve[greeter](c)
	require.ErrorIs(t, err, assert.AnError)

	// A failed construction is not cached; the factory runs again.
	_, err = Resolve[greeter](c)
	require.ErrorIs(t, err, assert.AnError)
}
