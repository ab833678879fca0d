package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-livewire/framework/container"
)

type service struct {
	n int
}

func TestBind_TransientResolvesFreshInstances(t *testing.T) {
	c := container.New()

	calls := 0
	c.Bind("svc", func(c *container.Container) any {
		calls++
		return &service{n: calls}
	})

	first := container.Resolve[*service](c, "svc")
	second := container.Resolve[*service](c, "svc")

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestSingleton_ResolvesOnce(t *testing.T) {
	c := container.New()

	calls := 0
	c.Singleton("svc", func(c *container.Container) any {
		calls++
		return &service{}
	})

	first := container.Resolve[*service](c, "svc")
	second := container.Resolve[*service](c, "svc")

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestInstance(t *testing.T) {
	c := container.New()
	pre := &service{n: 42}
	c.Instance("svc", pre)

	assert.Same(t, pre, container.Resolve[*service](c, "svc"))
}

func TestAlias(t *testing.T) {
	c := container.New()
	c.Instance("svc", &service{n: 1})
	c.Alias("svc", "service")

	assert.Same(t,
		container.Resolve[*service](c, "svc"),
		container.Resolve[*service](c, "service"))

	assert.Panics(t, func() { c.Alias("x", "x") })
}

func TestBound(t *testing.T) {
	c := container.New()
	assert.False(t, c.Bound("svc"))

	c.Bind("svc", func(c *container.Container) any { return &service{} })
	assert.True(t, c.Bound("svc"))
	assert.True(t, c.Bound("container"), "container binds itself")
}

func TestMake_UnknownAbstractPanics(t *testing.T) {
	c := container.New()
	assert.Panics(t, func() { c.Make("nope") })
}

func TestResolve_WrongTypePanics(t *testing.T) {
	c := container.New()
	c.Instance("svc", "a string")
	assert.Panics(t, func() { container.Resolve[*service](c, "svc") })
}

// ── providers ────────────────────────────────────────────────────────────────

type recordingProvider struct {
	container.BaseProvider
	registered bool
	booted     bool
}

func (p *recordingProvider) Register(app *container.Container) {
	p.registered = true
	app.Singleton("recorded", func(c *container.Container) any { return &service{} })
}

type bootingProvider struct {
	registered bool
	booted     bool
}

func (p *bootingProvider) Register(app *container.Container) { p.registered = true }
func (p *bootingProvider) Boot(app *container.Container)     { p.booted = true }

func TestProviderRegistry(t *testing.T) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	p := &bootingProvider{}
	registry.Register(p)

	require.True(t, p.registered)
	assert.False(t, p.booted, "boot runs only on Boot()")

	registry.Boot()
	assert.True(t, p.booted)
	assert.True(t, registry.Booted())
}

func TestProviderRegistry_DuplicateRegistrationIgnored(t *testing.T) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	p := &bootingProvider{}
	registry.Register(p)
	registry.Register(p)

	registry.Boot()
	registry.Boot() // idempotent

	assert.True(t, p.booted)
}

func TestProviderRegistry_LateProviderBootsImmediately(t *testing.T) {
	c := container.New()
	registry := container.NewProviderRegistry(c)
	registry.Boot()

	p := &bootingProvider{}
	registry.Register(p)

	assert.True(t, p.registered)
	assert.True(t, p.booted)
}

func TestProviderRegistry_BindingsAvailableAfterRegister(t *testing.T) {
	c := container.New()
	registry := container.NewProviderRegistry(c)
	registry.Register(&recordingProvider{})

	assert.NotNil(t, container.Resolve[*service](c, "recorded"))
}
