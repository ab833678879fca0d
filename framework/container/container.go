package container

import (
	"fmt"
	"sync"
)

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// binding holds a registered factory and whether it is a singleton.
type binding struct {
	factory   Factory
	singleton bool
}

// Container is a small IoC container — mirrors the registration and
// resolution surface of Laravel's Illuminate\Container\Container. Because Go
// has no runtime constructor reflection, auto-wiring is replaced by explicit
// factory functions.
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string
}

// New creates an empty container with itself bound as "container".
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// Bind registers a transient factory — a new instance on every Make.
//
//	c.Bind("validator", func(c *container.Container) any {
//	    return livewire.NewValidator(form)
//	})
func (c *Container) Bind(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory}
}

// Singleton registers a factory whose result is cached after first
// resolution.
func (c *Container) Singleton(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: true}
}

// Instance registers a pre-built value as a singleton.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

// Alias registers an alternative name for an abstract.
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// Bound reports whether an abstract has a binding or instance.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	if _, ok := c.instances[key]; ok {
		return true
	}
	_, ok := c.bindings[key]
	return ok
}

// Make resolves an abstract from the container. Unknown abstracts panic —
// resolving an unregistered service is a bootstrap bug, not a runtime
// condition.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: nothing bound for [%s]", abstract))
	}

	instance := b.factory(c)

	if b.singleton {
		c.mu.Lock()
		c.instances[key] = instance
		c.mu.Unlock()
	}
	return instance
}

// canonical follows alias chains to the underlying abstract key.
// Callers must hold at least a read lock.
func (c *Container) canonical(abstract string) string {
	seen := map[string]bool{}
	for {
		target, ok := c.aliases[abstract]
		if !ok || seen[abstract] {
			return abstract
		}
		seen[abstract] = true
		abstract = target
	}
}

// Resolve resolves an abstract and asserts its type.
//
//	cfg := container.Resolve[*config.Config](c, "config")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: [%s] is %T, not the requested type", abstract, instance))
	}
	return typed
}
