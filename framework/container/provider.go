package container

// ServiceProvider mirrors Laravel's Illuminate\Support\ServiceProvider.
//
// Register binds services into the container; do not resolve other bindings
// there. Boot runs after all providers have been registered, so it is safe
// to resolve anything inside it.
type ServiceProvider interface {
	Register(app *Container)
	Boot(app *Container)
}

// BaseProvider is an embeddable struct providing a no-op Boot. Embed it and
// override only what you need.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) {}

// ProviderRegistry manages registration and booting of ServiceProviders —
// the behaviour of Laravel's Application::registerConfiguredProviders and
// Application::bootProviders, minus deferred loading.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method. Providers added
// after Boot are booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	provider.Register(r.app)
	r.providers = append(r.providers, provider)

	if r.booted {
		provider.Boot(r.app)
	}
}

// Boot calls Boot on every registered provider, once.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.providers {
		provider.Boot(r.app)
	}
}

// Booted reports whether Boot has run.
func (r *ProviderRegistry) Booted() bool { return r.booted }
