package app

import (
	"net/http"

	"github.com/km-arc/go-livewire/framework/config"
	"github.com/km-arc/go-livewire/framework/container"
	"github.com/km-arc/go-livewire/framework/logging"
	"github.com/km-arc/go-livewire/framework/providers"
	"github.com/km-arc/go-livewire/framework/routing"
)

// Application is the top-level application container. It embeds the IoC
// Container and the provider registry so user code can call app.Bind(),
// app.Singleton(), app.Register() directly — like $app in Laravel's
// bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates and bootstraps the application.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	// Framework core providers, in boot order
	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggingServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Logger resolves *logging.Logger from the container.
func (a *Application) Logger() *logging.Logger {
	return container.Resolve[*logging.Logger](a.Container, "logger")
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		a.Boot()
	}

	cfg := a.Config()
	logger := a.Logger()
	addr := ":" + cfg.App.Port

	logger.Info().
		Str("addr", addr).
		Str("env", cfg.App.Env).
		Msg("server starting")

	if err := http.ListenAndServe(addr, a.Router()); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
