package livewire

import (
	"github.com/google/uuid"

	"github.com/km-arc/go-livewire/framework/validation"
)

// Component exposes a stateful component's identity and public fields to the
// validator. Snapshot returns the current values of every publicly
// addressable field, keyed by field name; the validator never mutates the
// component through it.
//
// The identity methods are prefixed so they never collide with a component's
// own Name or ID fields.
type Component interface {
	ComponentName() string
	Snapshot() map[string]any
}

// HasRules is implemented by components that declare validation rules.
// Components without it (and without a per-call WithRules override) have an
// empty rule map, which makes every validation call fail with
// MissingRulesError.
type HasRules interface {
	Rules() validation.Rules
}

// HasMessages is implemented by components that declare custom failure
// messages. Defaults to empty.
type HasMessages interface {
	Messages() validation.Messages
}

// HasAttributes is implemented by components that declare display names for
// fields. Defaults to empty.
type HasAttributes interface {
	Attributes() validation.Attributes
}

// Model marks a structured record with a stable identity, e.g. a database
// entity bound to a component property. Model values pass through snapshot
// normalization untouched (the engine traverses them via ToArray), and rules
// scoped under a model field get their displayed name shortened to the path
// remainder unless an explicit attribute override exists.
type Model interface {
	validation.Arrayable
	ModelKey() any
}

// BaseComponent carries the identity every component needs. Embed it and
// implement Snapshot (plus the Has* capabilities you want):
//
//	type ContactForm struct {
//	    livewire.BaseComponent
//	    Name  string
//	    Email string
//	}
type BaseComponent struct {
	id   string
	name string
}

// NewBaseComponent assigns a fresh instance ID to a named component.
func NewBaseComponent(name string) BaseComponent {
	return BaseComponent{id: uuid.NewString(), name: name}
}

// ComponentID returns the unique instance identifier.
func (c BaseComponent) ComponentID() string { return c.id }

// ComponentName returns the component name used in error messages.
func (c BaseComponent) ComponentName() string { return c.name }
