package livewire

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/km-arc/go-livewire/framework/support"
	"github.com/km-arc/go-livewire/framework/validation"
)

// Validator validates a component's public state against its declared rules.
// It owns the component's error bag across calls; a full run replaces the
// bag wholesale while a single-field run only supersedes the entries inside
// its scope.
//
// A Validator belongs to one component instance and is not safe for
// concurrent use — hosts that validate the same instance from several
// goroutines must serialize access.
type Validator struct {
	component Component
	errorBag  *support.MessageBag
}

// NewValidator creates a validator bound to a component.
func NewValidator(component Component) *Validator {
	return &Validator{component: component}
}

// Option overrides rules, messages or attributes for one validation call.
type Option func(*callOptions)

type callOptions struct {
	rules      validation.Rules
	messages   validation.Messages
	attributes validation.Attributes
}

// WithRules replaces the component's declared rules for this call.
func WithRules(rules validation.Rules) Option {
	return func(o *callOptions) { o.rules = rules }
}

// WithMessages replaces the component's declared messages for this call.
func WithMessages(messages validation.Messages) Option {
	return func(o *callOptions) { o.messages = messages }
}

// WithAttributes replaces the component's declared display names for this call.
func WithAttributes(attributes validation.Attributes) Option {
	return func(o *callOptions) { o.attributes = attributes }
}

func buildOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ── rule/message resolution ──────────────────────────────────────────────────

func (v *Validator) resolveRules(o callOptions) validation.Rules {
	if o.rules != nil {
		return o.rules
	}
	if hr, ok := v.component.(HasRules); ok {
		return hr.Rules()
	}
	return validation.Rules{}
}

func (v *Validator) resolveMessages(o callOptions) validation.Messages {
	if o.messages != nil {
		return o.messages
	}
	if hm, ok := v.component.(HasMessages); ok {
		return hm.Messages()
	}
	return validation.Messages{}
}

func (v *Validator) resolveAttributes(o callOptions) validation.Attributes {
	if o.attributes != nil {
		return o.attributes
	}
	if ha, ok := v.component.(HasAttributes); ok {
		return ha.Attributes()
	}
	return validation.Attributes{}
}

// ── validation ───────────────────────────────────────────────────────────────

// Validate runs every declared rule against the component's current state.
//
// On success the error bag is cleared and the validated data subset is
// returned. On failure the bag is replaced with the engine's result and a
// *ValidationError carrying it is returned. With no rules resolved at all it
// returns a *MissingRulesError.
func (v *Validator) Validate(opts ...Option) (validation.Data, error) {
	o := buildOptions(opts)

	rules := v.resolveRules(o)
	if len(rules) == 0 {
		return nil, &MissingRulesError{Component: v.component.ComponentName()}
	}

	engine, err := v.makeEngine(rules, o)
	if err != nil {
		return nil, err
	}

	if engine.Fails() {
		v.errorBag = engine.Errors()
		return nil, &ValidationError{Bag: v.errorBag}
	}

	v.ResetErrorBag()
	return engine.Validated(), nil
}

// ValidateOnly runs only the rules governing one field path, leaving errors
// recorded for unrelated fields untouched.
//
// The path is concrete (items.2.name); declared keys may be wildcarded
// (items.*.name) and match segment-wise. On failure the returned bag is the
// union of the fresh result and the previously recorded errors outside the
// validated scope; prior errors inside the scope are fully superseded, so a
// field that now passes has its old error cleared. On success only the
// scoped entries are reset.
func (v *Validator) ValidateOnly(path string, opts ...Option) (validation.Data, error) {
	o := buildOptions(opts)

	rules := v.resolveRules(o)
	if len(rules) == 0 {
		return nil, &MissingRulesError{Component: v.component.ComponentName()}
	}

	scoped := validation.Rules{}
	for key, rule := range rules {
		if ruleKeyMatches(key, path) {
			scoped[key] = rule
		}
	}
	if len(scoped) == 0 {
		return validation.Data{}, nil
	}

	engine, err := v.makeEngine(scoped, o)
	if err != nil {
		return nil, err
	}

	scopedKeys := sortedKeys(scoped)

	if engine.Fails() {
		v.errorBag = v.ErrorBag().Supersede(scopedKeys, engine.Errors())
		return nil, &ValidationError{Bag: v.errorBag}
	}

	v.ResetErrorBag(scopedKeys...)
	return engine.Validated(), nil
}

// makeEngine snapshots the fields the rules touch, normalizes them, and
// prepares the constraint engine with messages and display names applied.
func (v *Validator) makeEngine(rules validation.Rules, o callOptions) (*validation.Validator, error) {
	data, err := v.snapshotFor(rules)
	if err != nil {
		return nil, err
	}

	engine := validation.Make(data, rules).
		SetCustomMessages(v.resolveMessages(o)).
		AddCustomAttributes(v.resolveAttributes(o))

	shortenModelAttributes(engine, data, rules)
	return engine, nil
}

// snapshotFor restricts the component snapshot to the top-level fields the
// rule keys reference. A rule referencing a field the component does not
// expose is a programmer error, surfaced as ErrPropertyNotFound.
func (v *Validator) snapshotFor(rules validation.Rules) (validation.Data, error) {
	snapshot := v.component.Snapshot()

	data := validation.Data{}
	for _, key := range sortedKeys(rules) {
		field := topLevelField(key)
		if _, done := data[field]; done {
			continue
		}
		value, ok := snapshot[field]
		if !ok {
			return nil, fmt.Errorf("%w: [%s] on component [%s]",
				ErrPropertyNotFound, field, v.component.ComponentName())
		}
		data[field] = normalizeValue(value)
	}
	return data, nil
}

// normalizeValue converts ordered-collection-like values into plain []any
// sequences (recursively) so the engine can index them, and string-keyed
// maps into map[string]any. Model and other Arrayable values pass through
// untouched — the engine traverses them structurally.
func normalizeValue(value any) any {
	if value == nil {
		return nil
	}
	if _, ok := value.(validation.Arrayable); ok {
		return value
	}
	if _, ok := value.([]byte); ok {
		return value
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = normalizeValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalizeValue(iter.Value().Interface())
		}
		return out
	}
	return value
}

// shortenModelAttributes registers display names for rules scoped under a
// model field: "author.email" reads as "email" in messages, unless an
// explicit attribute override already exists. Display-only — the validation
// outcome is unaffected.
func shortenModelAttributes(engine *validation.Validator, data validation.Data, rules validation.Rules) {
	for key := range rules {
		rest := support.AfterFirstDot(key)
		if rest == "" {
			continue
		}
		if _, ok := data[topLevelField(key)].(Model); !ok {
			continue
		}
		if engine.DisplayableAttribute(key) != key {
			continue
		}
		engine.AddCustomAttributes(validation.Attributes{key: rest})
	}
}

// ── error bag management ─────────────────────────────────────────────────────

// ErrorBag returns the component's error bag, creating it lazily.
func (v *Validator) ErrorBag() *support.MessageBag {
	if v.errorBag == nil {
		v.errorBag = support.NewMessageBag()
	}
	return v.errorBag
}

// SetErrorBag replaces the bag wholesale, e.g. from an external validator's
// result. A nil bag resets to empty.
func (v *Validator) SetErrorBag(bag *support.MessageBag) {
	if bag == nil {
		bag = support.NewMessageBag()
	}
	v.errorBag = bag
}

// AddError appends a message for a field path.
func (v *Validator) AddError(path, message string) {
	v.ErrorBag().Add(path, message)
}

// ResetErrorBag clears recorded errors. With no arguments the whole bag is
// replaced; with glob patterns (* matching any path remainder) only matching
// entries are removed.
func (v *Validator) ResetErrorBag(patterns ...string) {
	if len(patterns) == 0 {
		v.errorBag = support.NewMessageBag()
		return
	}
	v.errorBag = v.ErrorBag().Reject(patterns...)
}

// ClearValidation is an alias for ResetErrorBag.
func (v *Validator) ClearValidation(patterns ...string) { v.ResetErrorBag(patterns...) }

// ResetValidation is an alias for ResetErrorBag.
func (v *Validator) ResetValidation(patterns ...string) { v.ResetErrorBag(patterns...) }

// ── rule queries ─────────────────────────────────────────────────────────────

// HasRuleFor reports whether the component declares a rule governing path,
// including wildcard rules matched by indexed paths and bare collection
// fields covered by wildcarded sub-path rules.
func (v *Validator) HasRuleFor(path string) bool {
	return HasRuleFor(path, v.resolveRules(callOptions{}))
}

// MissingRuleFor is the negation of HasRuleFor.
func (v *Validator) MissingRuleFor(path string) bool {
	return !v.HasRuleFor(path)
}

// RulesForModel returns the declared rules whose top-level segment equals
// name, e.g. every rule scoped under a bound model.
func (v *Validator) RulesForModel(name string) validation.Rules {
	out := validation.Rules{}
	for key, rule := range v.resolveRules(callOptions{}) {
		if topLevelField(key) == name {
			out[key] = rule
		}
	}
	return out
}

func sortedKeys(rules validation.Rules) []string {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
