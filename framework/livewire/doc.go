// Package livewire provides Livewire-style declarative validation for
// stateful components.
//
// # Overview
//
// A component exposes its public fields as a snapshot (a flat or nested
// property bag) and declares rules keyed by dot-addressed field paths. The
// Validator resolves those rules against the snapshot, delegates to the
// validation engine, and records failures in an error bag keyed by field
// path. Two granularities are supported: whole-state validation and
// single-field validation that leaves errors recorded for unrelated fields
// untouched.
//
// # Components
//
//	type ContactForm struct {
//	    livewire.BaseComponent
//	    Name  string
//	    Email string
//	    Items []map[string]any
//	}
//
//	func (f *ContactForm) Snapshot() map[string]any {
//	    return map[string]any{"name": f.Name, "email": f.Email, "items": f.Items}
//	}
//
//	func (f *ContactForm) Rules() validation.Rules {
//	    return validation.Rules{
//	        "name":         "required|min:2",
//	        "email":        "required|email",
//	        "items.*.name": "required",
//	    }
//	}
//
// Rules, messages and attributes are explicit capabilities (HasRules,
// HasMessages, HasAttributes) or per-call overrides (WithRules, WithMessages,
// WithAttributes) — never discovered by introspection.
//
// # Validating
//
//	v := livewire.NewValidator(form)
//
//	if _, err := v.Validate(); err != nil {
//	    if verr := livewire.AsValidationError(err); verr != nil {
//	        // verr.Bag: field path → messages, insertion-ordered
//	    }
//	}
//
//	// After a single field changes:
//	_, err := v.ValidateOnly("items.2.name")
//
// ValidateOnly narrows the rule map to the keys governing the given path
// (wildcard segments match any single concrete segment) and merges its
// result into the existing bag: fields outside the scope keep their recorded
// errors, fields inside it are fully superseded — including being cleared
// when they now pass.
//
// # Wildcard paths
//
// A declared key like "items.*.name" governs "items.0.name", "items.1.name"
// and so on. HasRuleFor("items.2.name") canonicalizes the indexed path and
// looks the wildcard key up literally; HasRuleFor("items") is also true,
// because a wildcarded sub-path rule marks the whole collection field as
// validated.
//
// # Failure kinds
//
//   - *ValidationError — one or more rules failed; expected and user-facing,
//     carries the merged message bag.
//   - *MissingRulesError — no rules resolved at all; a configuration error.
//   - ErrPropertyNotFound — a rule references a field the component does not
//     expose; a programmer error.
//
// # Concurrency
//
// A Validator is owned by one component instance and runs synchronously; it
// is not safe for concurrent use.
package livewire
