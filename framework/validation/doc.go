// Package validation provides Laravel-compatible data validation.
//
// # Overview
//
// The package mirrors Laravel's Validator facade and its rule syntax. Rules
// are expressed as pipe-separated strings keyed by field path; a * segment
// stands for any index of a sequence, so one declared rule can govern every
// element of a collection.
//
// # Basic Usage
//
//	v := validation.Make(validation.Data{
//	    "name":  "Alice",
//	    "email": "alice@example.com",
//	    "items": []any{
//	        map[string]any{"name": "first"},
//	    },
//	}, validation.Rules{
//	    "name":         "required|min:2|max:100",
//	    "email":        "required|email",
//	    "items.*.name": "required|min:2",
//	})
//
//	if v.Fails() {
//	    bag := v.Errors() // *support.MessageBag keyed by concrete path,
//	                      // e.g. "items.0.name"
//	}
//
// # Custom Messages and Attributes
//
//	v.SetCustomMessages(validation.Messages{
//	    "email.required": "We need your email address.",
//	})
//	v.AddCustomAttributes(validation.Attributes{
//	    "items.*.name": "item name",
//	})
//
// Message keys may be "field.rule" or a bare field path; both the concrete
// expanded path and the declared wildcard key are consulted. Attribute
// overrides change only the name shown in built-in messages.
//
// # Available Rules
//
// String rules:
//   - required — field must be present and non-empty
//   - string   — value must be a string
//   - min:n    — minimum size (runes for strings, items for sequences, value for numbers)
//   - max:n    — maximum size
//   - size:n   — exact size
//   - between:min,max — size between min and max (inclusive)
//   - alpha / alpha_num / alpha_dash — character-class checks
//   - regex:pattern — must match the regexp pattern
//
// Format rules:
//   - email — valid RFC 5322 email address
//   - url   — must start with http:// or https://
//
// Numeric rules:
//   - numeric / integer
//   - gt:n / gte:n / lt:n / lte:n
//
// Comparison rules:
//   - confirmed       — <field>_confirmation must match
//   - same:other      — must equal the value at path other
//   - different:other — must not equal the value at path other
//
// Type rules:
//   - boolean — bool, 0/1, or true/false/yes/no strings
//   - array   — value must be a sequence
//   - in:a,b,c / not_in:a,b,c
//
// Control rules:
//   - nullable  — empty values pass and skip the remaining rules
//   - sometimes — skip the field silently when it is absent from the data
//
// # Traversal
//
// Values may be scalars, []any sequences, nested map[string]any maps, or
// records implementing Arrayable. Arrayable values are traversed through
// ToArray, so model-like records keep their identity while their fields stay
// addressable by dot path.
//
// # Determinism
//
// Rule keys are evaluated in sorted order and the error bag preserves
// insertion order, so output is stable across runs.
package validation
