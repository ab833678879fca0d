package validation

// Data is the attribute map under validation. Values may be scalars, []any
// sequences, nested map[string]any maps, or Arrayable records.
type Data map[string]any

// Rules maps a field path to a pipe-separated rule string — mirrors
// Laravel's rule arrays.
//
//	Rules{
//	    "email":        "required|email",
//	    "items.*.name": "required|min:2",
//	}
//
// A path segment of * stands for any index of a sequence at that position.
type Rules map[string]string

// Messages maps "field.rule" (or a bare field path) to a custom failure
// message, overriding the built-in one.
//
//	Messages{"email.required": "We need your email address."}
type Messages map[string]string

// Attributes maps a field path to the name displayed in failure messages.
type Attributes map[string]string

// Arrayable is implemented by record values whose fields can be addressed
// with dot notation — e.g. a model bound to a component property. The
// validator traverses such values structurally instead of serializing them.
type Arrayable interface {
	ToArray() map[string]any
}
