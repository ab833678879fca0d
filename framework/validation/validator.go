package validation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/km-arc/go-livewire/framework/support"
)

// Validator validates a Data map against a set of declared rules —
// mirrors Laravel's Validator::make($data, $rules, $messages, $attributes).
type Validator struct {
	data       Data
	rules      Rules
	messages   Messages
	attributes Attributes
	errors     *support.MessageBag
	validated  Data
	ran        bool
}

// Make creates a new Validator.
func Make(data Data, rules Rules) *Validator {
	return &Validator{
		data:       data,
		rules:      rules,
		messages:   Messages{},
		attributes: Attributes{},
		errors:     support.NewMessageBag(),
		validated:  Data{},
	}
}

// SetCustomMessages registers per-field message overrides. Keys may be
// "field.rule" or a bare field path; both the concrete expanded path and the
// declared (possibly wildcarded) rule key are consulted.
func (v *Validator) SetCustomMessages(messages Messages) *Validator {
	for key, message := range messages {
		v.messages[key] = message
	}
	return v
}

// AddCustomAttributes registers display-name overrides for fields. They only
// affect message text, never the validation outcome.
func (v *Validator) AddCustomAttributes(attributes Attributes) *Validator {
	for key, name := range attributes {
		v.attributes[key] = name
	}
	return v
}

// DisplayableAttribute returns the name currently used for field in failure
// messages: the registered override if any, otherwise the field itself.
func (v *Validator) DisplayableAttribute(field string) string {
	if name, ok := v.attributes[field]; ok {
		return name
	}
	return field
}

// Fails runs validation (once) and returns true if any rule failed.
func (v *Validator) Fails() bool {
	v.run()
	return v.errors.Any()
}

// Passes runs validation and returns true if all rules passed.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag, keyed by concrete field path.
func (v *Validator) Errors() *support.MessageBag {
	v.run()
	return v.errors
}

// Validated returns the data subset that passed validation, keyed by
// concrete field path. Only meaningful after Passes.
func (v *Validator) Validated() Data {
	v.run()
	return v.validated
}

// ── Core validation loop ─────────────────────────────────────────────────────

// run evaluates every rule key exactly once. Keys are walked in sorted order
// so the error bag has a deterministic layout.
func (v *Validator) run() {
	if v.ran {
		return
	}
	v.ran = true

	keys := make([]string, 0, len(v.rules))
	for key := range v.rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, t := range expandPath("", key, any(v.data), true, strings.Split(key, ".")) {
			v.validateAttribute(t)
		}
	}
}

// target is one concrete attribute produced by expanding a rule key against
// the data: path is fully indexed (items.2.name), origKey is the declared
// key it came from (items.*.name).
type target struct {
	path    string
	origKey string
	value   any
	present bool
}

// expandPath resolves a (possibly wildcarded) rule key against a value.
// A * segment fans out over every index of a sequence; literal segments
// descend into maps, sequences and Arrayable records. A wildcard over a
// non-sequence yields nothing to validate.
func expandPath(prefix, origKey string, value any, present bool, segs []string) []target {
	if len(segs) == 0 {
		return []target{{path: prefix, origKey: origKey, value: value, present: present}}
	}

	head, rest := segs[0], segs[1:]

	if head == "*" {
		seq, ok := value.([]any)
		if !ok {
			return nil
		}
		var out []target
		for i, item := range seq {
			out = append(out, expandPath(joinPath(prefix, strconv.Itoa(i)), origKey, item, true, rest)...)
		}
		return out
	}

	child, ok := lookup(value, head)
	return expandPath(joinPath(prefix, head), origKey, child, present && ok, rest)
}

func joinPath(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

// lookup descends one path segment into a composite value.
func lookup(value any, segment string) (any, bool) {
	switch v := value.(type) {
	case Data:
		child, ok := v[segment]
		return child, ok
	case map[string]any:
		child, ok := v[segment]
		return child, ok
	case Arrayable:
		child, ok := v.ToArray()[segment]
		return child, ok
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, false
		}
		return v[idx], true
	}
	return nil, false
}

// getValue resolves a concrete dot path against the root data (used by
// same/different/confirmed).
func (v *Validator) getValue(path string) (any, bool) {
	var value any = v.data
	ok := true
	for _, seg := range strings.Split(path, ".") {
		value, ok = lookup(value, seg)
		if !ok {
			return nil, false
		}
	}
	return value, true
}

// validateAttribute applies the rule pipeline to one concrete attribute,
// bailing on the first failure (Laravel's bail behaviour, as before).
func (v *Validator) validateAttribute(t target) {
	for _, raw := range strings.Split(v.rules[t.origKey], "|") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, param, _ := strings.Cut(raw, ":")

		switch name {
		case "sometimes":
			// Skip the whole pipeline silently when the field is absent.
			if !t.present {
				return
			}
			continue
		case "nullable":
			if isEmptyValue(t.value) {
				v.validated[t.path] = t.value
				return
			}
			continue
		}

		if ok, msg := v.checkRule(name, param, t); !ok {
			v.addFailure(t.path, t.origKey, name, msg)
			return
		}
	}

	v.validated[t.path] = t.value
}

// addFailure records a failure, preferring custom messages. Lookup order:
// concrete path + rule, declared key + rule, concrete path, declared key,
// then the built-in message.
func (v *Validator) addFailure(path, origKey, rule, builtin string) {
	for _, key := range []string{path + "." + rule, origKey + "." + rule, path, origKey} {
		if msg, ok := v.messages[key]; ok {
			v.errors.Add(path, msg)
			return
		}
	}
	v.errors.Add(path, builtin)
}

// displayName returns the attribute name used in built-in messages for a
// concrete path, falling back from the path to its declared rule key.
func (v *Validator) displayName(path, origKey string) string {
	if name, ok := v.attributes[path]; ok {
		return name
	}
	if name, ok := v.attributes[origKey]; ok {
		return name
	}
	return path
}
