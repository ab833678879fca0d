package livewire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/km-arc/go-livewire/framework/support"
)

// ErrPropertyNotFound signals a rule referencing a field the component does
// not expose in its snapshot. That is a programmer error, distinct from a
// validation failure, and is never silently ignored.
var ErrPropertyNotFound = errors.New("property not found on component")

// ValidationError is the expected, user-facing failure: one or more field
// rules did not pass. It carries the per-field message bag — for a partial
// validation this is the merged bag, including errors previously recorded
// for fields outside the validated scope.
type ValidationError struct {
	Bag *support.MessageBag
}

func (e *ValidationError) Error() string {
	if e.Bag == nil || e.Bag.IsEmpty() {
		return "validation failed"
	}

	var parts []string
	for _, key := range e.Bag.Keys() {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.Bag.First(key)))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps a *ValidationError from err, or returns nil.
func AsValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

// MissingRulesError signals that a validation call resolved no rules at all —
// a configuration error, not recoverable by re-validating.
type MissingRulesError struct {
	Component string
}

func (e *MissingRulesError) Error() string {
	return fmt.Sprintf("no validation rules defined for component [%s]", e.Component)
}
