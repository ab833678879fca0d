package livewire_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-livewire/framework/livewire"
	"github.com/km-arc/go-livewire/framework/support"
	"github.com/km-arc/go-livewire/framework/validation"
)

// form is a test component with arbitrary fields and declared rules.
type form struct {
	livewire.BaseComponent
	fields   map[string]any
	rules    validation.Rules
	messages validation.Messages
}

func newForm(fields map[string]any, rules validation.Rules) *form {
	return &form{
		BaseComponent: livewire.NewBaseComponent("test-form"),
		fields:        fields,
		rules:         rules,
	}
}

func (f *form) Snapshot() map[string]any      { return f.fields }
func (f *form) Rules() validation.Rules       { return f.rules }
func (f *form) Messages() validation.Messages { return f.messages }

// bare is a component with no declared rules at all.
type bare struct {
	livewire.BaseComponent
}

func (b *bare) Snapshot() map[string]any { return map[string]any{"name": "x"} }

// author is a model-backed value.
type author struct {
	ID    int
	Email string
}

func (a *author) ModelKey() any { return a.ID }
func (a *author) ToArray() map[string]any {
	return map[string]any{"id": a.ID, "email": a.Email}
}

// ── full validation ──────────────────────────────────────────────────────────

func TestValidate_SuccessClearsBagAndReturnsData(t *testing.T) {
	f := newForm(
		map[string]any{"name": "Alice", "email": "alice@example.com"},
		validation.Rules{"name": "required", "email": "required|email"},
	)
	v := livewire.NewValidator(f)
	v.AddError("name", "stale error")
	v.AddError("unrelated", "stale error")

	validated, err := v.Validate()

	require.NoError(t, err)
	assert.Equal(t, "Alice", validated["name"])
	assert.True(t, v.ErrorBag().IsEmpty(), "full validation success must empty the bag")
}

func TestValidate_FailureReplacesBagWholesale(t *testing.T) {
	f := newForm(
		map[string]any{"name": "", "email": "alice@example.com"},
		validation.Rules{"name": "required", "email": "email"},
	)
	v := livewire.NewValidator(f)
	v.AddError("unrelated", "old")

	_, err := v.Validate()

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, []string{"name"}, verr.Bag.Keys(), "old out-of-rule errors are not carried by a full run")
	assert.Same(t, verr.Bag, v.ErrorBag())
	assert.Equal(t, "The name field is required.", v.ErrorBag().First("name"))
}

func TestValidate_MissingRules(t *testing.T) {
	v := livewire.NewValidator(&bare{BaseComponent: livewire.NewBaseComponent("bare")})

	_, err := v.Validate()

	var missing *livewire.MissingRulesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "bare", missing.Component)
	assert.Nil(t, livewire.AsValidationError(err), "missing rules is not a validation failure")
}

func TestValidate_EmptyRuleMapAlsoMissing(t *testing.T) {
	f := newForm(map[string]any{"name": "x"}, validation.Rules{})
	_, err := livewire.NewValidator(f).Validate()

	var missing *livewire.MissingRulesError
	assert.ErrorAs(t, err, &missing)
}

func TestValidate_RuleForUnexposedFieldIsProgrammerError(t *testing.T) {
	f := newForm(map[string]any{"name": "x"}, validation.Rules{"ghost": "required"})
	_, err := livewire.NewValidator(f).Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, livewire.ErrPropertyNotFound)
	assert.Nil(t, livewire.AsValidationError(err))
}

func TestValidate_SnapshotRestrictedToRuledFields(t *testing.T) {
	// "extra" is malformed but has no rule, so it must not be validated.
	f := newForm(
		map[string]any{"email": "a@b.co", "extra": "not-an-email"},
		validation.Rules{"email": "email"},
	)
	validated, err := livewire.NewValidator(f).Validate()

	require.NoError(t, err)
	_, ok := validated["extra"]
	assert.False(t, ok)
}

func TestValidate_WithRuleOverrides(t *testing.T) {
	f := newForm(map[string]any{"name": "x", "email": ""}, validation.Rules{"email": "required"})
	v := livewire.NewValidator(f)

	// Override narrows validation to name only.
	validated, err := v.Validate(livewire.WithRules(validation.Rules{"name": "required"}))

	require.NoError(t, err)
	assert.Equal(t, "x", validated["name"])
}

func TestValidate_WithMessagesOverride(t *testing.T) {
	f := newForm(map[string]any{"email": ""}, validation.Rules{"email": "required"})
	_, err := livewire.NewValidator(f).Validate(
		livewire.WithMessages(validation.Messages{"email.required": "Give us an email."}),
	)

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "Give us an email.", verr.Bag.First("email"))
}

func TestValidate_ComponentMessagesUsedByDefault(t *testing.T) {
	f := newForm(map[string]any{"email": ""}, validation.Rules{"email": "required"})
	f.messages = validation.Messages{"email.required": "We need your email address."}

	_, err := livewire.NewValidator(f).Validate()

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "We need your email address.", verr.Bag.First("email"))
}

// ── partial validation ───────────────────────────────────────────────────────

func TestValidateOnly_SuccessPreservesUnrelatedErrors(t *testing.T) {
	f := newForm(
		map[string]any{"a": "", "b": "now valid"},
		validation.Rules{"a": "required", "b": "required"},
	)
	v := livewire.NewValidator(f)
	v.AddError("a", "bad")
	v.AddError("b", "bad")

	_, err := v.ValidateOnly("b")

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, v.ErrorBag().Keys())
	assert.Equal(t, "bad", v.ErrorBag().First("a"))
}

func TestValidateOnly_FailureIsAdditiveNotReplacing(t *testing.T) {
	f := newForm(
		map[string]any{"a": "", "b": ""},
		validation.Rules{"a": "required", "b": "required"},
	)
	v := livewire.NewValidator(f)
	v.AddError("a", "bad")
	v.AddError("b", "bad")

	_, err := v.ValidateOnly("b")

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, []string{"a", "b"}, verr.Bag.Keys())
	assert.Equal(t, "bad", verr.Bag.First("a"), "unrelated prior error preserved")
	assert.Equal(t, "The b field is required.", verr.Bag.First("b"), "scoped prior error superseded")
}

func TestValidateOnly_ScopedPriorErrorsSupersededEvenOnNewSuccess(t *testing.T) {
	f := newForm(
		map[string]any{"b": "fixed"},
		validation.Rules{"b": "required"},
	)
	v := livewire.NewValidator(f)
	v.AddError("b", "stale")

	_, err := v.ValidateOnly("b")

	require.NoError(t, err)
	assert.False(t, v.ErrorBag().Has("b"))
}

func TestValidateOnly_WildcardScope(t *testing.T) {
	f := newForm(
		map[string]any{"items": []any{
			map[string]any{"name": ""},
			map[string]any{"name": "fixed"},
		}},
		validation.Rules{"items.*.name": "required", "other": "required"},
	)
	f.fields["other"] = ""
	v := livewire.NewValidator(f)
	v.AddError("other", "bad")
	v.AddError("items.1.name", "stale")

	_, err := v.ValidateOnly("items.1.name")

	// The wildcard rule re-runs for every element, so items.0.name surfaces
	// while items.1.name clears and "other" is untouched.
	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.True(t, verr.Bag.Has("other"))
	assert.True(t, verr.Bag.Has("items.0.name"))
	assert.False(t, verr.Bag.Has("items.1.name"))
}

func TestValidateOnly_NoMatchingRuleIsANoOp(t *testing.T) {
	f := newForm(map[string]any{"a": ""}, validation.Rules{"a": "required"})
	v := livewire.NewValidator(f)
	v.AddError("a", "bad")

	validated, err := v.ValidateOnly("nothing.matches")

	require.NoError(t, err)
	assert.Empty(t, validated)
	assert.Equal(t, "bad", v.ErrorBag().First("a"), "bag untouched")
}

func TestValidateOnly_MissingRules(t *testing.T) {
	v := livewire.NewValidator(&bare{BaseComponent: livewire.NewBaseComponent("bare")})
	_, err := v.ValidateOnly("name")

	var missing *livewire.MissingRulesError
	assert.ErrorAs(t, err, &missing)
}

func TestValidateOnly_SnapshotLimitedToScopedFields(t *testing.T) {
	// "ghost" has a rule but no snapshot entry; validating only "name" must
	// not touch it.
	f := newForm(map[string]any{"name": "ok"}, validation.Rules{"name": "required", "ghost": "required"})
	v := livewire.NewValidator(f)

	_, err := v.ValidateOnly("name")
	require.NoError(t, err)

	_, err = v.ValidateOnly("ghost")
	assert.ErrorIs(t, err, livewire.ErrPropertyNotFound)
}

// ── normalization ────────────────────────────────────────────────────────────

func TestTypedSlicesAreNormalized(t *testing.T) {
	f := newForm(
		map[string]any{"tags": []string{"go", ""}},
		validation.Rules{"tags.*": "required"},
	)
	_, err := livewire.NewValidator(f).Validate()

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.True(t, verr.Bag.Has("tags.1"))
	assert.False(t, verr.Bag.Has("tags.0"))
}

func TestNestedStructSlicesAreNormalized(t *testing.T) {
	f := newForm(
		map[string]any{"items": []map[string]string{{"name": ""}}},
		validation.Rules{"items.*.name": "required"},
	)
	_, err := livewire.NewValidator(f).Validate()

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.True(t, verr.Bag.Has("items.0.name"))
}

// ── attribute shortening ─────────────────────────────────────────────────────

func TestModelRulePathsDisplayTrailingSegment(t *testing.T) {
	f := newForm(
		map[string]any{"author": &author{ID: 7, Email: "bad"}},
		validation.Rules{"author.email": "email"},
	)
	_, err := livewire.NewValidator(f).Validate()

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "The email must be a valid email address.", verr.Bag.First("author.email"))
	assert.Equal(t, []string{"author.email"}, verr.Bag.Keys(), "shortening affects the label, not the key")
}

func TestExplicitAttributeWinsOverShortening(t *testing.T) {
	f := newForm(
		map[string]any{"author": &author{ID: 7, Email: "bad"}},
		validation.Rules{"author.email": "email"},
	)
	_, err := livewire.NewValidator(f).Validate(
		livewire.WithAttributes(validation.Attributes{"author.email": "author e-mail"}),
	)

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "The author e-mail must be a valid email address.", verr.Bag.First("author.email"))
}

func TestNonModelValuesAreNotShortened(t *testing.T) {
	f := newForm(
		map[string]any{"author": map[string]any{"email": "bad"}},
		validation.Rules{"author.email": "email"},
	)
	_, err := livewire.NewValidator(f).Validate()

	verr := livewire.AsValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, "The author.email must be a valid email address.", verr.Bag.First("author.email"))
}

func TestShorteningNeverChangesOutcome(t *testing.T) {
	f := newForm(
		map[string]any{"author": &author{ID: 7, Email: "good@example.com"}},
		validation.Rules{"author.email": "required|email"},
	)
	_, err := livewire.NewValidator(f).Validate()
	assert.NoError(t, err)
}

// ── error bag management ─────────────────────────────────────────────────────

func TestResetErrorBag(t *testing.T) {
	f := newForm(map[string]any{}, validation.Rules{"x": "required"})
	v := livewire.NewValidator(f)

	t.Run("reset all is idempotent", func(t *testing.T) {
		v.AddError("a", "bad")
		v.ResetErrorBag()
		assert.True(t, v.ErrorBag().IsEmpty())
		v.ResetErrorBag()
		assert.True(t, v.ErrorBag().IsEmpty())
	})

	t.Run("scoped reset of absent key leaves bag unchanged", func(t *testing.T) {
		v.ResetErrorBag()
		v.AddError("b", "bad")
		v.ResetErrorBag("a")
		assert.Equal(t, []string{"b"}, v.ErrorBag().Keys())
	})

	t.Run("scoped reset removes matching entries", func(t *testing.T) {
		v.ResetErrorBag()
		v.AddError("items.0.name", "bad")
		v.AddError("email", "bad")
		v.ResetErrorBag("items.*")
		assert.Equal(t, []string{"email"}, v.ErrorBag().Keys())
	})

	t.Run("aliases behave identically", func(t *testing.T) {
		v.ResetErrorBag()
		v.AddError("a", "bad")
		v.ClearValidation()
		assert.True(t, v.ErrorBag().IsEmpty())

		v.AddError("a", "bad")
		v.ResetValidation("a")
		assert.True(t, v.ErrorBag().IsEmpty())
	})
}

func TestSetErrorBag(t *testing.T) {
	f := newForm(map[string]any{}, validation.Rules{})
	v := livewire.NewValidator(f)

	v.SetErrorBag(support.MessageBagFrom(map[string][]string{"a": {"external"}}))
	assert.Equal(t, "external", v.ErrorBag().First("a"))

	v.SetErrorBag(nil)
	assert.True(t, v.ErrorBag().IsEmpty())
}

func TestAddError(t *testing.T) {
	f := newForm(map[string]any{}, validation.Rules{})
	v := livewire.NewValidator(f)

	v.AddError("name", "custom problem")
	assert.Equal(t, []string{"custom problem"}, v.ErrorBag().Get("name"))
}

// ── rule queries ─────────────────────────────────────────────────────────────

func TestValidatorRuleQueries(t *testing.T) {
	f := newForm(map[string]any{}, validation.Rules{
		"items.*.name": "required",
		"email":        "required|email",
		"author.email": "email",
	})
	v := livewire.NewValidator(f)

	assert.True(t, v.HasRuleFor("items.2.name"))
	assert.True(t, v.HasRuleFor("items"))
	assert.True(t, v.HasRuleFor("email"))
	assert.False(t, v.HasRuleFor("other"))
	assert.True(t, v.MissingRuleFor("other"))

	assert.Equal(t, validation.Rules{"author.email": "email"}, v.RulesForModel("author"))
	assert.Empty(t, v.RulesForModel("nothing"))
}

func TestValidationErrorMessage(t *testing.T) {
	bag := support.NewMessageBag()
	bag.Add("email", "The email field is required.")
	err := &livewire.ValidationError{Bag: bag}

	assert.Equal(t, "validation failed: email: The email field is required.", err.Error())
	assert.True(t, errors.As(error(err), new(*livewire.ValidationError)))
}
