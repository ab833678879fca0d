package support_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-livewire/framework/support"
)

func TestIs(t *testing.T) {
	cases := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"email", "email", true},
		{"email", "email.work", false},
		{"items.*", "items.2", true},
		{"items.*", "items.2.name", true},
		{"items.*.name", "items.2.name", true},
		{"items.*.name", "items.2.qty", false},
		{"*", "anything.at.all", true},
		{"a.*.c", "a.b.c", true},
		{"a.+.c", "a.+.c", true}, // regex metacharacters are quoted
		{"a.+.c", "axbxc", false},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+" vs "+tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, support.Is(tc.pattern, tc.value))
		})
	}
}

func TestIsAny(t *testing.T) {
	assert.True(t, support.IsAny([]string{"a", "b.*"}, "b.c"))
	assert.False(t, support.IsAny([]string{"a", "b.*"}, "c"))
	assert.False(t, support.IsAny(nil, "a"))
}

func TestDotHelpers(t *testing.T) {
	assert.Equal(t, "items", support.BeforeFirstDot("items.2.name"))
	assert.Equal(t, "items", support.BeforeFirstDot("items"))
	assert.Equal(t, "2.name", support.AfterFirstDot("items.2.name"))
	assert.Equal(t, "", support.AfterFirstDot("items"))
}
