package support

import (
	"bytes"
	"encoding/json"
	"sort"
)

// MessageBag is an ordered collection of messages keyed by field path —
// mirrors Laravel's Illuminate\Support\MessageBag.
//
// Keys keep their insertion order so error output is deterministic. A key
// absent from the bag means "no known error", it says nothing about whether
// the field is valid.
type MessageBag struct {
	keys     []string
	messages map[string][]string
}

// NewMessageBag creates an empty bag.
func NewMessageBag() *MessageBag {
	return &MessageBag{messages: make(map[string][]string)}
}

// MessageBagFrom builds a bag from a plain map. Keys are inserted in sorted
// order since a Go map carries no order of its own.
func MessageBagFrom(messages map[string][]string) *MessageBag {
	bag := NewMessageBag()

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, message := range messages[key] {
			bag.Add(key, message)
		}
	}
	return bag
}

// Add appends a message to the given key, creating the entry if absent.
func (b *MessageBag) Add(key, message string) {
	if _, ok := b.messages[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.messages[key] = append(b.messages[key], message)
}

// Has returns true if any message is recorded for key.
func (b *MessageBag) Has(key string) bool {
	return len(b.messages[key]) > 0
}

// First returns the first message for key, or "".
func (b *MessageBag) First(key string) string {
	if msgs := b.messages[key]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Get returns a copy of the messages recorded for key.
func (b *MessageBag) Get(key string) []string {
	msgs := b.messages[key]
	if len(msgs) == 0 {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Keys returns the field paths in insertion order.
func (b *MessageBag) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Messages returns a copy of the whole bag as a plain map.
func (b *MessageBag) Messages() map[string][]string {
	out := make(map[string][]string, len(b.messages))
	for key, msgs := range b.messages {
		cp := make([]string, len(msgs))
		copy(cp, msgs)
		out[key] = cp
	}
	return out
}

// IsEmpty returns true if the bag holds no messages.
func (b *MessageBag) IsEmpty() bool { return len(b.keys) == 0 }

// Any returns true if the bag holds at least one message.
func (b *MessageBag) Any() bool { return !b.IsEmpty() }

// Count returns the total number of messages across all keys.
func (b *MessageBag) Count() int {
	n := 0
	for _, msgs := range b.messages {
		n += len(msgs)
	}
	return n
}

// Merge appends every entry of other to the bag, preserving other's order.
func (b *MessageBag) Merge(other *MessageBag) *MessageBag {
	if other == nil {
		return b
	}
	for _, key := range other.keys {
		for _, message := range other.messages[key] {
			b.Add(key, message)
		}
	}
	return b
}

// Reject returns a new bag containing only the entries whose key matches
// none of the given glob patterns (see Is). Order is preserved.
func (b *MessageBag) Reject(patterns ...string) *MessageBag {
	out := NewMessageBag()
	for _, key := range b.keys {
		if IsAny(patterns, key) {
			continue
		}
		for _, message := range b.messages[key] {
			out.Add(key, message)
		}
	}
	return out
}

// Supersede combines this bag with a fresh validation result: entries whose
// key matches one of the scoped patterns are dropped (the fresh result is
// authoritative for them, including "no error"), everything else is kept,
// and all of fresh is appended.
//
// This is the merge step of a partial validation pass — errors recorded for
// fields outside the validated scope survive, scoped fields are fully
// superseded by the new result.
func (b *MessageBag) Supersede(patterns []string, fresh *MessageBag) *MessageBag {
	return b.Reject(patterns...).Merge(fresh)
}

// MarshalJSON encodes the bag as {"field": ["msg", ...]} preserving key
// insertion order.
func (b *MessageBag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(b.messages[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
