package calc

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrUnknownKey is returned by ParseKeys for a key it does not recognise.
var ErrUnknownKey = errors.New("unknown key")

// namedKeys are the keys written in braces in a key script.
var namedKeys = map[string]Event{
	"neg":  Negate,
	"c":    Clear,
	"ce":   ClearEntry,
	"bs":   Backspace,
	"mc":   MemoryClear,
	"mr":   MemoryRecall,
	"ms":   MemoryStore,
	"m+":   MemoryAdd,
	"sqrt": Sqrt,
	"inv":  Reciprocal,
	"pct":  Percent,
}

// NamedKeys lists the names accepted inside braces, sorted.
func NamedKeys() []string {
	names := make([]string, 0, len(namedKeys))
	for n := range namedKeys {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LookupNamedKey resolves a brace key name such as "sqrt" or "m+".
func LookupNamedKey(name string) (Event, bool) {
	ev, ok := namedKeys[strings.ToLower(strings.TrimSpace(name))]
	return ev, ok
}

// ParseKeys turns a key script such as "12+7=" or "42{ms}{c}{mr}" into events.
// Whitespace between keys is ignored.
func ParseKeys(script string) ([]Event, error) {
	runes := []rune(script)
	out := make([]Event, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			out = append(out, Digit(r))
		case r == '.':
			out = append(out, Dot)
		case r == '=':
			out = append(out, Evaluate)
		case r == '%':
			out = append(out, Percent)
		case r == '{':
			end := closingBrace(runes, i+1)
			if end < 0 {
				return nil, fmt.Errorf("key at %d: unterminated %q: %w", i, string(runes[i:]), ErrUnknownKey)
			}
			name := string(runes[i+1 : end])
			ev, ok := LookupNamedKey(name)
			if !ok {
				return nil, fmt.Errorf("key at %d: {%s}: %w", i, name, ErrUnknownKey)
			}
			out = append(out, ev)
			i = end
		default:
			o, ok := ParseOperator(r)
			if !ok {
				return nil, fmt.Errorf("key at %d: %q: %w", i, string(r), ErrUnknownKey)
			}
			out = append(out, Op(o))
		}
	}
	return out, nil
}

func closingBrace(runes []rune, from int) int {
	for j := from; j < len(runes); j++ {
		if runes[j] == '}' {
			return j
		}
	}
	return -1
}

// ApplyAll feeds every event to the engine in order.
func (e *Engine) ApplyAll(events []Event) {
	for _, ev := range events {
		e.Apply(ev)
	}
}
