package file

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Document is the on-disk shape of an automaton.
//
//	states: [A, B, C]        # or "A B C"
//	symbols: [a]             # alias: alphabet
//	start: A
//	finals: [C]              # alias: final
//	transitions:
//	  - A eps B              # "from label to"
//	  - {from: B, on: a, to: C}
//	  - {from: C, on: a, to: [A, B]}
//
// Transitions may also be given as a mapping, the shape the converter emits:
//
//	transitions:
//	  A: {ε: [B]}
//	  B: {a: [C]}
type Document struct {
	States      []string         `mapstructure:"states" yaml:"states" json:"states"`
	Symbols     []string         `mapstructure:"symbols" yaml:"symbols" json:"symbols"`
	Start       string           `mapstructure:"start" yaml:"start" json:"start"`
	Finals      []string         `mapstructure:"finals" yaml:"finals" json:"finals"`
	Transitions []TransitionSpec `mapstructure:"transitions" yaml:"transitions" json:"transitions"`
}

// TransitionSpec is one transition entry. On, Symbol and Label are synonyms.
type TransitionSpec struct {
	From   string   `mapstructure:"from" yaml:"from" json:"from"`
	On     string   `mapstructure:"on" yaml:"on,omitempty" json:"on,omitempty"`
	Symbol string   `mapstructure:"symbol" yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Label  string   `mapstructure:"label" yaml:"label,omitempty" json:"label,omitempty"`
	To     []string `mapstructure:"to" yaml:"to" json:"to"`
}

func (t TransitionSpec) label() string {
	switch {
	case t.On != "":
		return t.On
	case t.Symbol != "":
		return t.Symbol
	default:
		return t.Label
	}
}

var keyAliases = map[string]string{
	"alphabet":     "symbols",
	"final":        "finals",
	"final_states": "finals",
	"start_state":  "start",
}

// decodeDocument maps a generic tree (as produced by yaml or json) onto a Document.
func decodeDocument(raw map[string]any) (Document, error) {
	normalized := make(map[string]any, len(raw))
	for k, v := range raw {
		key := strings.ToLower(k)
		if alias, ok := keyAliases[key]; ok {
			key = alias
		}
		normalized[key] = v
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			transitionMapHook,
			transitionLineHook,
			fieldsToSliceHook,
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &doc,
	})
	if err != nil {
		return Document{}, err
	}
	if err := decoder.Decode(normalized); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// fieldsToSliceHook lets "A B C" stand for [A, B, C].
func fieldsToSliceHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
		return data, nil
	}
	return strings.Fields(data.(string)), nil
}

// transitionLineHook lets "A a B" stand for {from: A, on: a, to: B}.
func transitionLineHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(TransitionSpec{}) {
		return data, nil
	}
	parts := strings.Fields(data.(string))
	if len(parts) != 3 {
		return nil, &FormatError{Line: data.(string)}
	}
	return map[string]any{"from": parts[0], "on": parts[1], "to": parts[2]}, nil
}

// transitionMapHook lets {A: {a: [B]}} stand for [{from: A, on: a, to: [B]}].
func transitionMapHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Map || to != reflect.TypeOf([]TransitionSpec{}) {
		return data, nil
	}
	bySource, err := stringMap(data)
	if err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}

	specs := []any{}
	for _, src := range sortedKeys(bySource) {
		byLabel, err := stringMap(bySource[src])
		if err != nil {
			return nil, fmt.Errorf("transitions of %s: %w", src, err)
		}
		for _, label := range sortedKeys(byLabel) {
			specs = append(specs, map[string]any{"from": src, "on": label, "to": byLabel[label]})
		}
	}
	return specs, nil
}

// stringMap accepts the mapping types produced by encoding/json and yaml.v3.
func stringMap(data any) (map[string]any, error) {
	switch m := data.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, nil
	case nil:
		return map[string]any{}, nil
	}
	return nil, fmt.Errorf("expected a mapping, got %T", data)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
