package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/dsl"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for formats other than YAML and JSON.
var ErrUnsupportedFormat = errors.New("unsupported format")

// FormatError reports a transition line that is not "from label to".
type FormatError struct {
	Line string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("transition %q: expected 'state symbol state'", e.Line)
}

// FormatFromPath picks JSON for ".json" files and YAML for everything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Load reads an automaton document from disk.
func Load(path string) (domain.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Automaton{}, fmt.Errorf("failed to read automaton: %w", err)
	}
	a, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return domain.Automaton{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Decode parses an automaton document and returns the validated automaton.
// Labels are normalised; repeated transitions are merged.
func Decode(data []byte, format Format) (domain.Automaton, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return domain.Automaton{}, fmt.Errorf("failed to parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return domain.Automaton{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return domain.Automaton{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if raw == nil {
		return domain.Automaton{}, errors.New("empty document")
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return domain.Automaton{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc.Automaton()
}

// Automaton assembles and validates the document.
func (d Document) Automaton() (domain.Automaton, error) {
	b := dsl.New().
		States(d.States...).
		Symbols(d.Symbols...).
		Start(d.Start).
		Final(d.Finals...)
	for _, t := range d.Transitions {
		b.On(t.From, t.label(), t.To...)
	}
	return b.Build()
}

// NewDocument converts an automaton to its document form.
// Empty target sets are omitted; transitions are ordered by source, label and target.
func NewDocument(a domain.Automaton) Document {
	doc := Document{
		States:  a.States,
		Symbols: a.Symbols,
		Start:   a.Start,
		Finals:  a.Finals,
	}
	if doc.Finals == nil {
		doc.Finals = []string{}
	}

	sources := make([]string, 0, len(a.Transitions))
	for from := range a.Transitions {
		sources = append(sources, from)
	}
	sort.Strings(sources)

	for _, from := range sources {
		labels := make([]string, 0, len(a.Transitions[from]))
		for label := range a.Transitions[from] {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			targets := a.Transitions[from][label]
			if len(targets) == 0 {
				continue
			}
			doc.Transitions = append(doc.Transitions, TransitionSpec{From: from, On: label, To: targets})
		}
	}
	return doc
}

// Encode serializes an automaton in the given format.
func Encode(a domain.Automaton, format Format) ([]byte, error) {
	doc := NewDocument(a)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
