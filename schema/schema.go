// Package schema is the attribute registry every sample is validated against.
//
// A Schema maps each attribute name to a Kind and derives the definitions a
// classifier needs: one per numeric feature plus the class attribute, which
// also carries the closed label set. Build it once, before any sample, and
// share the pointer; nothing can change it afterwards.
//
//	s, err := schema.Default(expertise.DefaultLabels())
//	kind, err := s.KindOf("mbp") // KindNumeric
package schema

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/teranos/expertise/errors"
	"github.com/teranos/expertise/expertise"
)

// Entry declares one attribute of the table
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Definition is the classifier-visible declaration of an attribute.
// Labels is only set on the class definition.
type Definition struct {
	Name         string
	IsClassLabel bool
	Labels       expertise.LabelSet
}

// Schema is an immutable attribute registry
type Schema struct {
	entries     []Entry
	kinds       map[string]Kind
	class       string
	labels      expertise.LabelSet
	definitions []Definition
	features    []string
}

// New builds a schema from an attribute table and the class label set
func New(entries []Entry, labels expertise.LabelSet) (*Schema, error) {
	if len(entries) == 0 {
		return nil, errors.NewInvalidSchemaError("attribute table is empty")
	}
	if labels.IsZero() {
		return nil, errors.NewInvalidSchemaError("class label set is empty")
	}

	s := &Schema{
		entries: make([]Entry, 0, len(entries)),
		kinds:   make(map[string]Kind, len(entries)),
		labels:  labels,
	}

	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, errors.NewInvalidSchemaError("attribute name cannot be blank")
		}
		if !e.Kind.Valid() {
			return nil, errors.NewInvalidSchemaError("attribute %q has invalid kind %d", e.Name, int(e.Kind))
		}
		if _, dup := s.kinds[e.Name]; dup {
			return nil, errors.NewInvalidSchemaError("duplicate attribute %q", e.Name)
		}
		if e.Kind == KindClassLabel {
			if s.class != "" {
				return nil, errors.NewInvalidSchemaError("attributes %q and %q are both class labels", s.class, e.Name)
			}
			s.class = e.Name
		}

		s.kinds[e.Name] = e.Kind
		s.entries = append(s.entries, e)

		switch e.Kind {
		case KindClassLabel:
			s.definitions = append(s.definitions, Definition{Name: e.Name, IsClassLabel: true, Labels: labels})
		case KindNumeric:
			s.definitions = append(s.definitions, Definition{Name: e.Name})
			s.features = append(s.features, e.Name)
		}
	}

	if s.class == "" {
		return nil, errors.NewInvalidSchemaError("attribute table declares no class label")
	}
	return s, nil
}

// Default builds the schema of the fixed process-model table
func Default(labels expertise.LabelSet) (*Schema, error) {
	return New(DefaultEntries(), labels)
}

// KindOf returns the kind of name, or an *UnknownAttributeError
func (s *Schema) KindOf(name string) (Kind, error) {
	if k, ok := s.kinds[name]; ok {
		return k, nil
	}
	return 0, &UnknownAttributeError{Attribute: name}
}

// Lookup returns the kind of name and whether it is declared
func (s *Schema) Lookup(name string) (Kind, bool) {
	k, ok := s.kinds[name]
	return k, ok
}

// ClassAttribute returns the name of the class label attribute
func (s *Schema) ClassAttribute() string {
	return s.class
}

// Labels returns the closed label set of the class attribute
func (s *Schema) Labels() expertise.LabelSet {
	return s.labels
}

// Entries returns the attribute table in declaration order
func (s *Schema) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Definitions returns the classifier-visible definitions in declaration order
func (s *Schema) Definitions() []Definition {
	out := make([]Definition, len(s.definitions))
	copy(out, s.definitions)
	return out
}

// FeatureNames returns the numeric feature names in declaration order
func (s *Schema) FeatureNames() []string {
	out := make([]string, len(s.features))
	copy(out, s.features)
	return out
}

// Len returns the number of declared attributes
func (s *Schema) Len() int {
	return len(s.entries)
}

// Fingerprint identifies the attribute table and label set: names, kinds and
// order of both. Two schemas with the same fingerprint produce instances
// with the same shape and class indexes.
func (s *Schema) Fingerprint() string {
	d := xxhash.New()
	for _, e := range s.entries {
		fmt.Fprintf(d, "%s=%s;", e.Name, e.Kind)
	}
	for _, name := range s.labels.Names() {
		fmt.Fprintf(d, "label=%s;", name)
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
