// Package expertise defines the closed set of expertise labels a sample can
// be classified into.
//
// The set itself belongs to whoever trains the classifier; this package only
// requires that it is finite, named and fixed once built. Parsing is strict:
// a value matches a label only if it is byte-for-byte equal to its name.
package expertise

import (
	"strings"

	"github.com/teranos/expertise/errors"
)

// Label is one named expertise class
type Label string

const (
	Novice Label = "NOVICE"
	Expert Label = "EXPERT"
)

// String returns the label name
func (l Label) String() string {
	return string(l)
}

// LabelSet is an ordered, duplicate-free, non-empty set of labels.
// The order defines each label's nominal index.
type LabelSet struct {
	labels []Label
	index  map[Label]int
}

// NewLabelSet builds a label set from names, keeping their order
func NewLabelSet(names ...string) (LabelSet, error) {
	if len(names) == 0 {
		return LabelSet{}, errors.NewInvalidSchemaError("label set is empty")
	}

	set := LabelSet{
		labels: make([]Label, 0, len(names)),
		index:  make(map[Label]int, len(names)),
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return LabelSet{}, errors.NewInvalidSchemaError("label name cannot be blank")
		}
		l := Label(name)
		if _, dup := set.index[l]; dup {
			return LabelSet{}, errors.NewInvalidSchemaError("duplicate label %q", name)
		}
		set.index[l] = len(set.labels)
		set.labels = append(set.labels, l)
	}
	return set, nil
}

// DefaultLabels returns the NOVICE/EXPERT set
func DefaultLabels() LabelSet {
	set, _ := NewLabelSet(Novice.String(), Expert.String())
	return set
}

// Parse resolves value to a label of the set
func (s LabelSet) Parse(value string) (Label, error) {
	l := Label(value)
	if _, ok := s.index[l]; !ok {
		return "", errors.WithHintf(
			errors.Wrapf(errors.ErrUnknownLabel, "value %q", value),
			"valid labels: %s", strings.Join(s.Names(), ", "))
	}
	return l, nil
}

// Contains reports whether l belongs to the set
func (s LabelSet) Contains(l Label) bool {
	_, ok := s.index[l]
	return ok
}

// Index returns the nominal index of l, or -1 if l is not in the set
func (s LabelSet) Index(l Label) int {
	if i, ok := s.index[l]; ok {
		return i
	}
	return -1
}

// Labels returns a copy of the labels in order
func (s LabelSet) Labels() []Label {
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Names returns the label names in order
func (s LabelSet) Names() []string {
	out := make([]string, len(s.labels))
	for i, l := range s.labels {
		out[i] = string(l)
	}
	return out
}

// Len returns the number of labels
func (s LabelSet) Len() int {
	return len(s.labels)
}

// IsZero reports whether the set was never built
func (s LabelSet) IsZero() bool {
	return len(s.labels) == 0
}
