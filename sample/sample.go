// Package sample holds the typed feature record of one scored model.
//
// A Sample is a sparse map from attribute name to a string or float64 value.
// Every write is checked against the schema it was built with: the name
// must be declared and the value must belong to the kind's category. Reads
// are checked the same way before presence is considered, so asking a
// string attribute for a number fails even when nothing was ever set.
//
// A Sample is not safe for concurrent use; callers serialize access. Reads
// on a nil *Sample fail with errors.ErrNotSet.
package sample

import (
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/teranos/expertise/errors"
	"github.com/teranos/expertise/expertise"
	"github.com/teranos/expertise/schema"
)

// Sample is the typed, schema-validated record of one model
type Sample struct {
	schema *schema.Schema
	values map[string]any
}

// New builds a sample from raw values. Entries are validated in name order
// and the first invalid one is returned; no sample is built in that case.
func New(s *schema.Schema, initial map[string]any) (*Sample, error) {
	if s == nil {
		return nil, errors.NewInvalidSchemaError("sample requires a schema")
	}
	smp := &Sample{
		schema: s,
		values: make(map[string]any, len(initial)),
	}
	if err := smp.Apply(initial); err != nil {
		return nil, err
	}
	return smp, nil
}

// Apply writes a batch of raw values. The whole batch is validated first and
// nothing is written if any entry fails.
func (smp *Sample) Apply(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	normalized := make(map[string]any, len(values))
	for _, name := range names {
		v, err := smp.normalize(name, values[name])
		if err != nil {
			return err
		}
		normalized[name] = v
	}

	for name, v := range normalized {
		smp.values[name] = v
	}
	return nil
}

// Set writes one raw value after validating it
func (smp *Sample) Set(name string, value any) error {
	v, err := smp.normalize(name, value)
	if err != nil {
		return err
	}
	smp.values[name] = v
	return nil
}

// SetString writes a string attribute (ignored string or class label)
func (smp *Sample) SetString(name, value string) error {
	return smp.Set(name, value)
}

// SetNumeric writes a numeric attribute (ignored numeric or feature)
func (smp *Sample) SetNumeric(name string, value float64) error {
	return smp.Set(name, value)
}

// StringValue reads a string attribute. It fails with an
// *schema.UnknownAttributeError for undeclared names, a
// *schema.WrongValueTypeError for numeric kinds, and errors.ErrNotSet when
// nothing was written.
func (smp *Sample) StringValue(name string) (string, error) {
	v, err := smp.read(name, schema.Kind.IsString)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// NumericValue reads a numeric attribute; see StringValue for the failures
func (smp *Sample) NumericValue(name string) (float64, error) {
	v, err := smp.read(name, schema.Kind.IsNumeric)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// ClassLabel returns the sample's class label, or false when the class
// attribute is unset or holds a value outside the label set
func (smp *Sample) ClassLabel() (expertise.Label, bool) {
	l, err := smp.ResolveClassLabel()
	return l, err == nil
}

// ResolveClassLabel is ClassLabel with the reason it has no label
func (smp *Sample) ResolveClassLabel() (expertise.Label, error) {
	if smp == nil {
		return "", errors.Wrap(errors.ErrNotSet, "class label of nil sample")
	}
	raw, err := smp.StringValue(smp.schema.ClassAttribute())
	if err != nil {
		return "", err
	}
	return smp.schema.Labels().Parse(raw)
}

// ModelID returns the identifying attribute, if set
func (smp *Sample) ModelID() (string, bool) {
	id, err := smp.StringValue(schema.IdentityAttribute)
	return id, err == nil
}

// Equal reports whether both samples carry the same model_id.
// A sample without model_id equals nothing, itself included.
func (smp *Sample) Equal(other *Sample) bool {
	if smp == nil || other == nil {
		return false
	}
	id, ok := smp.ModelID()
	if !ok {
		return false
	}
	otherID, ok := other.ModelID()
	return ok && id == otherID
}

// Hash is consistent with Equal: it only covers model_id
func (smp *Sample) Hash() uint64 {
	id, _ := smp.ModelID()
	return xxhash.Sum64String(id)
}

// Has reports whether name holds a value
func (smp *Sample) Has(name string) bool {
	_, ok := smp.values[name]
	return ok
}

// Len returns the number of attributes holding a value
func (smp *Sample) Len() int {
	return len(smp.values)
}

// Values returns a copy of the held values
func (smp *Sample) Values() map[string]any {
	out := make(map[string]any, len(smp.values))
	for k, v := range smp.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy bound to the same schema
func (smp *Sample) Clone() *Sample {
	return &Sample{schema: smp.schema, values: smp.Values()}
}

// Schema returns the schema the sample validates against
func (smp *Sample) Schema() *schema.Schema {
	return smp.schema
}

func (smp *Sample) read(name string, category func(schema.Kind) bool) (any, error) {
	if smp == nil {
		return nil, errors.Wrapf(errors.ErrNotSet, "attribute %q of nil sample", name)
	}
	kind, err := smp.schema.KindOf(name)
	if err != nil {
		return nil, err
	}
	if !category(kind) {
		return nil, &schema.WrongValueTypeError{Attribute: name, Expected: kind}
	}
	v, ok := smp.values[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotSet, "attribute %q", name)
	}
	return v, nil
}

// normalize checks value against the kind of name and returns the stored form
func (smp *Sample) normalize(name string, value any) (any, error) {
	kind, err := smp.schema.KindOf(name)
	if err != nil {
		return nil, err
	}

	switch {
	case kind.IsString():
		if s, ok := value.(string); ok {
			return s, nil
		}
	case kind.IsNumeric():
		// NaN marks a missing slot downstream, so only finite numbers are values
		if f, ok := toFloat(value); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, nil
		}
	}
	return nil, &schema.WrongValueTypeError{Attribute: name, Expected: kind, Value: value, HasValue: true}
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
