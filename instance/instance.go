package instance

import (
	"math"

	"github.com/teranos/expertise/expertise"
)

// DefaultRelation is the dataset relation name instances are declared under
const DefaultRelation = "DATA"

// Slot is one numeric feature of an instance. A missing slot keeps the
// reason the sample could not supply it.
type Slot struct {
	Name    string
	Value   float64
	Missing bool
	Reason  error
}

// ClassSlot is the class attribute of an instance. It is always declared;
// Index is the label's nominal index in Labels, or -1 when missing.
type ClassSlot struct {
	Name    string
	Label   expertise.Label
	Index   int
	Missing bool
	Reason  error
	Labels  expertise.LabelSet
}

// Instance is the classifier-ready view of one sample
type Instance struct {
	Relation string
	Features []Slot
	Class    ClassSlot
}

// Value returns the value of a feature slot and whether it is present
func (in *Instance) Value(name string) (float64, bool) {
	for _, slot := range in.Features {
		if slot.Name == name {
			return slot.Value, !slot.Missing
		}
	}
	return 0, false
}

// Slot returns the named feature slot
func (in *Instance) Slot(name string) (Slot, bool) {
	for _, slot := range in.Features {
		if slot.Name == name {
			return slot, true
		}
	}
	return Slot{}, false
}

// MissingFeatures returns the names of missing feature slots in order
func (in *Instance) MissingFeatures() []string {
	var names []string
	for _, slot := range in.Features {
		if slot.Missing {
			names = append(names, slot.Name)
		}
	}
	return names
}

// NumAttributes counts feature slots plus the class slot
func (in *Instance) NumAttributes() int {
	return len(in.Features) + 1
}

// ClassIndex is the position of the class slot in Vector
func (in *Instance) ClassIndex() int {
	return len(in.Features)
}

// Vector encodes the instance as feature values followed by the class
// index, with NaN for every missing slot
func (in *Instance) Vector() []float64 {
	out := make([]float64, 0, in.NumAttributes())
	for _, slot := range in.Features {
		if slot.Missing {
			out = append(out, math.NaN())
			continue
		}
		out = append(out, slot.Value)
	}
	if in.Class.Missing {
		out = append(out, math.NaN())
	} else {
		out = append(out, float64(in.Class.Index))
	}
	return out
}
