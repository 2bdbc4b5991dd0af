// Package instance converts samples into the structured instances consumed
// by the external classification engine.
//
// The shape of an instance comes from the schema alone: one slot per numeric
// feature, in table order, plus the class slot. Whatever the sample does not
// hold becomes a missing slot rather than an error, so partially measured
// models can still be scored or filtered upstream.
package instance

import (
	"context"

	"go.uber.org/zap"

	"github.com/teranos/expertise/errors"
	"github.com/teranos/expertise/expertise"
	"github.com/teranos/expertise/logger"
	"github.com/teranos/expertise/sample"
	"github.com/teranos/expertise/schema"
)

// Classifier is the external engine that predicts an expertise label
type Classifier interface {
	Classify(ctx context.Context, in *Instance) (expertise.Label, error)
}

// Header declares the dataset instances of an adapter belong to
type Header struct {
	Relation   string
	Attributes []schema.Definition
	ClassIndex int
}

// Adapter builds instances for one schema. It holds no per-sample state and
// may be shared.
type Adapter struct {
	schema   *schema.Schema
	relation string
	logger   *zap.SugaredLogger
}

// Option configures an Adapter
type Option func(*Adapter)

// WithRelation sets the dataset relation name
func WithRelation(name string) Option {
	return func(a *Adapter) {
		if name != "" {
			a.relation = name
		}
	}
}

// WithLogger sets the logger used for conversion diagnostics
func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdapter creates an adapter for s
func NewAdapter(s *schema.Schema, opts ...Option) *Adapter {
	a := &Adapter{
		schema:   s,
		relation: DefaultRelation,
		logger:   logger.ComponentLogger("instance"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Header returns the dataset declaration: class attribute last
func (a *Adapter) Header() Header {
	var attrs []schema.Definition
	var class schema.Definition
	for _, d := range a.schema.Definitions() {
		if d.IsClassLabel {
			class = d
			continue
		}
		attrs = append(attrs, d)
	}
	return Header{
		Relation:   a.relation,
		Attributes: append(attrs, class),
		ClassIndex: len(attrs),
	}
}

// Convert builds a fresh instance from smp. It never fails: anything the
// sample cannot supply becomes a missing slot carrying the reason. A nil
// sample yields an instance with every slot missing.
func (a *Adapter) Convert(smp *sample.Sample) *Instance {
	features := a.schema.FeatureNames()
	in := &Instance{
		Relation: a.relation,
		Features: make([]Slot, 0, len(features)),
	}

	for _, name := range features {
		slot := Slot{Name: name}
		v, err := smp.NumericValue(name)
		if err != nil {
			slot.Missing = true
			slot.Reason = err
		} else {
			slot.Value = v
		}
		in.Features = append(in.Features, slot)
	}

	in.Class = a.classSlot(smp)

	if missing := in.MissingFeatures(); len(missing) > 0 || in.Class.Missing {
		id, _ := smp.ModelID()
		log := logger.ChildLogger(a.logger, logger.FieldModelID, id)
		log.Debugw("instance has missing slots",
			logger.FieldMissing, missing,
			logger.FieldLabel, in.Class.Label,
		)
	}
	return in
}

// ConvertAll converts samples in order
func (a *Adapter) ConvertAll(samples []*sample.Sample) []*Instance {
	out := make([]*Instance, 0, len(samples))
	for _, smp := range samples {
		out = append(out, a.Convert(smp))
	}
	return out
}

// Classify converts smp and hands the instance to c
func (a *Adapter) Classify(ctx context.Context, c Classifier, smp *sample.Sample) (expertise.Label, error) {
	in := a.Convert(smp)
	label, err := c.Classify(ctx, in)
	if err != nil {
		id, _ := smp.ModelID()
		return "", errors.Wrapf(err, "classify model %q", id)
	}
	if !a.schema.Labels().Contains(label) {
		return "", errors.Wrapf(errors.ErrUnknownLabel, "classifier returned %q", label)
	}
	return label, nil
}

func (a *Adapter) classSlot(smp *sample.Sample) ClassSlot {
	labels := a.schema.Labels()
	slot := ClassSlot{
		Name:   a.schema.ClassAttribute(),
		Index:  -1,
		Labels: labels,
	}

	raw, err := smp.StringValue(slot.Name)
	if err == nil {
		var label expertise.Label
		label, err = labels.Parse(raw)
		if err == nil {
			slot.Label = label
			slot.Index = labels.Index(label)
			return slot
		}
	}
	slot.Missing = true
	slot.Reason = err
	return slot
}
