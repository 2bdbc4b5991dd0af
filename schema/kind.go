package schema

// Kind is the declared role of an attribute
type Kind int

const (
	// KindIgnoredString is bookkeeping text excluded from classification (identifiers)
	KindIgnoredString Kind = iota + 1
	// KindIgnoredNumeric is a bookkeeping number excluded from classification (timings)
	KindIgnoredNumeric
	// KindClassLabel is the target attribute; exactly one per schema
	KindClassLabel
	// KindNumeric is a classification feature
	KindNumeric
)

var kindNames = map[Kind]string{
	KindIgnoredString:  "ignored_string",
	KindIgnoredNumeric: "ignored_numeric",
	KindClassLabel:     "class",
	KindNumeric:        "numeric",
}

// String returns the kind's table name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// IsString reports whether values of this kind are strings
func (k Kind) IsString() bool {
	return k == KindIgnoredString || k == KindClassLabel
}

// IsNumeric reports whether values of this kind are numbers
func (k Kind) IsNumeric() bool {
	return k == KindIgnoredNumeric || k == KindNumeric
}

// IsClassifierVisible reports whether the classifier sees attributes of this kind
func (k Kind) IsClassifierVisible() bool {
	return k == KindClassLabel || k == KindNumeric
}

// Category names the value category of the kind, as used in error messages
func (k Kind) Category() string {
	switch {
	case k.IsString():
		return "string"
	case k.IsNumeric():
		return "numeric"
	default:
		return "none"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
