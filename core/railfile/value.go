package railfile

import "strconv"

// KeySeparator joins instance-column tokens into a record key.
// It is reserved and must not appear in the data columns themselves.
const KeySeparator = "|"

// ValueKind discriminates the parsed form of a record value.
type ValueKind int

const (
	// KindString means the raw token did not lex as a float literal.
	KindString ValueKind = iota
	// KindNumeric means Number holds the parsed float value.
	KindNumeric
)

// Value is one record value: the raw token exactly as it appeared in the
// file, together with its parsed form. The parsed form is never re-derived
// from Raw after construction.
type Value struct {
	Raw    string
	Kind   ValueKind
	Number float64
}

// IsNumeric reports whether the value parsed as a float.
func (v Value) IsNumeric() bool {
	return v.Kind == KindNumeric
}

// ParseValue builds a Value from a raw token. The token becomes numeric only
// if it parses fully as a floating-point literal; anything else is kept as
// the raw string unchanged.
func ParseValue(raw string) Value {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Raw: raw, Kind: KindNumeric, Number: n}
	}
	return Value{Raw: raw, Kind: KindString}
}

// Dataset maps record keys to values for one input file. Its key set doubles
// as the file's instance set.
type Dataset map[string]Value

// Keys returns the record keys in unspecified order.
func (d Dataset) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	return keys
}
