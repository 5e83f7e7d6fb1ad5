// Package kovaaks parses KovaaK's aim-trainer CSV stat exports.
//
// A single export mixes three structurally different sections with no
// explicit delimiters: a variable-length kill/event table, a small weapon
// table (usually one row), and a vertical key-value stats block. Section
// boundaries are located by content sentinels and each section is parsed
// under its own rules.
package kovaaks

import "strconv"

// Row maps column names to cell values for one table row.
type Row map[string]string

// Table is an ordered sequence of rows with a declared column order.
// A table may have zero rows and still expose its column names.
type Table struct {
	// Columns is the header, in file order.
	Columns []string

	// Rows holds the data rows, in file order.
	Rows []Row
}

// Empty reports whether the table has neither columns nor rows.
func (t Table) Empty() bool {
	return len(t.Columns) == 0 && len(t.Rows) == 0
}

// Kind discriminates the type held by a stats Value.
type Kind int

const (
	// KindString is a value kept as raw text.
	KindString Kind = iota
	// KindInt is a value coerced to an integer.
	KindInt
	// KindFloat is a value coerced to a floating-point number.
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a stats cell: a string, an integer, or a float.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
}

// StringValue returns a Value holding a string.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue returns a Value holding an integer.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// FloatValue returns a Value holding a float.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// Kind returns the type discriminator.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer value. The bool is false unless Kind is KindInt.
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == KindInt
}

// Float returns the float value. The bool is false unless Kind is KindFloat.
func (v Value) Float() (float64, bool) {
	return v.flt, v.kind == KindFloat
}

// String renders the value as text regardless of kind.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	default:
		return v.str
	}
}

// Stats is an insertion-ordered mapping from stat name to value.
// Re-setting an existing key overwrites the value but keeps the key's
// original position.
type Stats struct {
	keys   []string
	values map[string]Value
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{values: make(map[string]Value)}
}

// Set stores a value under key, overwriting any prior value.
func (s *Stats) Set(key string, v Value) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value stored under key.
func (s *Stats) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the stat names in insertion order.
func (s *Stats) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of stats.
func (s *Stats) Len() int {
	return len(s.keys)
}

// Record is the parsed form of one export file.
type Record struct {
	// Events is the kill/event table (section 1). May be column-only.
	Events Table

	// Weapons is the weapon table (section 2), usually one row.
	Weapons Table

	// Stats holds the key-value stats block (section 3).
	Stats *Stats
}
