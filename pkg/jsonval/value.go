package jsonval

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	InvalidKind Kind = iota
	NullKind
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a single JSON value. Numbers keep the exact literal they were
// parsed from, so re-encoding an untouched Value reproduces the input
// spelling (1920 stays 1920, 1920.0 stays 1920.0). The zero Value is
// invalid; build values with the constructors or Parse.
type Value struct {
	Kind  Kind
	Bool  bool
	Num   json.Number
	Str   string
	Elems []Value
	Obj   *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{Kind: NullKind} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{Kind: BoolKind, Bool: b} }

// String returns a JSON string value.
func String(s string) Value { return Value{Kind: StringKind, Str: s} }

// Number returns a JSON number carrying the given literal verbatim.
func Number(lit json.Number) Value { return Value{Kind: NumberKind, Num: lit} }

// Int returns a JSON number with an integer literal.
func Int(i int64) Value {
	return Value{Kind: NumberKind, Num: json.Number(strconv.FormatInt(i, 10))}
}

// Float returns a JSON number with a float-shaped literal (always contains
// a '.' or exponent). Non-finite inputs are clamped to values the target
// format accepts: NaN becomes 0.0 and infinities become the extreme finite
// doubles.
func Float(f float64) Value {
	switch {
	case math.IsNaN(f):
		f = 0
	case math.IsInf(f, 1):
		f = math.MaxFloat64
	case math.IsInf(f, -1):
		f = -math.MaxFloat64
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return Value{Kind: NumberKind, Num: json.Number(s)}
}

// Array returns a JSON array of the given elements.
func Array(elems ...Value) Value { return Value{Kind: ArrayKind, Elems: elems} }

// IsIntLiteral reports whether a number literal is integer-shaped, i.e.
// spelled without a fraction or exponent.
func IsIntLiteral(lit json.Number) bool {
	return !strings.ContainsAny(string(lit), ".eE")
}

// Float64 returns the numeric value for a NumberKind Value.
func (v Value) Float64() (float64, error) {
	return v.Num.Float64()
}

// Clone returns a deep copy sharing no containers with the receiver.
func (v Value) Clone() Value {
	switch v.Kind {
	case ArrayKind:
		elems := make([]Value, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = e.Clone()
		}
		return Value{Kind: ArrayKind, Elems: elems}
	case ObjectKind:
		return Value{Kind: ObjectKind, Obj: v.Obj.Clone()}
	default:
		return v
	}
}

// Equal reports deep equality. Object members must match in order as well
// as content, and numbers compare by literal, so values that differ only
// in spelling (1 vs 1.0) are not equal.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case BoolKind:
		return a.Bool == b.Bool
	case NumberKind:
		return a.Num == b.Num
	case StringKind:
		return a.Str == b.Str
	case ArrayKind:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		return a.Obj.equal(b.Obj)
	default:
		return true
	}
}

// Object is an ordered set of JSON members. Insertion order is preserved;
// setting an existing key keeps its position.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Len returns the member count.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member names in order. The slice is owned by the
// object and must not be modified.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Get returns the value for key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores a member. An existing key keeps its position; a new key is
// appended.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Delete removes a member if present.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := &Object{
		keys: make([]string, len(o.keys)),
		vals: make(map[string]Value, len(o.vals)),
	}
	copy(c.keys, o.keys)
	for k, v := range o.vals {
		c.vals[k] = v.Clone()
	}
	return c
}

func (o *Object) equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for i, k := range o.Keys() {
		if p.keys[i] != k {
			return false
		}
		a, _ := o.Get(k)
		b, _ := p.Get(k)
		if !Equal(a, b) {
			return false
		}
	}
	return true
}

// Value wraps the object as an ObjectKind Value.
func (o *Object) Value() Value { return Value{Kind: ObjectKind, Obj: o} }
