// Package value implements the response value model: a small tagged
// union mirroring GraphQL's JSON-like result shape, with an Object
// variant that preserves first-seen field order instead of falling
// back to Go's unordered map or encoding/json's alphabetical key sort.
package value

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Value is implemented by every response-value variant: Null, Int,
// Float, String, Boolean, List and *Object.
type Value interface {
	isValue()
}

// Null represents a JSON null, either because a field has no value or
// because a non-null violation propagated to this position.
type Null struct{}

// Int is a GraphQL Int leaf value.
type Int int32

// Float is a GraphQL Float leaf value.
type Float float64

// String is a GraphQL String/ID/Enum leaf value.
type String string

// Boolean is a GraphQL Boolean leaf value.
type Boolean bool

// List is an ordered sequence of Values, e.g. the result of a list field.
type List []Value

func (Null) isValue()    {}
func (Int) isValue()     {}
func (Float) isValue()   {}
func (String) isValue()  {}
func (Boolean) isValue() {}
func (List) isValue()    {}

// Object is an ordered mapping from response key (field alias, or
// field name if unaliased) to Value. Key order equals the order keys
// were first encountered during selection-set flattening, per the
// response-shape invariant.
type Object struct {
	keys   []string
	values map[string]Value
}

func (*Object) isValue() {}

// NewObject returns an empty, ready-to-use ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set assigns key to v, appending key to the order if it hasn't been
// seen before, or overwriting the stored value in place if it has.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key, and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the object's keys in first-seen order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// MarshalJSON renders the object preserving key order, which
// encoding/json's map handling cannot do.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil || o.keys == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	for i, k := range o.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf = append(buf, vb...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// MarshalJSON for List is the standard slice marshal, provided
// explicitly so List and Object share the same jsoniter config.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 64)
	buf = append(buf, '[')
	for i, v := range l {
		if i > 0 {
			buf = append(buf, ',')
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf = append(buf, vb...)
	}
	buf = append(buf, ']')
	return buf, nil
}

// MarshalJSON for Null always renders the JSON null literal.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// FromGo converts a plain Go value (as returned by a resolver that
// doesn't build Value directly) into the Value sum type. Maps convert
// to Object in the iteration order Go happens to give them; callers
// that need deterministic key order should build an *Object directly.
func FromGo(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case bool:
		return Boolean(v)
	case string:
		return String(v)
	case int:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(int32(v))
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case []any:
		l := make(List, len(v))
		for i, e := range v {
			l[i] = FromGo(e)
		}
		return l
	case map[string]any:
		o := NewObject()
		for k, e := range v {
			o.Set(k, FromGo(e))
		}
		return o
	default:
		return Null{}
	}
}

// ToGo converts a Value back into plain Go data (map[string]any,
// []any, and leaf types), for hosts or tests that want to compare
// against ordinary Go literals. Object key order is lost in this
// direction since map[string]any cannot represent it. An argument that
// is not a Value converts to nil.
func ToGo(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case Null:
		return nil
	case Int:
		return int(v)
	case Float:
		return float64(v)
	case String:
		return string(v)
	case Boolean:
		return bool(v)
	case List:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ToGo(e)
		}
		return out
	case *Object:
		out := make(map[string]any, v.Len())
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			out[k] = ToGo(val)
		}
		return out
	default:
		return nil
	}
}
