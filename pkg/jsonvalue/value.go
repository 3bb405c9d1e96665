// Package jsonvalue holds an order-preserving JSON value model.
//
// encoding/json decodes objects into Go maps, which lose member order. The
// converter must write nested objects back in the order they were read, so
// values are kept as a tagged variant with objects stored as member lists.
package jsonvalue

import "fmt"

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is one JSON value. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind

	Bool bool
	// Num is the number literal exactly as it appeared in the source.
	Num     string
	Str     string
	Items   []Value
	Members []Member
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{Kind: String, Str: s}
}

// NewArray returns an array holding items in order.
func NewArray(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: Array, Items: items}
}

// NewObject returns an object holding members in order.
func NewObject(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{Kind: Object, Members: members}
}

// Get returns the value stored under key. It reports false when v is not an
// object or has no such member.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != Object {
		return Value{}, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the object's member keys in order, or nil for non-objects.
func (v Value) Keys() []string {
	if v.Kind != Object {
		return nil
	}
	keys := make([]string, len(v.Members))
	for i, m := range v.Members {
		keys[i] = m.Key
	}
	return keys
}

// set replaces the value of an existing member in place or appends a new one.
func (v *Value) set(key string, val Value) {
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}
