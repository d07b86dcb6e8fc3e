package jsonvalue

import (
	"encoding/json"
	"sort"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed JSON tree.
// The zero Value is JSON null.
type Value struct {
	kind   Kind
	b      bool
	text   string // string contents or number literal
	items  []Value
	object *Object
}

// Object keeps members in first-seen key order.
// A repeated key keeps its first position and takes the last value.
type Object struct {
	keys    []string
	members map[string]Value
}

func Null() Value                { return Value{} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func Number(n json.Number) Value { return Value{kind: KindNumber, text: n.String()} }
func String(s string) Value      { return Value{kind: KindString, text: s} }

func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// ObjectValue wraps obj as a Value. A nil obj yields an empty object.
func ObjectValue(obj *Object) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: KindObject, object: obj}
}

// EmptyObject is the default returned by lenient lookups
func EmptyObject() Value {
	return ObjectValue(nil)
}

func NewObject() *Object {
	return &Object{members: make(map[string]Value)}
}

// Set adds or replaces a member
func (o *Object) Set(key string, v Value) {
	if _, exists := o.members[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.members[key] = v
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.members[key]
	return v, ok
}

// Keys returns member names in insertion order
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

func (v Value) Kind() Kind { return v.kind }

// Has reports whether v is an object containing key
func (v Value) Has(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.object.Get(key)
	return ok
}

// Get returns the member named key.
// Missing members and non-object receivers yield an empty object, never an error.
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return EmptyObject()
	}
	member, ok := v.object.Get(key)
	if !ok {
		return EmptyObject()
	}
	return member
}

// SortedKeys returns the member names ordered by code point.
// Non-objects have no keys.
func (v Value) SortedKeys() []string {
	if v.kind != KindObject {
		return []string{}
	}
	keys := v.object.Keys()
	// byte order of UTF-8 matches code point order
	sort.Strings(keys)
	return keys
}
