package jsondoc

import (
	"bytes"
	"encoding/json"
)

// Value is any JSON value handled by this package: *Object, Array, string,
// json.Number, bool, or nil.
type Value interface{}

// Array is an ordered JSON array.
type Array []Value

// Object is a JSON object that preserves key insertion order.
//
// encoding/json re-sorts map keys on marshal, which would break the
// deterministic serialization contract for rewritten config files, so
// objects carry their own key order.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Set stores value under key. New keys are appended to the key order,
// existing keys keep their position.
func (o *Object) Set(key string, value Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key from the object.
func (o *Object) Delete(key string) {
	if _, exists := o.values[key]; !exists {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// MarshalJSON emits the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyData)
		buf.WriteByte(':')

		valueData, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueData)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AsObject reports whether v is an object and returns it.
func AsObject(v Value) (*Object, bool) {
	obj, ok := v.(*Object)
	return obj, ok
}

// AsArray reports whether v is an array and returns it.
func AsArray(v Value) (Array, bool) {
	arr, ok := v.(Array)
	return arr, ok
}

// AsString reports whether v is a string and returns it.
func AsString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
