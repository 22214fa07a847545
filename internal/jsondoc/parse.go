package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
)

// Parse decodes JSON-with-comments data into a document value. Line and
// block comments are stripped first (string literals containing
// comment-like substrings are left intact); object key order is preserved.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after top-level value")
	}

	return value, nil
}

// Marshal serializes a document with two-space indentation, insertion key
// order, and a trailing newline. Serialization is deterministic for a given
// document; sorting keys is the caller's concern (see SortKeys).
func Marshal(v Value) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	// Width stays zero so objects and arrays are never collapsed onto a
	// single line; every rewrite yields the same npm-style expanded layout.
	out := pretty.PrettyOptions(compact, &pretty.Options{Indent: "  "})
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	return out, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	default:
		// string, json.Number, bool, or nil
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		obj.Set(key, value)
	}

	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}

	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}
