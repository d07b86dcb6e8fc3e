package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	ErrEmptyDocument = errors.New("empty JSON document")
	ErrTrailingData  = errors.New("unexpected data after top-level JSON value")
	ErrInvalidUTF8   = errors.New("JSON document is not valid UTF-8")
)

// Decode reads exactly one JSON value from r
func Decode(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, err
	}
	return Parse(data)
}

// Parse decodes exactly one JSON value from data.
// Invalid UTF-8 is an error, never replaced with U+FFFD.
func Parse(data []byte) (Value, error) {
	if !utf8.Valid(data) {
		return Value{}, ErrInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return Value{}, ErrEmptyDocument
	}
	if err != nil {
		return Value{}, err
	}

	v, err := decodeToken(dec, tok)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return Value{}, err
		}
		return Value{}, ErrTrailingData
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, unexpectedEOF(err)
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", keyTok)
		}

		member, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, member)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, unexpectedEOF(err)
	}
	return ObjectValue(obj), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, unexpectedEOF(err)
	}
	return Array(items...), nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
