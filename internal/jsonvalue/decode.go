package jsonvalue

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a single JSON value from r, preserving object member order.
// Numbers are kept as json.Number so integers and floats round-trip
// exactly; use Number().Float64()/Int64() to inspect them.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	v, err := decodeValue(dec, tok)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("jsonvalue: trailing data after JSON value")
	}

	return v, nil
}

func decodeValue(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("jsonvalue: unexpected delimiter %q", t)
		}
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("jsonvalue: unexpected token %v (%T)", tok, tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return Object(members), nil
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonvalue: object key is not a string: %v", tok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		val, err := decodeValue(dec, valTok)
		if err != nil {
			return Value{}, err
		}

		members = append(members, Member{Key: key, Value: val})
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Array(items), nil
		}

		val, err := decodeValue(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}
}
