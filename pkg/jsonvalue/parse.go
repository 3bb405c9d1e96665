package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/buger/jsonparser"
)

// ErrSyntax is returned when input is not a single well-formed JSON value.
var ErrSyntax = errors.New("invalid JSON")

// Parse decodes data into a Value, keeping object members in source order.
// When a key repeats within one object, the member keeps the position of its
// first occurrence and the value of its last.
func Parse(data []byte) (Value, error) {
	if !utf8.Valid(data) {
		return Value{}, fmt.Errorf("%w: input is not valid UTF-8", ErrSyntax)
	}
	// jsonparser is lenient about trailing data and malformed nested values,
	// so the document is checked strictly before it is walked.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	top, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return decode(top, typ)
}

func decode(raw []byte, typ jsonparser.ValueType) (Value, error) {
	switch typ {
	case jsonparser.Null:
		return Value{Kind: Null}, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return Value{Kind: Bool, Bool: b}, nil

	case jsonparser.Number:
		return Value{Kind: Number, Num: string(raw)}, nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return NewString(s), nil

	case jsonparser.Array:
		items := []Value{}
		var walkErr error
		_, err := jsonparser.ArrayEach(raw, func(item []byte, itemType jsonparser.ValueType, _ int, err error) {
			if walkErr != nil {
				return
			}
			if err != nil {
				walkErr = fmt.Errorf("%w: %v", ErrSyntax, err)
				return
			}
			v, err := decode(item, itemType)
			if err != nil {
				walkErr = err
				return
			}
			items = append(items, v)
		})
		if walkErr != nil {
			return Value{}, walkErr
		}
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return NewArray(items...), nil

	case jsonparser.Object:
		obj := NewObject()
		err := jsonparser.ObjectEach(raw, func(key, item []byte, itemType jsonparser.ValueType, _ int) error {
			v, err := decode(item, itemType)
			if err != nil {
				return err
			}
			obj.set(string(key), v)
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrSyntax) {
				return Value{}, err
			}
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return obj, nil

	default:
		return Value{}, fmt.Errorf("%w: unexpected token %q", ErrSyntax, raw)
	}
}
