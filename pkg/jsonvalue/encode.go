package jsonvalue

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const hexDigits = "0123456789abcdef"

// MarshalIndent serializes v with one indent per nesting level. Members are
// separated by ",\n", keys by ": ", empty containers are written as [] and
// {}. Non-ASCII text is written literally; only quotes, backslashes and
// control characters are escaped.
func MarshalIndent(v Value, indent string) ([]byte, error) {
	var b bytes.Buffer
	if err := writeValue(&b, v, indent, 0); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Encode writes the MarshalIndent form of v to w.
func Encode(w io.Writer, v Value, indent string) error {
	data, err := MarshalIndent(v, indent)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeValue(b *bytes.Buffer, v Value, indent string, depth int) error {
	switch v.Kind {
	case Null:
		b.WriteString("null")
	case Bool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		if v.Num == "" {
			return fmt.Errorf("cannot encode empty number literal")
		}
		b.WriteString(v.Num)
	case String:
		writeString(b, v.Str)
	case Array:
		if len(v.Items) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			if err := writeValue(b, item, indent, depth+1); err != nil {
				return err
			}
		}
		newline(b, indent, depth)
		b.WriteByte(']')
	case Object:
		if len(v.Members) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			writeString(b, m.Key)
			b.WriteString(": ")
			if err := writeValue(b, m.Value, indent, depth+1); err != nil {
				return err
			}
		}
		newline(b, indent, depth)
		b.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of %s", v.Kind)
	}
	return nil
}

func newline(b *bytes.Buffer, indent string, depth int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indent, depth))
}

func writeString(b *bytes.Buffer, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
