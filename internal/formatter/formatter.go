// Package formatter re-serializes a parsed JSON value to canonical
// pretty-printed text, preserving object key order from the input. The
// result is suitable for export and round-trips through the parser.
package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcncl/jsonlens/internal/models"
)

// DefaultIndent is the indentation unit used by Format.
const DefaultIndent = "  "

// Format renders value as indented JSON with two-space indentation.
func Format(value models.Value) (string, error) {
	return FormatIndent(value, DefaultIndent)
}

// FormatIndent renders value as indented JSON using the given indent
// unit. Serialization is a pure function of the value.
func FormatIndent(value models.Value, indent string) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, value, 0, indent); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, value models.Value, level int, indent string) error {
	switch v := value.(type) {
	case models.Object:
		if len(v) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{\n")
		for i, entry := range v {
			writeIndent(b, level+1, indent)
			if err := writeString(b, entry.Key); err != nil {
				return err
			}
			b.WriteString(": ")
			if err := writeValue(b, entry.Value, level+1, indent); err != nil {
				return err
			}
			if i < len(v)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, level, indent)
		b.WriteByte('}')
	case models.Array:
		if len(v) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		for i, item := range v {
			writeIndent(b, level+1, indent)
			if err := writeValue(b, item, level+1, indent); err != nil {
				return err
			}
			if i < len(v)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, level, indent)
		b.WriteByte(']')
	case string:
		return writeString(b, v)
	case json.Number:
		b.WriteString(v.String())
	case bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case nil:
		b.WriteString("null")
	default:
		return fmt.Errorf("cannot serialize value of type %T", value)
	}
	return nil
}

// writeString emits s as a JSON string, reusing the standard library's
// escaping rules.
func writeString(b *strings.Builder, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(encoded)
	return nil
}

func writeIndent(b *strings.Builder, level int, indent string) {
	for i := 0; i < level; i++ {
		b.WriteString(indent)
	}
}
