package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	stderrors "errors"

	"github.com/mcncl/jsonlens/internal/errors"
	"github.com/mcncl/jsonlens/internal/models"
)

func TestParse_SimpleObject(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30, "isStudent": false, "city": null}`
	value, err := Parse(strings.NewReader(jsonStr))

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	expected := models.Object{
		{Key: "name", Value: "John Doe"},
		{Key: "age", Value: json.Number("30")},
		{Key: "isStudent", Value: false},
		{Key: "city", Value: nil},
	}

	actual, ok := value.(models.Object)
	if !ok {
		t.Fatalf("Parse() root is not a models.Object, got %T", value)
	}

	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Parse() root = %v, want %v", actual, expected)
	}
}

func TestParse_KeyOrderPreserved(t *testing.T) {
	// Keys deliberately out of alphabetical order; the parser must keep
	// the document order, not re-sort.
	jsonStr := `{"zebra": 1, "apple": 2, "mango": 3}`
	value, err := ParseString(jsonStr)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	obj, ok := value.(models.Object)
	if !ok {
		t.Fatalf("ParseString() root is not a models.Object, got %T", value)
	}

	wantOrder := []string{"zebra", "apple", "mango"}
	if len(obj) != len(wantOrder) {
		t.Fatalf("ParseString() object has %d entries, want %d", len(obj), len(wantOrder))
	}
	for i, key := range wantOrder {
		if obj[i].Key != key {
			t.Errorf("ParseString() entry %d key = %q, want %q", i, obj[i].Key, key)
		}
	}
}

func TestParse_SimpleArray(t *testing.T) {
	jsonStr := `[1, "test", true, null, 3.14]`
	value, err := Parse(strings.NewReader(jsonStr))

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	expected := models.Array{
		json.Number("1"),
		"test",
		true,
		nil,
		json.Number("3.14"),
	}

	actual, ok := value.(models.Array)
	if !ok {
		t.Fatalf("Parse() root is not a models.Array, got %T", value)
	}

	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Parse() root = %v, want %v", actual, expected)
	}
}

func TestParse_NestedStructures(t *testing.T) {
	jsonStr := `{"user": {"name": "Jane Doe", "id": 123}, "active": true, "tags": ["go", "json"]}`
	value, err := ParseString(jsonStr)

	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	expected := models.Object{
		{Key: "user", Value: models.Object{
			{Key: "name", Value: "Jane Doe"},
			{Key: "id", Value: json.Number("123")},
		}},
		{Key: "active", Value: true},
		{Key: "tags", Value: models.Array{"go", "json"}},
	}

	if !reflect.DeepEqual(value, expected) {
		t.Errorf("ParseString() root = %v, want %v", value, expected)
	}
}

func TestParse_ScalarRoots(t *testing.T) {
	tests := []struct {
		name string
		json string
		want models.Value
	}{
		{"String", `"just a string"`, "just a string"},
		{"Integer", `42`, json.Number("42")},
		{"Float", `3.14`, json.Number("3.14")},
		{"BooleanTrue", `true`, true},
		{"BooleanFalse", `false`, false},
		{"Null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseString(tt.json)
			if err != nil {
				t.Fatalf("ParseString(%q) error = %v, wantErr nil", tt.json, err)
			}
			if !reflect.DeepEqual(value, tt.want) {
				t.Errorf("ParseString(%q) = %v (%T), want %v (%T)", tt.json, value, value, tt.want, tt.want)
			}
		})
	}
}

func TestParse_EmptyContainers(t *testing.T) {
	value, err := ParseString(`{}`)
	if err != nil {
		t.Fatalf("ParseString({}) error = %v", err)
	}
	if obj, ok := value.(models.Object); !ok || len(obj) != 0 {
		t.Errorf("ParseString({}) = %v (%T), want empty models.Object", value, value)
	}

	value, err = ParseString(`[]`)
	if err != nil {
		t.Fatalf("ParseString([]) error = %v", err)
	}
	if arr, ok := value.(models.Array); !ok || len(arr) != 0 {
		t.Errorf("ParseString([]) = %v (%T), want empty models.Array", value, value)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  \n"} {
		_, err := ParseString(input)
		if err == nil {
			t.Fatalf("ParseString(%q) error = nil, want ErrEmptyInput", input)
		}
		if !stderrors.Is(err, errors.ErrEmptyInput) {
			t.Errorf("ParseString(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestParseString_MalformedSyntax(t *testing.T) {
	_, err := ParseString(`{not json`)
	if err == nil {
		t.Fatal("ParseString({not json) error = nil, want MalformedSyntax")
	}
	if !stderrors.Is(err, errors.ErrMalformedSyntax) {
		t.Errorf("ParseString({not json) error = %v, want ErrMalformedSyntax", err)
	}

	var syntaxErr *errors.SyntaxError
	if !stderrors.As(err, &syntaxErr) {
		t.Fatalf("ParseString({not json) error = %v, want *errors.SyntaxError in chain", err)
	}
	if syntaxErr.Line != 1 {
		t.Errorf("SyntaxError.Line = %d, want 1", syntaxErr.Line)
	}
	if syntaxErr.Column < 2 {
		t.Errorf("SyntaxError.Column = %d, want >= 2", syntaxErr.Column)
	}
}

func TestParseString_MalformedSyntaxMultiline(t *testing.T) {
	_, err := ParseString("{\n  \"a\": oops\n}")
	if err == nil {
		t.Fatal("ParseString() error = nil, want MalformedSyntax")
	}

	var syntaxErr *errors.SyntaxError
	if !stderrors.As(err, &syntaxErr) {
		t.Fatalf("error = %v, want *errors.SyntaxError in chain", err)
	}
	if syntaxErr.Line != 2 {
		t.Errorf("SyntaxError.Line = %d, want 2", syntaxErr.Line)
	}
}

func TestParseString_UnterminatedInput(t *testing.T) {
	_, err := ParseString(`{"a": [1, 2`)
	if err == nil {
		t.Fatal("ParseString() error = nil, want MalformedSyntax")
	}
	if !stderrors.Is(err, errors.ErrMalformedSyntax) {
		t.Errorf("ParseString() error = %v, want ErrMalformedSyntax", err)
	}
}

func TestParseString_TrailingData(t *testing.T) {
	_, err := ParseString(`{"a": 1} {"b": 2}`)
	if err == nil {
		t.Fatal("ParseString() error = nil, want ErrMultipleJSON")
	}
	if !stderrors.Is(err, errors.ErrMultipleJSON) {
		t.Errorf("ParseString() error = %v, want ErrMultipleJSON", err)
	}

	// Trailing whitespace after a complete value is fine.
	if _, err := ParseString("{\"a\": 1}  \n"); err != nil {
		t.Errorf("ParseString() with trailing whitespace error = %v, want nil", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "valid.json")
	if err := os.WriteFile(path, []byte(`{"ok": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	value, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}
	expected := models.Object{{Key: "ok", Value: true}}
	if !reflect.DeepEqual(value, expected) {
		t.Errorf("ParseFile() = %v, want %v", value, expected)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	if !stderrors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("ParseFile() error = %v, want ErrFileNotFound", err)
	}
}

func TestParseFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	if !stderrors.Is(err, errors.ErrFileEmpty) {
		t.Errorf("ParseFile() error = %v, want ErrFileEmpty", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("   ")
	if !stderrors.Is(err, errors.ErrInvalidFilePath) {
		t.Errorf("ParseFile() error = %v, want ErrInvalidFilePath", err)
	}
}
