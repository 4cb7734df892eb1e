package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/jsonlens/internal/errors"
	"github.com/mcncl/jsonlens/internal/models"
)

// Parse converts JSON data from an io.Reader into a models.Value.
// Objects decode into models.Object, which keeps entries in input order;
// numbers decode as json.Number so integer and float lexemes stay apart.
func Parse(reader io.Reader) (models.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a single JSON document from data.
func ParseBytes(data []byte) (models.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewInputError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	// The stock Decode path loses object key order by decoding into Go
	// maps, so values are built from the token stream instead.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // Ensure numbers are read as json.Number

	value, err := decodeValue(dec)
	if err != nil {
		return nil, syntaxFailure(data, err)
	}

	// Check for trailing data after the first JSON value.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, syntaxFailure(data, err)
		}
		return nil, errors.NewParsingError(
			fmt.Sprintf("unexpected %v after first JSON value", tok),
			errors.ErrMultipleJSON,
		)
	}

	return value, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return ParseBytes([]byte(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return ParseBytes(data)
}

// decodeValue reads the next complete JSON value from the token stream.
func decodeValue(dec *json.Decoder) (models.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (models.Value, error) {
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		// Closing delimiters are consumed by decodeObject/decodeArray;
		// the decoder guarantees they are balanced.
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
	// string, json.Number, bool, or nil for JSON null
	return tok, nil
}

func decodeObject(dec *json.Decoder) (models.Object, error) {
	obj := models.Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, models.Entry{Key: key, Value: value})
	}
	// Consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (models.Array, error) {
	arr := models.Array{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// Consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// syntaxFailure maps a decoder error onto the application taxonomy,
// translating the decoder's byte offset into a line and column.
func syntaxFailure(data []byte, err error) error {
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		line, column := position(data, syntaxError.Offset)
		return errors.NewParsingError("invalid JSON", &errors.SyntaxError{
			Msg:    syntaxError.Error(),
			Line:   line,
			Column: column,
		})
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		line, column := position(data, int64(len(data)))
		return errors.NewParsingError("invalid JSON", &errors.SyntaxError{
			Msg:    "unexpected end of JSON input",
			Line:   line,
			Column: column,
		})
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
