// Package analyzer computes structural summaries of parsed JSON values:
// type labels, nesting depth, recursive item counts, and the combined
// per-document summary. All functions are pure and total over well-formed
// values; malformed input is rejected earlier, at the parsing boundary.
package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcncl/jsonlens/internal/models"
)

// ArrayItemsKey is the synthetic key used to summarize array elements.
const ArrayItemsKey = "(array items)"

// Classify maps a parsed value to its human-readable type label.
// Non-empty arrays whose elements all share a label become
// "array of <label>"; the composition recurses, so nested uniform arrays
// yield labels like "array of array of integer".
func Classify(value models.Value) string {
	switch v := value.(type) {
	case models.Object:
		return "object"
	case models.Array:
		if len(v) == 0 {
			return "array (empty)"
		}
		first := Classify(v[0])
		for _, item := range v[1:] {
			if Classify(item) != first {
				return "array (mixed types)"
			}
		}
		return "array of " + first
	case string:
		return "string"
	case bool:
		// Checked before the numeric case: a boolean must never be
		// reported as an integer.
		return "boolean"
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return "integer"
		}
		return "number"
	case nil:
		return "null"
	default:
		// Should not occur for values produced by the parser.
		return fmt.Sprintf("%T", value)
	}
}

// Depth returns the maximum nesting depth of a value. Scalars are 0,
// empty containers are 1, and non-empty containers are one more than the
// deepest container child (scalar children are not candidates).
func Depth(value models.Value) int {
	switch v := value.(type) {
	case models.Object:
		deepest := 0
		for _, entry := range v {
			if models.IsContainer(entry.Value) {
				if d := Depth(entry.Value); d > deepest {
					deepest = d
				}
			}
		}
		return 1 + deepest
	case models.Array:
		deepest := 0
		for _, item := range v {
			if models.IsContainer(item) {
				if d := Depth(item); d > deepest {
					deepest = d
				}
			}
		}
		return 1 + deepest
	default:
		return 0
	}
}

// Count returns the total recursive item count: each container
// contributes its own immediate size once, plus the contributions of any
// nested containers. Scalars contribute 0.
func Count(value models.Value) int {
	switch v := value.(type) {
	case models.Object:
		total := len(v)
		for _, entry := range v {
			if models.IsContainer(entry.Value) {
				total += Count(entry.Value)
			}
		}
		return total
	case models.Array:
		total := len(v)
		for _, item := range v {
			if models.IsContainer(item) {
				total += Count(item)
			}
		}
		return total
	default:
		return 0
	}
}

// Summarize computes the full structure summary for a parsed value.
// It never fails: scalars and empty containers produce valid summaries.
func Summarize(value models.Value) models.StructureSummary {
	summary := models.StructureSummary{
		RootType:     Classify(value),
		TopLevelKeys: []models.KeyType{},
		NestingDepth: Depth(value),
		TotalItems:   Count(value),
	}

	switch v := value.(type) {
	case models.Object:
		summary.TopLevelCount = len(v)
		for _, entry := range v {
			summary.TopLevelKeys = append(summary.TopLevelKeys, models.KeyType{
				Key:  entry.Key,
				Type: Classify(entry.Value),
			})
		}
	case models.Array:
		summary.TopLevelCount = len(v)
		if len(v) == 0 {
			summary.TopLevelKeys = append(summary.TopLevelKeys, models.KeyType{
				Key:  ArrayItemsKey,
				Type: "empty",
			})
			break
		}
		// Sample only the first element for array roots.
		firstType := Classify(v[0])
		summary.TopLevelKeys = append(summary.TopLevelKeys, models.KeyType{
			Key:  ArrayItemsKey,
			Type: firstType,
		})
		// For arrays of objects, surface the keys of the first object.
		if obj, ok := v[0].(models.Object); ok && strings.HasPrefix(firstType, "object") {
			for _, entry := range obj {
				summary.TopLevelKeys = append(summary.TopLevelKeys, models.KeyType{
					Key:  fmt.Sprintf("[0].%s", entry.Key),
					Type: Classify(entry.Value),
				})
			}
		}
	}

	return summary
}
