package models

import "github.com/calumari/jwalk"

// Value is a generic type to represent any parsed JSON value.
// This can be a string, json.Number, boolean, nil, Object, or Array.
type Value = any

// Object represents a JSON object as an ordered sequence of key-value
// entries. Key order matches the input document, which a plain Go map
// cannot guarantee.
type Object = jwalk.D

// Entry is a single key-value pair within an Object.
type Entry = jwalk.E

// Array represents a JSON array, which is a slice of Values.
type Array = jwalk.A

// KeyType pairs a top-level key with the type label of its value.
type KeyType struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

// StructureSummary describes the shape of a parsed JSON document.
// It is created fresh per analysis and never mutated afterwards.
type StructureSummary struct {
	// RootType is the type label of the root value.
	RootType string `json:"root_type"`
	// TopLevelCount is the number of entries or elements at the root,
	// zero for scalar roots.
	TopLevelCount int `json:"top_level_count"`
	// TopLevelKeys maps each top-level key to its type label, in input
	// order. For arrays it holds the sampled "(array items)" entry and,
	// when the first element is an object, one "[0].<key>" entry per key.
	TopLevelKeys []KeyType `json:"top_level_keys"`
	// NestingDepth is the longest container-within-container chain from
	// the root; zero iff the root is a scalar.
	NestingDepth int `json:"nesting_depth"`
	// TotalItems is the sum over every container node of its immediate
	// entry or element count.
	TotalItems int `json:"total_items"`
}

// IsContainer reports whether v is an Object or Array, as opposed to a
// scalar (string, number, boolean, null).
func IsContainer(v Value) bool {
	switch v.(type) {
	case Object, Array:
		return true
	default:
		return false
	}
}
