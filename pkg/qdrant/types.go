package qdrant

// SearchRequest represents a single similarity search query against the
// configured collection.
type SearchRequest struct {
	// Vector is the query embedding to find similar vectors for.
	Vector []float32

	// TopK is the maximum number of results to return.
	TopK int

	// Filters is optional payload filtering (AND/OR/NOT logic).
	Filters *FilterSet
}

// SearchResult is a single ranked match. The payload comes back converted
// to native Go types so callers stay independent of the SDK's protobuf
// value wrappers.
type SearchResult struct {
	ID      string
	Score   float32
	Payload map[string]any
}

// Point is the input for inserting a vector with its payload.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]any
}
