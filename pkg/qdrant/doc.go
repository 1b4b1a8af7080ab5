// Package qdrant wraps the official Qdrant Go client with the operations
// this service needs: idempotent collection bootstrap, batched upserts and
// filtered similarity search.
//
// # Overview
//
// The wrapper hides SDK details (protobuf value wrappers, point-id oneofs,
// filter construction) behind plain Go types:
//
//	client, err := qdrant.NewClient(cfg, log)
//	results, err := client.Search(ctx, qdrant.SearchRequest{
//	    Vector: queryVector,
//	    TopK:   8,
//	    Filters: &qdrant.FilterSet{
//	        Must: &qdrant.ConditionSet{Conditions: []qdrant.FilterCondition{
//	            qdrant.TextContainsCondition{Key: "source", Text: "manual"},
//	        }},
//	    },
//	})
//
// Results carry payloads converted to map[string]any, so callers never
// touch qdrant.Value.
//
// # Collection bootstrap
//
// EnsureCollection creates the configured collection with cosine distance
// and the configured vector size when it does not exist yet. The FXModule
// runs it on startup, so a fresh Qdrant instance is usable without a
// separate provisioning step. The vector size must match the embedding
// model's dimension; that pairing is deployment configuration.
//
// The index is advisory: neither client construction nor the startup
// bootstrap fails the application when Qdrant is unreachable. Callers see
// per-request search errors instead and degrade accordingly.
//
// # Configuration
//
// NewConfig reads QDRANT_ENDPOINT, QDRANT_PORT, QDRANT_API_KEY,
// QDRANT_COLLECTION, QDRANT_VECTOR_SIZE, QDRANT_TIMEOUT_SECONDS and
// QDRANT_CHECK_COMPATIBILITY, with defaults from DefaultConfig.
package qdrant
