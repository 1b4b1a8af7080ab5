// Package embedding provides a high-level client for computing text
// embeddings through any OpenAI-compatible /embeddings endpoint.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// HTTP details, endpoint paths and authentication:
//
//	client, err := embedding.NewClient(cfg)
//	vector, err := client.Embed(ctx, "how do I replace the filter?")
//
// Batch requests go through CreateEmbeddings. Vectors come back as
// []float32, ready to hand to the vector index without conversion.
//
// # Configuration
//
// Configuration is sourced from environment variables by NewConfig:
//
//   - EMBEDDING_ENDPOINT — base URL (default "https://api.openai.com/v1")
//   - EMBEDDING_API_KEY — bearer token (falls back to OPENAI_API_KEY)
//   - EMBEDDING_MODEL — model id (default "text-embedding-3-small")
//   - EMBEDDING_HTTP_TIMEOUT_SECONDS — request timeout (default 30)
//
// The model configured here must be the model the index was populated
// with. Query-time and ingest-time vectors from different models live in
// the same space only by accident; retrieval degrades silently when they
// diverge, so deployments pin EMBEDDING_MODEL alongside the index.
//
// # Dependency Injection (Fx)
//
// embedding.FXModule supplies *Config and *Client and registers a shutdown
// hook that releases HTTP resources.
package embedding
