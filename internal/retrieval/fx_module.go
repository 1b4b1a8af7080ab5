package retrieval

import (
	"go.uber.org/fx"

	"github.com/guidesmith/guidesmith/pkg/embedding"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
	"github.com/guidesmith/guidesmith/pkg/qdrant"
)

// FXModule wires the retriever against the embedding client and the Qdrant
// client.
var FXModule = fx.Module("retrieval",
	fx.Provide(
		func(emb *embedding.Client, qc *qdrant.Client, m *metrics.Metrics, log *logger.Logger) *Retriever {
			return NewRetriever(emb, qc, m, log)
		},
	),
)
