package pipeline

import (
	"context"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/rag/catalog"
	ragcontext "sales-assistant-bot/pkg/rag/context"
	"sales-assistant-bot/pkg/rag/ranker"
	"sales-assistant-bot/pkg/rag/response"
	"sales-assistant-bot/pkg/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type ProductSearcher interface {
	Search(ctx context.Context, query string) catalog.Result
}

type DocumentSource interface {
	Load() (string, error)
}

type AnswerGenerator interface {
	Generate(ctx context.Context, query string, comp ragcontext.Composition) response.Answer
}

type Config struct {
	ChunkSize    int
	ChunkOverlap int
	TopChunks    int
}

func DefaultConfig() Config {
	return Config{
		ChunkSize:    utils.DefaultChunkSize,
		ChunkOverlap: utils.DefaultChunkOverlap,
		TopChunks:    ranker.DefaultTopN,
	}
}

// QueryPipeline answers one catalog question: product search and document
// ranking feed the composer, and the generator writes the reply.
type QueryPipeline struct {
	searcher  ProductSearcher
	documents DocumentSource
	generator AnswerGenerator
	config    Config
	logger    logger.ILogger
	tracer    trace.Tracer
}

// NewQueryPipeline wires the pipeline. documents may be nil when no catalog
// file is configured.
func NewQueryPipeline(
	searcher ProductSearcher,
	documents DocumentSource,
	generator AnswerGenerator,
	config Config,
	log logger.ILogger,
) *QueryPipeline {
	return &QueryPipeline{
		searcher:  searcher,
		documents: documents,
		generator: generator,
		config:    config,
		logger:    log,
		tracer:    otel.Tracer("sales-assistant-bot/pipeline"),
	}
}

func (p *QueryPipeline) Answer(ctx context.Context, query string) response.Answer {
	ctx, span := p.tracer.Start(ctx, "QueryPipeline.Answer")
	defer span.End()

	dbResult := p.searchProducts(ctx, query)
	chunks := p.rankDocument(ctx, query)

	comp := ragcontext.Compose(dbResult, chunks)
	span.SetAttributes(
		attribute.Int("pipeline.products", len(dbResult.Products)),
		attribute.Int("pipeline.chunks", len(chunks)),
		attribute.Int("pipeline.media", len(comp.Media)),
	)

	if comp.Empty {
		p.logger.Info("QueryPipeline", "No context found for query", map[string]interface{}{
			"query":      query,
			"db_message": dbResult.Message,
		})
		return response.Answer{Text: ragcontext.NoInformation}
	}

	_, genSpan := p.tracer.Start(ctx, "QueryPipeline.Generate")
	answer := p.generator.Generate(ctx, query, comp)
	genSpan.End()

	return answer
}

func (p *QueryPipeline) searchProducts(ctx context.Context, query string) catalog.Result {
	ctx, span := p.tracer.Start(ctx, "QueryPipeline.SearchProducts")
	defer span.End()

	result := p.searcher.Search(ctx, query)
	span.SetAttributes(
		attribute.Bool("catalog.success", result.Success),
		attribute.String("catalog.strategy", result.Strategy),
	)
	p.logger.Info("QueryPipeline", "Database search finished", map[string]interface{}{
		"success":  result.Success,
		"message":  result.Message,
		"strategy": result.Strategy,
	})
	return result
}

// rankDocument degrades to no chunks on any document problem.
func (p *QueryPipeline) rankDocument(ctx context.Context, query string) []string {
	if p.documents == nil {
		return nil
	}

	_, span := p.tracer.Start(ctx, "QueryPipeline.RankDocument")
	defer span.End()

	text, err := p.documents.Load()
	if err != nil {
		p.logger.Warn("QueryPipeline", "Catalog document unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	chunks := utils.SplitText(text, p.config.ChunkSize, p.config.ChunkOverlap)
	if len(chunks) == 0 {
		p.logger.Warn("QueryPipeline", "Catalog document has no text", nil)
		return nil
	}

	relevant := ranker.RankChunks(chunks, query, p.config.TopChunks)
	span.SetAttributes(attribute.Int("document.chunks", len(chunks)))
	p.logger.Debug("QueryPipeline", "Catalog sections selected", map[string]interface{}{
		"total":    len(chunks),
		"selected": len(relevant),
	})
	return relevant
}
