package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/graphicoglobal/atelier/pkg/logger"
	"github.com/graphicoglobal/atelier/pkg/telemetry"
	"github.com/graphicoglobal/atelier/services/catalog/domain"
)

const (
	// EmptyDescription is used when the generator answers with no text.
	EmptyDescription = "A refined expression of minimalist art for your digital sanctuary."
	// FallbackDescription is used when generation fails or times out.
	FallbackDescription = "An elegant addition to your premium collection."
)

// DescriptionGenerator turns a prompt into text.
type DescriptionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DescriptionService suggests item descriptions. It never fails: errors and
// empty answers are replaced by fixed fallback sentences.
type DescriptionService struct {
	gen     DescriptionGenerator // nil when no backend is configured
	timeout time.Duration
	metrics *telemetry.CatalogMetrics
	log     logger.Logger
}

// NewDescriptionService returns a DescriptionService. gen may be nil, in which
// case every call returns FallbackDescription.
func NewDescriptionService(gen DescriptionGenerator, timeout time.Duration, metrics *telemetry.CatalogMetrics, log logger.Logger) *DescriptionService {
	return &DescriptionService{gen: gen, timeout: timeout, metrics: metrics, log: log}
}

// BuildPrompt renders the one-sentence description request.
func BuildPrompt(title, category string) string {
	return fmt.Sprintf("Generate a short, elegant, and poetic one-sentence description for a premium mobile wallpaper named %q from the %q collection. Focus on sophistication and minimalist art vibes.", title, category)
}

// Generate returns a description for an item titled title in category.
func (s *DescriptionService) Generate(ctx context.Context, title, category string) string {
	text, err := s.generate(ctx, title, category)
	switch {
	case err != nil:
		s.metrics.Enrichment(ctx, "failed")
		s.log.WarnContext(ctx, "enrichment: using fallback description", "error", err)
		return FallbackDescription
	case text == "":
		s.metrics.Enrichment(ctx, "empty")
		return EmptyDescription
	default:
		s.metrics.Enrichment(ctx, "generated")
		return text
	}
}

func (s *DescriptionService) generate(ctx context.Context, title, category string) (string, error) {
	if s.gen == nil {
		return "", fmt.Errorf("%w: no generator configured", domain.ErrEnrichment)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	text, err := s.gen.Generate(ctx, BuildPrompt(title, category))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrEnrichment, err)
	}
	return strings.TrimSpace(text), nil
}
