package normalizer

import (
	"fmt"

	"wikiscraper/internal/models"
)

// Processor handles validation and transformation of raw articles.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process converts a raw fetched page into a normalized article.
func (p *Processor) Process(raw *models.RawArticle, language string) (*models.Article, error) {
	if err := p.validator.Validate(raw); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return p.transformer.Transform(raw, language), nil
}
