package catalog

import (
	"context"

	"github.com/skillpulse/skillpulse/internal/models"
)

// Client defines the interface for content-catalog operations.
// This interface enables testability by allowing mock implementations.
type Client interface {
	FetchQuestions(ctx context.Context, categories []string) ([]models.Question, error)
}

// Ensure HTTPClient implements the interface
var _ Client = (*HTTPClient)(nil)
