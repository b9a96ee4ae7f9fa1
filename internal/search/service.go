package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/skybook/skybook/internal/models"
)

// ErrInternal marks an unexpected fault inside the search pipeline, as
// opposed to a search that legitimately matched nothing. Callers are
// expected to log it and present an empty result.
var ErrInternal = errors.New("internal search fault")

// Provider produces flights matching a search request. The catalog is the
// production implementation; tests substitute synchronous or faulty ones.
type Provider interface {
	Name() string
	Search(ctx context.Context, req models.SearchRequest) ([]models.Flight, error)
}

// Service runs validated search requests against a provider. Results are
// never cached; identical requests are always recomputed.
type Service struct {
	provider Provider
}

func NewService(p Provider) *Service {
	return &Service{provider: p}
}

// Search returns the matching flights in provider order. A panic inside the
// provider is recovered and reported as ErrInternal rather than propagated.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (results []models.Flight, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("%w: provider %s: %v", ErrInternal, s.provider.Name(), r)
		}
	}()

	results, err = s.provider.Search(ctx, req)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: provider %s: %v", ErrInternal, s.provider.Name(), err)
	}
	return results, err
}
