package catalog

import (
	"context"

	"github.com/TailorConnectApp/tailor-marketplace/internal/cache"
	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

// SearchTailors is the public catalog search: verified tailors only,
// sorted by rating descending.
type SearchTailors struct {
	repo        domain.Repository
	searchCache *cache.SearchCache
}

func NewSearchTailors(
	repo domain.Repository,
	searchCache *cache.SearchCache,
) *SearchTailors {
	return &SearchTailors{
		repo:        repo,
		searchCache: searchCache,
	}
}

func (uc *SearchTailors) Execute(
	ctx context.Context,
	params domain.SearchParams,
) ([]models.Tailor, error) {

	cacheable := !params.HasFilters()
	if cacheable {
		if tailors, ok := uc.searchCache.Get(ctx); ok {
			return tailors, nil
		}
	}

	rows, err := uc.repo.SearchTailors(ctx, params)
	if err != nil {
		return nil, err
	}

	// Defensive join-integrity pass: a tailor whose linked user cannot
	// be resolved is dropped, never surfaced half-populated. The
	// verified check is belt and braces on top of the query.
	tailors := make([]models.Tailor, 0, len(rows))
	for _, t := range rows {
		if !t.IsVerified || t.User.ID == "" {
			continue
		}
		tailors = append(tailors, t)
	}

	if cacheable {
		uc.searchCache.Set(ctx, tailors)
	}

	return tailors, nil
}
