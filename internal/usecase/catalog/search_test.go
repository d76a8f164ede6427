package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TailorConnectApp/tailor-marketplace/internal/cache"
	domain "github.com/TailorConnectApp/tailor-marketplace/internal/domain/catalog"
	"github.com/TailorConnectApp/tailor-marketplace/internal/models"
)

func newSearchUnderTest(repo *fakeCatalogRepo) *SearchTailors {
	return NewSearchTailors(repo, cache.NewSearchCache(nil, 0))
}

func TestSearch_NeverSurfacesUnverifiedTailors(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.seedVerifiedTailor("t-1", "Mumbai", 4.5)
	unverified := repo.seedVerifiedTailor("t-2", "Mumbai", 5)
	unverified.IsVerified = false

	uc := newSearchUnderTest(repo)

	tailors, err := uc.Execute(context.Background(), domain.SearchParams{})
	require.NoError(t, err)
	require.Len(t, tailors, 1)
	assert.Equal(t, "t-1", tailors[0].ID)
}

func TestSearch_DropsTailorWithUnresolvedUser(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.seedVerifiedTailor("t-1", "Delhi", 4.0)
	orphan := repo.seedVerifiedTailor("t-2", "Delhi", 4.8)
	orphan.User = models.User{}

	uc := newSearchUnderTest(repo)

	tailors, err := uc.Execute(context.Background(), domain.SearchParams{})
	require.NoError(t, err)
	require.Len(t, tailors, 1)
	assert.Equal(t, "t-1", tailors[0].ID)
}

func TestSearch_LocationFilterIsCaseInsensitive(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.seedVerifiedTailor("t-1", "Bengaluru", 4.2)
	repo.seedVerifiedTailor("t-2", "Chennai", 4.9)

	uc := newSearchUnderTest(repo)

	tailors, err := uc.Execute(context.Background(), domain.SearchParams{Location: "bengaluru"})
	require.NoError(t, err)
	require.Len(t, tailors, 1)
	assert.Equal(t, "t-1", tailors[0].ID)
}

func TestSearch_MinRatingIsInclusive(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.seedVerifiedTailor("t-1", "Pune", 4.0)
	repo.seedVerifiedTailor("t-2", "Pune", 3.9)

	uc := newSearchUnderTest(repo)

	tailors, err := uc.Execute(context.Background(), domain.SearchParams{MinRating: 4.0})
	require.NoError(t, err)
	require.Len(t, tailors, 1)
	assert.Equal(t, "t-1", tailors[0].ID)
}

func TestSearch_ServiceTypeFilter(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.seedVerifiedTailor("t-1", "Jaipur", 4.1)
	repo.seedVerifiedTailor("t-2", "Jaipur", 4.6)
	repo.services["svc-1"] = &models.Service{
		ID: "svc-1", TailorID: "t-1",
		ServiceType: models.ServiceRepairs, IsActive: true,
	}

	uc := newSearchUnderTest(repo)

	tailors, err := uc.Execute(context.Background(), domain.SearchParams{ServiceType: models.ServiceRepairs})
	require.NoError(t, err)
	require.Len(t, tailors, 1)
	assert.Equal(t, "t-1", tailors[0].ID)
}

func TestSearchParams_HasFilters(t *testing.T) {
	assert.False(t, domain.SearchParams{}.HasFilters())
	assert.True(t, domain.SearchParams{Location: "Goa"}.HasFilters())
	assert.True(t, domain.SearchParams{ServiceType: "repairs"}.HasFilters())
	assert.True(t, domain.SearchParams{MinRating: 3}.HasFilters())
}
