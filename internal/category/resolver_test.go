package category_test

import (
	"context"
	"testing"

	"github.com/Sane4ek777/catalog-sync/internal/category"
	"github.com/Sane4ek777/catalog-sync/internal/category/mocks"
	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitResolveEmptyPath(t *testing.T) {
	t.Parallel()

	resolver := category.NewResolver(mocks.NewStore(t))

	_, err := resolver.Resolve(context.TODO(), nil)

	assert.ErrorIs(t, err, platform.ErrMalformedRecord, "should reject empty path")
}

func TestUnitResolveSeededName(t *testing.T) {
	t.Parallel()

	resolver := category.NewResolver(mocks.NewStore(t))
	resolver.SeedFeedName("Инструменты", 5)

	id, err := resolver.Resolve(context.TODO(), []string{"Инструменты"})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(5), id, "seeded name should win without storage lookups")
}

func TestUnitResolveStoredName(t *testing.T) {
	t.Parallel()

	store := mocks.NewStore(t)
	store.On("CategoryByName", mock.Anything, "Инструменты").
		Return(&models.Category{ID: 7, Name: "Инструменты", Slug: "instrumenty"}, nil).
		Once()

	resolver := category.NewResolver(store)

	id, err := resolver.Resolve(context.TODO(), []string{"Инструменты"})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(7), id, "stored name should be reused")
}

func TestUnitResolveCreatesMissing(t *testing.T) {
	t.Parallel()

	store := mocks.NewStore(t)
	store.On("CategoryByName", mock.Anything, "Инструменты").
		Return(&models.Category{ID: 1, Name: "Инструменты", Slug: "instrumenty"}, nil).
		Once()
	store.On("CategoryByName", mock.Anything, "Дрели").
		Return(nil, platform.ErrNotFound).
		Once()
	store.On("NextCategoryID", mock.Anything).Return(int32(2), nil).Once()
	store.On("CategorySlugExists", mock.Anything, "dreli").Return(false, nil).Once()
	store.On("InsertCategory", mock.Anything, mock.MatchedBy(func(c models.Category) bool {
		return c.ID == 2 && c.Name == "Дрели" && c.Slug == "dreli" &&
			c.ParentID != nil && *c.ParentID == 1
	})).Return(nil).Once()

	resolver := category.NewResolver(store)

	id, err := resolver.Resolve(context.TODO(), []string{"Инструменты", "Дрели"})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(2), id, "missing leaf should be created under stored parent")
}

func TestUnitResolveLostRaceRereadsByName(t *testing.T) {
	t.Parallel()

	store := mocks.NewStore(t)
	store.On("CategoryByName", mock.Anything, "Сад").
		Return(nil, platform.ErrNotFound).
		Once()
	store.On("NextCategoryID", mock.Anything).Return(int32(3), nil).Once()
	store.On("CategorySlugExists", mock.Anything, "sad").Return(false, nil).Once()
	store.On("InsertCategory", mock.Anything, mock.Anything).
		Return(platform.ErrConstraintRace).
		Once()
	store.On("CategoryByName", mock.Anything, "Сад").
		Return(&models.Category{ID: 9, Name: "Сад", Slug: "sad"}, nil).
		Once()

	resolver := category.NewResolver(store)

	id, err := resolver.Resolve(context.TODO(), []string{"Сад"})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(9), id, "concurrently inserted name should be reused")
}

func TestUnitResolveLostRaceRetriesCreation(t *testing.T) {
	t.Parallel()

	store := mocks.NewStore(t)
	store.On("CategoryByName", mock.Anything, "Сад").
		Return(nil, platform.ErrNotFound).
		Twice()
	store.On("NextCategoryID", mock.Anything).Return(int32(3), nil).Once()
	store.On("CategorySlugExists", mock.Anything, "sad").Return(false, nil).Once()
	store.On("InsertCategory", mock.Anything, mock.MatchedBy(func(c models.Category) bool {
		return c.ID == 3 && c.Slug == "sad"
	})).Return(platform.ErrConstraintRace).Once()
	store.On("NextCategoryID", mock.Anything).Return(int32(4), nil).Once()
	store.On("CategorySlugExists", mock.Anything, "sad-1").Return(false, nil).Once()
	store.On("InsertCategory", mock.Anything, mock.MatchedBy(func(c models.Category) bool {
		return c.ID == 4 && c.Slug == "sad-1"
	})).Return(nil).Once()

	resolver := category.NewResolver(store)

	id, err := resolver.Resolve(context.TODO(), []string{"Сад"})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int32(4), id, "id race should be retried with a fresh id")
}
