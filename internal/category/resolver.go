package category

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/Sane4ek777/catalog-sync/internal/slug"
)

// Store is categories storage.
type Store interface {
	// CategoryByName returns category with provided name or platform.ErrNotFound.
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	// CategorySlugExists reports whether any category holds provided slug.
	CategorySlugExists(ctx context.Context, slug string) (bool, error)
	// NextCategoryID returns the lowest free category id.
	NextCategoryID(ctx context.Context) (int32, error)
	// InsertCategory inserts category, returning platform.ErrConstraintRace on conflicts.
	InsertCategory(ctx context.Context, category models.Category) error
}

//go:generate mockery --name Store --filename store.go

// Resolver maps category name paths to stored category ids. Names already
// claimed by the feed take precedence over lookups and creation.
type Resolver struct {
	store     Store
	slugs     *slug.Generator
	mu        sync.Mutex
	feedIndex map[string]int32
}

// NewResolver returns new Resolver.
func NewResolver(store Store) *Resolver {
	return &Resolver{
		store:     store,
		slugs:     slug.NewGenerator(slugChecker{store: store}),
		feedIndex: map[string]int32{},
	}
}

// SeedFeedName binds category name to the id it holds after a feed load.
func (r *Resolver) SeedFeedName(name string, id int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.feedIndex[name] = id
}

// Resolve walks path from root to leaf, reusing stored categories by name and
// creating missing ones with the parent set to the previous path element.
// Returns the leaf category id.
func (r *Resolver) Resolve(ctx context.Context, path []string) (int32, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("empty category path: %w", platform.ErrMalformedRecord)
	}

	var parentID *int32
	for _, name := range path {
		id, err := r.resolveOne(ctx, name, parentID)
		if err != nil {
			return 0, err
		}
		parentID = &id
	}

	return *parentID, nil
}

func (r *Resolver) resolveOne(ctx context.Context, name string, parentID *int32) (int32, error) {
	r.mu.Lock()
	id, seeded := r.feedIndex[name]
	r.mu.Unlock()
	if seeded {
		return id, nil
	}

	stored, err := r.store.CategoryByName(ctx, name)
	if err == nil {
		return stored.ID, nil
	}
	if !errors.Is(err, platform.ErrNotFound) {
		return 0, err
	}

	id, err = r.create(ctx, name, parentID)
	if !errors.Is(err, platform.ErrConstraintRace) {
		return id, err
	}

	// Lost a race: either the name was inserted concurrently, or the id or
	// slug got taken. Re-read by name, then retry creation once.
	stored, err = r.store.CategoryByName(ctx, name)
	if err == nil {
		return stored.ID, nil
	}
	if !errors.Is(err, platform.ErrNotFound) {
		return 0, err
	}

	return r.create(ctx, name, parentID)
}

func (r *Resolver) create(ctx context.Context, name string, parentID *int32) (int32, error) {
	id, err := r.store.NextCategoryID(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't pick id for category %q: %w", name, err)
	}

	categorySlug, err := r.slugs.Unique(ctx, name, id)
	if err != nil {
		return 0, fmt.Errorf("can't make slug for category %q: %w", name, err)
	}

	err = r.store.InsertCategory(ctx, models.Category{
		ID:       id,
		Name:     name,
		Slug:     categorySlug,
		ParentID: parentID,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

type slugChecker struct {
	store Store
}

func (c slugChecker) SlugExists(ctx context.Context, slug string) (bool, error) {
	return c.store.CategorySlugExists(ctx, slug)
}
