package movie_resolver

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

var (
	// ErrMetaMissing is what MetaStore reports for a catalog id it has
	// never stored.
	ErrMetaMissing = errors.New("no stored meta")
)

type MetaCache interface {
	Get(ctx context.Context, catalogID int64) (model.Movie, bool, error)
	Set(ctx context.Context, m model.Movie) error
}

type MetaStore interface {
	Upsert(ctx context.Context, m model.Movie) (model.Movie, error)
	ByCatalogID(ctx context.Context, catalogID int64) (model.Movie, error)
}

type Catalog interface {
	MovieByID(ctx context.Context, catalogID int64) (model.Movie, error)
}

// Service turns a catalog id into a stored movie row, going cache, then
// Postgres, then the external catalog, and writing back on the way out.
type Service struct {
	cache   MetaCache
	store   MetaStore
	catalog Catalog
}

func New(
	cache MetaCache,
	store MetaStore,
	catalog Catalog,
) *Service {
	return &Service{
		cache:   cache,
		store:   store,
		catalog: catalog,
	}
}

func (s *Service) Resolve(ctx context.Context, catalogID int64) (model.Movie, error) {
	// Cache trouble is never fatal; a miss just costs a query.
	if m, ok, err := s.cache.Get(ctx, catalogID); err == nil && ok {
		return m, nil
	}

	m, err := s.store.ByCatalogID(ctx, catalogID)
	if err == nil {
		_ = s.cache.Set(ctx, m)
		return m, nil
	}
	if !errors.Is(err, ErrMetaMissing) {
		return model.Movie{}, err
	}

	fetched, err := s.catalog.MovieByID(ctx, catalogID)
	if err != nil {
		return model.Movie{}, err
	}

	fetched.ID = uuid.New()
	stored, err := s.store.Upsert(ctx, fetched)
	if err != nil {
		return model.Movie{}, err
	}

	_ = s.cache.Set(ctx, stored)
	return stored, nil
}
