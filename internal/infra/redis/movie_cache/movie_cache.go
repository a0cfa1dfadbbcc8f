package infra_redis_movie_cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

// Driver keeps catalog metadata warm so repeated logs of the same title
// skip both Postgres and the external catalog.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Get(ctx context.Context, catalogID int64) (model.Movie, bool, error) {
	raw, err := d.client.Get(d.fullKey(catalogID)).Result()
	if err == redis.Nil {
		return model.Movie{}, false, nil
	}
	if err != nil {
		return model.Movie{}, false, err
	}

	var m model.Movie
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return model.Movie{}, false, err
	}

	return m, true, nil
}

func (d *Driver) Set(ctx context.Context, m model.Movie) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}

	if err := d.client.Set(d.fullKey(m.CatalogID), raw, d.ttl).Err(); err != nil {
		return err
	}
	return nil
}

func (d *Driver) fullKey(catalogID int64) string {
	return fmt.Sprintf("%s:%d", d.key, catalogID)
}
