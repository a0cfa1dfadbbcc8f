package infra_session_cache

import (
	"time"

	"github.com/go-redis/redis"
)

// Driver maps session tokens to user ids. Tokens are minted by the identity
// service; this side only resolves and refreshes them.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Set(token string, userID string, ttl time.Duration) error {
	if err := d.client.Set(d.fullKey(token), userID, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Get returns the user id bound to the token, or "" when the token is
// unknown or expired.
func (d *Driver) Get(token string) (string, error) {
	val, err := d.client.Get(d.fullKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}

	return val, nil
}

// Refresh slides the token's expiry forward on activity.
func (d *Driver) Refresh(token string, ttl time.Duration) error {
	return d.client.Expire(d.fullKey(token), ttl).Err()
}

func (d *Driver) fullKey(token string) string {
	if d.key != "" {
		return d.key + ":" + token
	}
	return token
}
