package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const roleTTL = 1 * time.Hour

// RoleCache guarda o último papel conhecido de cada e-mail no Redis.
// Serve de fallback quando a consulta aos convites demora ou falha.
type RoleCache struct {
	redis *redis.Client
}

func NewRoleCache(rdb *redis.Client) *RoleCache {
	return &RoleCache{redis: rdb}
}

func roleKey(email string) string {
	return "papel:" + email
}

// Get devolve o papel em cache, se houver.
func (c *RoleCache) Get(ctx context.Context, email string) (string, bool) {
	role, err := c.redis.Get(ctx, roleKey(email)).Result()
	if err != nil {
		return "", false
	}
	return role, true
}

// Set grava o papel com TTL de 1 hora.
func (c *RoleCache) Set(ctx context.Context, email, role string) {
	c.redis.Set(ctx, roleKey(email), role, roleTTL)
}
