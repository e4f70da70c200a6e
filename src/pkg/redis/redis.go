package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrNoClusterNodes = errors.New("redis: cluster mode without nodes")

// NewClient builds a node or cluster client from cfg without dialing.
func NewClient(cfg Config) (redis.UniversalClient, error) {
	if !cfg.Cluster {
		return redis.NewClient(cfg.Options()), nil
	}
	if len(cfg.Nodes) == 0 {
		return nil, ErrNoClusterNodes
	}
	return redis.NewClusterClient(cfg.ClusterOptions()), nil
}

// Connect builds the client and pings it. The client is closed when the ping
// fails.
func Connect(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr(), err)
	}
	return client, nil
}
