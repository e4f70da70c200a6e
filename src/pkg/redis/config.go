package redis

import (
	"crypto/tls"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config describes one Redis deployment, either a single node or a cluster.
// Sessions and the asynq queue are built from the same value.
type Config struct {
	Cluster  bool
	TLS      bool
	Host     string
	Port     string
	DB       int
	Username string
	Password string
	// Nodes and ClusterPassword apply in cluster mode only.
	Nodes           []string
	ClusterPassword string

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MaxRetries   int
}

// DefaultConfig is a local single node with the pool and timeouts the
// service runs with.
func DefaultConfig() Config {
	return Config{
		Host:         "127.0.0.1",
		Port:         "6379",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   2,
	}
}

// ParseNodes splits a "host:port;host:port" list, dropping blanks.
func ParseNodes(list string) []string {
	var nodes []string
	for _, node := range strings.Split(list, ";") {
		if node = strings.TrimSpace(node); node != "" {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// TLSConfig returns nil when TLS is off.
func (c Config) TLSConfig() *tls.Config {
	if !c.TLS {
		return nil
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}

func (c Config) Options() *redis.Options {
	return &redis.Options{
		Addr:         c.Addr(),
		Username:     c.Username,
		Password:     c.Password,
		DB:           c.DB,
		TLSConfig:    c.TLSConfig(),
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
		PoolSize:     c.PoolSize,
		MaxRetries:   c.MaxRetries,
	}
}

func (c Config) ClusterOptions() *redis.ClusterOptions {
	return &redis.ClusterOptions{
		Addrs:        c.Nodes,
		Username:     c.Username,
		Password:     c.ClusterPassword,
		TLSConfig:    c.TLSConfig(),
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
		PoolSize:     c.PoolSize,
		MaxRetries:   c.MaxRetries,
	}
}
