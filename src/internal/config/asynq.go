package config

import (
	"context"

	"kerjabantu-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

// NewAsynqRedisOpt reuses the redis.* keys so tasks and sessions share a
// deployment.
func NewAsynqRedisOpt(v *viper.Viper) asynq.RedisConnOpt {
	cfg := RedisConfig(v)
	if cfg.Cluster {
		return asynq.RedisClusterClientOpt{
			Addrs:     cfg.Nodes,
			Password:  cfg.ClusterPassword,
			TLSConfig: cfg.TLSConfig(),
		}
	}
	return asynq.RedisClientOpt{
		Addr:      cfg.Addr(),
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: cfg.TLSConfig(),
	}
}

func NewAsynqClient(v *viper.Viper) *asynq.Client {
	if !v.GetBool("asynq.enabled") {
		return nil
	}
	return asynq.NewClient(NewAsynqRedisOpt(v))
}

func NewAsynqServer(v *viper.Viper, logger log.Log) *asynq.Server {
	if !v.GetBool("asynq.enabled") {
		return nil
	}
	return asynq.NewServer(NewAsynqRedisOpt(v), asynq.Config{
		Concurrency: v.GetInt("asynq.concurrency"),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("asynq", err.Error(), task.Type(), string(task.Payload()))
		}),
	})
}
