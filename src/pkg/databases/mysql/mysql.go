package mysql

import (
	"context"
	"fmt"
	"kerjabantu-service/src/pkg/log"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type connection struct {
	db *sqlx.DB
}

func (c *connection) GetDB() (*sqlx.DB, error) {
	if c.db == nil {
		return nil, fmt.Errorf("mysql: connection is not initialized")
	}
	return c.db, nil
}

func (c *connection) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// DSN builds the driver DSN from database.mysql.* keys.
func DSN(v *viper.Viper) string {
	cfg := driver.NewConfig()
	cfg.User = v.GetString("database.mysql.user")
	cfg.Passwd = v.GetString("database.mysql.password")
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", v.GetString("database.mysql.host"), v.GetInt("database.mysql.port"))
	cfg.DBName = v.GetString("database.mysql.name")
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	db, err := sqlx.Open("mysql", DSN(v))
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}
	db.SetMaxOpenConns(v.GetInt("database.mysql.max_open_conns"))
	db.SetMaxIdleConns(v.GetInt("database.mysql.max_idle_conns"))
	db.SetConnMaxLifetime(v.GetDuration("database.mysql.conn_max_lifetime"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql: ping: %w", err)
	}

	logger.Info("mysql", "connected", "InitConnection", v.GetString("database.mysql.host"))
	return &connection{db: db}, nil
}

// NewFromDB wraps an existing handle, mostly for tests.
func NewFromDB(db *sqlx.DB) DBInterface {
	return &connection{db: db}
}
