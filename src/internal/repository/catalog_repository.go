package repository

import (
	"context"
	"fmt"
	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/fixture"
	"kerjabantu-service/src/pkg/databases/mysql"

	"golang.org/x/sync/errgroup"
)

// StaticCatalogRepository serves the built-in fixtures.
type StaticCatalogRepository struct{}

func NewStaticCatalogRepository() *StaticCatalogRepository {
	return &StaticCatalogRepository{}
}

func (r *StaticCatalogRepository) Load(_ context.Context) (*entity.Catalog, error) {
	return fixture.Catalog(), nil
}

// MySQLCatalogRepository reads the catalog tables written by the seeder.
type MySQLCatalogRepository struct {
	DB mysql.DBInterface
}

func NewMySQLCatalogRepository(db mysql.DBInterface) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{
		DB: db,
	}
}

func (r *MySQLCatalogRepository) Load(ctx context.Context) (*entity.Catalog, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var rows CatalogRows
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.SelectContext(gctx, &rows.Users, `
			SELECT id, name, email, phone, avatar, address, wallet_balance,
				subscription, jobs_posted, favorite_kerja_mates
			FROM users
			ORDER BY id`)
	})
	g.Go(func() error {
		return db.SelectContext(gctx, &rows.KerjaMates, `
			SELECT id, name, avatar, verified, rating, skills, completed_jobs,
				address, lat, lng, distance, hourly_rate, about, availability, badges
			FROM kerja_mates
			ORDER BY id`)
	})
	g.Go(func() error {
		return db.SelectContext(gctx, &rows.Reviews, `
			SELECT id, kerja_mate_id, user_name, rating, comment, date
			FROM kerja_mate_reviews
			ORDER BY kerja_mate_id, id`)
	})
	g.Go(func() error {
		return db.SelectContext(gctx, &rows.Jobs, `
			SELECT id, title, description, category, address, lat, lng,
				date_posted, date_needed, time_needed, duration, budget,
				status, user_id, kerja_mate_id, skills
			FROM jobs
			ORDER BY id`)
	})
	g.Go(func() error {
		return db.SelectContext(gctx, &rows.Categories, `
			SELECT id, name, icon, description, popular_tasks, average_hourly_rate
			FROM job_categories
			ORDER BY id`)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("repository: load catalog: %w", err)
	}

	return CatalogFromRows(rows)
}
