package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"kerjabantu-service/src/internal/entity"
)

// Row types map the catalog tables. The db tags serve sqlx reads, the gorm
// tags serve the seeder's migrations. List columns hold JSON arrays.

type UserRow struct {
	ID                 string `db:"id" gorm:"primaryKey;size:64"`
	Name               string `db:"name" gorm:"size:120;not null"`
	Email              string `db:"email" gorm:"size:160;uniqueIndex"`
	Phone              string `db:"phone" gorm:"size:32"`
	Avatar             string `db:"avatar" gorm:"size:255"`
	Address            string `db:"address" gorm:"size:255"`
	WalletBalance      int64  `db:"wallet_balance" gorm:"not null;default:0"`
	Subscription       string `db:"subscription" gorm:"size:16;not null;default:none"`
	JobsPosted         string `db:"jobs_posted" gorm:"type:json"`
	FavoriteKerjaMates string `db:"favorite_kerja_mates" gorm:"type:json"`
}

func (UserRow) TableName() string { return "users" }

type KerjaMateRow struct {
	ID            string  `db:"id" gorm:"primaryKey;size:32"`
	Name          string  `db:"name" gorm:"size:120;not null"`
	Avatar        string  `db:"avatar" gorm:"size:255"`
	Verified      bool    `db:"verified"`
	Rating        float64 `db:"rating"`
	Skills        string  `db:"skills" gorm:"type:json"`
	CompletedJobs int     `db:"completed_jobs"`
	Address       string  `db:"address" gorm:"size:255"`
	Lat           float64 `db:"lat"`
	Lng           float64 `db:"lng"`
	Distance      float64 `db:"distance"`
	HourlyRate    int64   `db:"hourly_rate"`
	About         string  `db:"about" gorm:"type:text"`
	Availability  bool    `db:"availability"`
	Badges        string  `db:"badges" gorm:"type:json"`
}

func (KerjaMateRow) TableName() string { return "kerja_mates" }

type ReviewRow struct {
	ID          string  `db:"id" gorm:"primaryKey;size:32"`
	KerjaMateID string  `db:"kerja_mate_id" gorm:"size:32;index;not null"`
	UserName    string  `db:"user_name" gorm:"size:120"`
	Rating      float64 `db:"rating"`
	Comment     string  `db:"comment" gorm:"type:text"`
	Date        string  `db:"date" gorm:"size:10"`
}

func (ReviewRow) TableName() string { return "kerja_mate_reviews" }

type JobRow struct {
	ID          string         `db:"id" gorm:"primaryKey;size:32"`
	Title       string         `db:"title" gorm:"size:200;not null"`
	Description string         `db:"description" gorm:"type:text"`
	Category    string         `db:"category" gorm:"size:64;index"`
	Address     string         `db:"address" gorm:"size:255"`
	Lat         float64        `db:"lat"`
	Lng         float64        `db:"lng"`
	DatePosted  string         `db:"date_posted" gorm:"size:10"`
	DateNeeded  string         `db:"date_needed" gorm:"size:10"`
	TimeNeeded  string         `db:"time_needed" gorm:"size:5"`
	Duration    int            `db:"duration"`
	Budget      int64          `db:"budget"`
	Status      string         `db:"status" gorm:"size:16;index"`
	UserID      string         `db:"user_id" gorm:"size:64;index"`
	KerjaMateID sql.NullString `db:"kerja_mate_id" gorm:"size:32"`
	Skills      string         `db:"skills" gorm:"type:json"`
}

func (JobRow) TableName() string { return "jobs" }

type CategoryRow struct {
	ID                string `db:"id" gorm:"primaryKey;size:32"`
	Name              string `db:"name" gorm:"size:64;not null"`
	Icon              string `db:"icon" gorm:"size:32"`
	Description       string `db:"description" gorm:"size:255"`
	PopularTasks      string `db:"popular_tasks" gorm:"type:json"`
	AverageHourlyRate int64  `db:"average_hourly_rate"`
}

func (CategoryRow) TableName() string { return "job_categories" }

// CatalogRows is the row form of an entity.Catalog.
type CatalogRows struct {
	Users      []UserRow
	KerjaMates []KerjaMateRow
	Reviews    []ReviewRow
	Jobs       []JobRow
	Categories []CategoryRow
}

func encodeList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

func decodeList(column, raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("repository: decode %s: %w", column, err)
	}
	return list, nil
}

func subscriptionOf(raw string) entity.Subscription {
	switch entity.Subscription(raw) {
	case entity.SubscriptionBasic, entity.SubscriptionPro:
		return entity.Subscription(raw)
	}
	return entity.SubscriptionNone
}

// RowsFromCatalog flattens a catalog for insertion.
func RowsFromCatalog(c *entity.Catalog) CatalogRows {
	var rows CatalogRows
	for _, u := range c.Users {
		rows.Users = append(rows.Users, UserRow{
			ID:                 u.ID,
			Name:               u.Name,
			Email:              u.Email,
			Phone:              u.Phone,
			Avatar:             u.Avatar,
			Address:            u.Address,
			WalletBalance:      u.WalletBalance,
			Subscription:       string(subscriptionOf(string(u.Subscription))),
			JobsPosted:         encodeList(u.JobsPosted),
			FavoriteKerjaMates: encodeList(u.FavoriteKerjaMates),
		})
	}
	for _, k := range c.KerjaMates {
		rows.KerjaMates = append(rows.KerjaMates, KerjaMateRow{
			ID:            k.ID,
			Name:          k.Name,
			Avatar:        k.Avatar,
			Verified:      k.Verified,
			Rating:        k.Rating,
			Skills:        encodeList(k.Skills),
			CompletedJobs: k.CompletedJobs,
			Address:       k.Location.Address,
			Lat:           k.Location.Lat,
			Lng:           k.Location.Lng,
			Distance:      k.Distance,
			HourlyRate:    k.HourlyRate,
			About:         k.About,
			Availability:  k.Availability,
			Badges:        encodeList(k.Badges),
		})
		for _, r := range k.Reviews {
			rows.Reviews = append(rows.Reviews, ReviewRow{
				ID:          r.ID,
				KerjaMateID: k.ID,
				UserName:    r.UserName,
				Rating:      r.Rating,
				Comment:     r.Comment,
				Date:        r.Date,
			})
		}
	}
	for _, j := range c.Jobs {
		rows.Jobs = append(rows.Jobs, JobRow{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			Category:    j.Category,
			Address:     j.Location.Address,
			Lat:         j.Location.Lat,
			Lng:         j.Location.Lng,
			DatePosted:  j.DatePosted,
			DateNeeded:  j.DateNeeded,
			TimeNeeded:  j.TimeNeeded,
			Duration:    j.Duration,
			Budget:      j.Budget,
			Status:      string(j.Status),
			UserID:      j.UserID,
			KerjaMateID: sql.NullString{String: j.KerjaMateID, Valid: j.KerjaMateID != ""},
			Skills:      encodeList(j.Skills),
		})
	}
	for _, cat := range c.Categories {
		rows.Categories = append(rows.Categories, CategoryRow{
			ID:                cat.ID,
			Name:              cat.Name,
			Icon:              cat.Icon,
			Description:       cat.Description,
			PopularTasks:      encodeList(cat.PopularTasks),
			AverageHourlyRate: cat.AverageHourlyRate,
		})
	}
	return rows
}

// CatalogFromRows rebuilds the catalog, attaching reviews to their KerjaMate.
func CatalogFromRows(rows CatalogRows) (*entity.Catalog, error) {
	c := &entity.Catalog{}

	for _, r := range rows.Users {
		jobsPosted, err := decodeList("users.jobs_posted", r.JobsPosted)
		if err != nil {
			return nil, err
		}
		favorites, err := decodeList("users.favorite_kerja_mates", r.FavoriteKerjaMates)
		if err != nil {
			return nil, err
		}
		c.Users = append(c.Users, entity.User{
			ID:                 r.ID,
			Name:               r.Name,
			Email:              r.Email,
			Phone:              r.Phone,
			Avatar:             r.Avatar,
			Address:            r.Address,
			WalletBalance:      r.WalletBalance,
			Subscription:       subscriptionOf(r.Subscription),
			JobsPosted:         jobsPosted,
			FavoriteKerjaMates: favorites,
		})
	}

	reviews := make(map[string][]entity.Review)
	for _, r := range rows.Reviews {
		reviews[r.KerjaMateID] = append(reviews[r.KerjaMateID], entity.Review{
			ID:       r.ID,
			UserName: r.UserName,
			Rating:   r.Rating,
			Comment:  r.Comment,
			Date:     r.Date,
		})
	}
	for _, r := range rows.KerjaMates {
		skills, err := decodeList("kerja_mates.skills", r.Skills)
		if err != nil {
			return nil, err
		}
		badges, err := decodeList("kerja_mates.badges", r.Badges)
		if err != nil {
			return nil, err
		}
		c.KerjaMates = append(c.KerjaMates, entity.KerjaMate{
			ID:            r.ID,
			Name:          r.Name,
			Avatar:        r.Avatar,
			Verified:      r.Verified,
			Rating:        r.Rating,
			Skills:        skills,
			CompletedJobs: r.CompletedJobs,
			Location:      entity.Location{Lat: r.Lat, Lng: r.Lng, Address: r.Address},
			Distance:      r.Distance,
			HourlyRate:    r.HourlyRate,
			About:         r.About,
			Availability:  r.Availability,
			Reviews:       append([]entity.Review{}, reviews[r.ID]...),
			Badges:        badges,
		})
	}

	for _, r := range rows.Jobs {
		skills, err := decodeList("jobs.skills", r.Skills)
		if err != nil {
			return nil, err
		}
		c.Jobs = append(c.Jobs, entity.Job{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Location:    entity.Location{Lat: r.Lat, Lng: r.Lng, Address: r.Address},
			DatePosted:  r.DatePosted,
			DateNeeded:  r.DateNeeded,
			TimeNeeded:  r.TimeNeeded,
			Duration:    r.Duration,
			Budget:      r.Budget,
			Status:      entity.JobStatus(r.Status),
			UserID:      r.UserID,
			KerjaMateID: r.KerjaMateID.String,
			Skills:      skills,
		})
	}

	for _, r := range rows.Categories {
		tasks, err := decodeList("job_categories.popular_tasks", r.PopularTasks)
		if err != nil {
			return nil, err
		}
		c.Categories = append(c.Categories, entity.JobCategory{
			ID:                r.ID,
			Name:              r.Name,
			Icon:              r.Icon,
			Description:       r.Description,
			PopularTasks:      tasks,
			AverageHourlyRate: r.AverageHourlyRate,
		})
	}
	return c, nil
}
