// Package fixture holds the built-in marketplace catalog. Every function
// returns freshly allocated values, so callers may mutate the result.
package fixture

import "kerjabantu-service/src/internal/entity"

func Users() []entity.User {
	return []entity.User{
		{
			ID:                 "user-001",
			Name:               "Siti Nuraini",
			Email:              "siti.nuraini@example.com",
			Phone:              "+62812345678",
			Avatar:             "https://randomuser.me/api/portraits/women/11.jpg",
			Address:            "Menteng, Jakarta Pusat",
			WalletBalance:      500000,
			Subscription:       entity.SubscriptionBasic,
			JobsPosted:         []string{"job-001"},
			FavoriteKerjaMates: []string{"km-001", "km-003"},
		},
		{
			ID:                 "user-002",
			Name:               "Budi Santoso",
			Email:              "budi.santoso@example.com",
			Phone:              "+62823456789",
			Avatar:             "https://randomuser.me/api/portraits/men/12.jpg",
			Address:            "Kuningan, Jakarta Selatan",
			WalletBalance:      250000,
			Subscription:       entity.SubscriptionNone,
			JobsPosted:         []string{"job-002"},
			FavoriteKerjaMates: []string{"km-004"},
		},
		{
			ID:                 "user-003",
			Name:               "Hendra Gunawan",
			Email:              "hendra.gunawan@example.com",
			Phone:              "+62834567890",
			Avatar:             "https://randomuser.me/api/portraits/men/13.jpg",
			Address:            "Pluit, Jakarta Utara",
			WalletBalance:      750000,
			Subscription:       entity.SubscriptionPro,
			JobsPosted:         []string{"job-003"},
			FavoriteKerjaMates: []string{"km-003", "km-005"},
		},
		{
			ID:                 "user-004",
			Name:               "Rina Marlina",
			Email:              "rina.marlina@example.com",
			Phone:              "+62845678901",
			Avatar:             "https://randomuser.me/api/portraits/women/14.jpg",
			Address:            "Jatinegara, Jakarta Timur",
			WalletBalance:      350000,
			Subscription:       entity.SubscriptionBasic,
			JobsPosted:         []string{"job-004"},
			FavoriteKerjaMates: []string{"km-002"},
		},
		{
			ID:                 "user-005",
			Name:               "Joko Widodo",
			Email:              "joko.widodo@example.com",
			Phone:              "+62856789012",
			Avatar:             "https://randomuser.me/api/portraits/men/15.jpg",
			Address:            "Kebon Jeruk, Jakarta Barat",
			WalletBalance:      600000,
			Subscription:       entity.SubscriptionBasic,
			JobsPosted:         []string{"job-005"},
			FavoriteKerjaMates: []string{"km-001", "km-005"},
		},
		{
			ID:                 "user-006",
			Name:               "Dian Sastro",
			Email:              "dian.sastro@example.com",
			Phone:              "+62867890123",
			Avatar:             "https://randomuser.me/api/portraits/women/16.jpg",
			Address:            "Kemang, Jakarta Selatan",
			WalletBalance:      300000,
			Subscription:       entity.SubscriptionNone,
			JobsPosted:         []string{"job-006"},
			FavoriteKerjaMates: []string{"km-002", "km-004"},
		},
		{
			ID:                 "user-007",
			Name:               "Tono Sucipto",
			Email:              "tono.sucipto@example.com",
			Phone:              "+62878901234",
			Avatar:             "https://randomuser.me/api/portraits/men/17.jpg",
			Address:            "Tebet, Jakarta Selatan",
			WalletBalance:      150000,
			Subscription:       entity.SubscriptionNone,
			JobsPosted:         []string{"job-007"},
			FavoriteKerjaMates: []string{"km-004"},
		},
		{
			ID:                 "user-008",
			Name:               "Lina Kusuma",
			Email:              "lina.kusuma@example.com",
			Phone:              "+62889012345",
			Avatar:             "https://randomuser.me/api/portraits/women/18.jpg",
			Address:            "Cakung, Jakarta Timur",
			WalletBalance:      450000,
			Subscription:       entity.SubscriptionPro,
			JobsPosted:         []string{"job-008"},
			FavoriteKerjaMates: []string{"km-003", "km-005"},
		},
	}
}
