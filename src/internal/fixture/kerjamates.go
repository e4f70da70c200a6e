package fixture

import "kerjabantu-service/src/internal/entity"

func KerjaMates() []entity.KerjaMate {
	return []entity.KerjaMate{
		{
			ID:            "km-001",
			Name:          "Ahmad Rizal",
			Avatar:        "https://randomuser.me/api/portraits/men/1.jpg",
			Verified:      true,
			Rating:        4.8,
			Skills:        []string{"Cleaning", "Gardening", "House Maintenance"},
			CompletedJobs: 47,
			Location:      entity.Location{Lat: -6.175971, Lng: 106.827038, Address: "Jakarta Pusat"},
			Distance:      2.3,
			HourlyRate:    45000,
			About:         "I have 5 years of experience in residential cleaning and gardening. I'm detail-oriented and always make sure to leave my clients satisfied.",
			Availability:  true,
			Reviews: []entity.Review{
				{ID: "rev-001", UserName: "Siti Nuraini", Rating: 5, Comment: "Ahmad did an amazing job cleaning my apartment. Very thorough and professional.", Date: "2023-11-15"},
				{ID: "rev-002", UserName: "Budi Santoso", Rating: 4.5, Comment: "Great work on my garden. Would hire again.", Date: "2023-10-22"},
			},
			Badges: []string{"Top Cleaner", "Punctual", "Reliable"},
		},
		{
			ID:            "km-002",
			Name:          "Dewi Sartika",
			Avatar:        "https://randomuser.me/api/portraits/women/2.jpg",
			Verified:      true,
			Rating:        4.9,
			Skills:        []string{"Cooking", "Childcare", "Errands"},
			CompletedJobs: 63,
			Location:      entity.Location{Lat: -6.185971, Lng: 106.837038, Address: "Jakarta Selatan"},
			Distance:      3.5,
			HourlyRate:    50000,
			About:         "Experienced nanny and cook with over 7 years of experience. I love working with children and preparing healthy, delicious meals.",
			Availability:  true,
			Reviews: []entity.Review{
				{ID: "rev-003", UserName: "Rina Marlina", Rating: 5, Comment: "Dewi is amazing with my kids! They love her cooking and always ask when she's coming back.", Date: "2023-12-01"},
				{ID: "rev-004", UserName: "Joko Widodo", Rating: 4.8, Comment: "Dewi prepared a wonderful dinner for our family gathering. Very impressed!", Date: "2023-11-10"},
			},
			Badges: []string{"Cooking Expert", "Child-Friendly", "Fast Worker"},
		},
		{
			ID:            "km-003",
			Name:          "Rudi Hartono",
			Avatar:        "https://randomuser.me/api/portraits/men/3.jpg",
			Verified:      true,
			Rating:        4.7,
			Skills:        []string{"Electrical Repair", "Plumbing", "Furniture Assembly"},
			CompletedJobs: 35,
			Location:      entity.Location{Lat: -6.165971, Lng: 106.817038, Address: "Jakarta Utara"},
			Distance:      5.1,
			HourlyRate:    60000,
			About:         "Certified electrician and handyman. I can fix almost anything in your home, from electrical issues to plumbing problems.",
			Availability:  false,
			Reviews: []entity.Review{
				{ID: "rev-005", UserName: "Hendra Gunawan", Rating: 4.5, Comment: "Rudi fixed our electrical issues quickly. Very knowledgeable.", Date: "2023-10-05"},
				{ID: "rev-006", UserName: "Lina Kusuma", Rating: 5, Comment: "Assembled our new furniture perfectly. Would definitely recommend!", Date: "2023-09-28"},
			},
			Badges: []string{"Certified Electrician", "Problem Solver", "Technical Expert"},
		},
		{
			ID:            "km-004",
			Name:          "Maya Wijaya",
			Avatar:        "https://randomuser.me/api/portraits/women/4.jpg",
			Verified:      true,
			Rating:        4.6,
			Skills:        []string{"Delivery", "Shopping", "Errands"},
			CompletedJobs: 52,
			Location:      entity.Location{Lat: -6.195971, Lng: 106.847038, Address: "Jakarta Timur"},
			Distance:      4.2,
			HourlyRate:    40000,
			About:         "Fast and reliable delivery person. I can help with your shopping needs, deliveries, and various errands around the city.",
			Availability:  true,
			Reviews: []entity.Review{
				{ID: "rev-007", UserName: "Dian Sastro", Rating: 4.5, Comment: "Maya delivered my package on time and was very communicative throughout.", Date: "2023-11-20"},
				{ID: "rev-008", UserName: "Tono Sucipto", Rating: 4.7, Comment: "Helped me with grocery shopping while I was sick. Very helpful!", Date: "2023-10-15"},
			},
			Badges: []string{"Fast Delivery", "Reliable", "Good Communication"},
		},
		{
			ID:            "km-005",
			Name:          "Budi Prasetyo",
			Avatar:        "https://randomuser.me/api/portraits/men/5.jpg",
			Verified:      true,
			Rating:        4.5,
			Skills:        []string{"House Painting", "Carpentry", "Tiling"},
			CompletedJobs: 28,
			Location:      entity.Location{Lat: -6.205971, Lng: 106.857038, Address: "Jakarta Barat"},
			Distance:      6.8,
			HourlyRate:    55000,
			About:         "Experienced in home renovation projects. My specialty is painting, carpentry, and tiling work. I take pride in transforming spaces.",
			Availability:  true,
			Reviews: []entity.Review{
				{ID: "rev-009", UserName: "Agus Dermawan", Rating: 4.3, Comment: "Budi painted our living room and did a great job. The finish looks professional.", Date: "2023-09-10"},
				{ID: "rev-010", UserName: "Nina Haryanti", Rating: 4.7, Comment: "Excellent tiling work in our bathroom. Very neat and clean.", Date: "2023-08-22"},
			},
			Badges: []string{"Renovation Expert", "Detail-Oriented", "Clean Worker"},
		},
	}
}
