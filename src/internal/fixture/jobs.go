package fixture

import "kerjabantu-service/src/internal/entity"

func Jobs() []entity.Job {
	return []entity.Job{
		{
			ID:          "job-001",
			Title:       "House Cleaning for 3-Bedroom Apartment",
			Description: "Need thorough cleaning of my 3-bedroom apartment including kitchen, bathrooms, living room, and bedrooms. Please bring your own cleaning supplies.",
			Category:    "Cleaning",
			Location:    entity.Location{Lat: -6.175971, Lng: 106.827038, Address: "Menteng, Jakarta Pusat"},
			DatePosted:  "2023-12-01",
			DateNeeded:  "2023-12-10",
			TimeNeeded:  "09:00",
			Duration:    4,
			Budget:      200000,
			Status:      entity.JobStatusOpen,
			UserID:      "user-001",
			Skills:      []string{"Cleaning", "House Maintenance"},
		},
		{
			ID:          "job-002",
			Title:       "Deliver Important Documents",
			Description: "Need someone to deliver important documents from my office to a client. The documents are ready to be picked up.",
			Category:    "Delivery",
			Location:    entity.Location{Lat: -6.185971, Lng: 106.837038, Address: "Kuningan, Jakarta Selatan"},
			DatePosted:  "2023-12-02",
			DateNeeded:  "2023-12-05",
			TimeNeeded:  "13:00",
			Duration:    2,
			Budget:      100000,
			Status:      entity.JobStatusAssigned,
			UserID:      "user-002",
			KerjaMateID: "km-004",
			Skills:      []string{"Delivery", "Errands"},
		},
		{
			ID:          "job-003",
			Title:       "Fix Kitchen Sink Leak",
			Description: "The kitchen sink has a leak underneath. Need someone with plumbing experience to fix it. Materials will be provided.",
			Category:    "Repair",
			Location:    entity.Location{Lat: -6.165971, Lng: 106.817038, Address: "Pluit, Jakarta Utara"},
			DatePosted:  "2023-12-01",
			DateNeeded:  "2023-12-03",
			TimeNeeded:  "10:00",
			Duration:    2,
			Budget:      150000,
			Status:      entity.JobStatusCompleted,
			UserID:      "user-003",
			KerjaMateID: "km-003",
			Skills:      []string{"Plumbing", "Repair"},
		},
		{
			ID:          "job-004",
			Title:       "Cook Dinner for Family Gathering",
			Description: "Need someone to prepare dinner for a family gathering of 10 people. The menu can be discussed, but should include appetizers, main course, and dessert.",
			Category:    "Cooking",
			Location:    entity.Location{Lat: -6.195971, Lng: 106.847038, Address: "Jatinegara, Jakarta Timur"},
			DatePosted:  "2023-12-03",
			DateNeeded:  "2023-12-15",
			TimeNeeded:  "16:00",
			Duration:    5,
			Budget:      350000,
			Status:      entity.JobStatusAssigned,
			UserID:      "user-004",
			KerjaMateID: "km-002",
			Skills:      []string{"Cooking", "Meal Preparation"},
		},
		{
			ID:          "job-005",
			Title:       "Lawn Mowing and Garden Maintenance",
			Description: "Need help with lawn mowing and general garden maintenance for a medium-sized garden. Tools will be provided.",
			Category:    "Gardening",
			Location:    entity.Location{Lat: -6.205971, Lng: 106.857038, Address: "Kebon Jeruk, Jakarta Barat"},
			DatePosted:  "2023-12-02",
			DateNeeded:  "2023-12-08",
			TimeNeeded:  "08:00",
			Duration:    3,
			Budget:      150000,
			Status:      entity.JobStatusOpen,
			UserID:      "user-005",
			Skills:      []string{"Gardening", "Lawn Mowing"},
		},
		{
			ID:          "job-006",
			Title:       "Babysitting for 2 Children",
			Description: "Need a reliable babysitter for 2 children (ages 4 and 6) while parents attend an event. Experience with children required.",
			Category:    "Childcare",
			Location:    entity.Location{Lat: -6.175971, Lng: 106.837038, Address: "Kemang, Jakarta Selatan"},
			DatePosted:  "2023-12-03",
			DateNeeded:  "2023-12-09",
			TimeNeeded:  "18:00",
			Duration:    4,
			Budget:      200000,
			Status:      entity.JobStatusOpen,
			UserID:      "user-006",
			Skills:      []string{"Childcare", "Babysitting"},
		},
		{
			ID:          "job-007",
			Title:       "Weekly Grocery Shopping",
			Description: "Need someone to do weekly grocery shopping for a family of four. Will provide a list and budget.",
			Category:    "Errands",
			Location:    entity.Location{Lat: -6.185971, Lng: 106.827038, Address: "Tebet, Jakarta Selatan"},
			DatePosted:  "2023-12-04",
			DateNeeded:  "2023-12-07",
			TimeNeeded:  "10:00",
			Duration:    2,
			Budget:      100000,
			Status:      entity.JobStatusOpen,
			UserID:      "user-007",
			Skills:      []string{"Errands", "Shopping"},
		},
		{
			ID:          "job-008",
			Title:       "Paint Living Room Walls",
			Description: "Need someone to paint the living room walls (approx. 40 sqm). Paint and supplies will be provided.",
			Category:    "Home Renovation",
			Location:    entity.Location{Lat: -6.195971, Lng: 106.857038, Address: "Cakung, Jakarta Timur"},
			DatePosted:  "2023-12-01",
			DateNeeded:  "2023-12-12",
			TimeNeeded:  "09:00",
			Duration:    6,
			Budget:      400000,
			Status:      entity.JobStatusAssigned,
			UserID:      "user-008",
			KerjaMateID: "km-005",
			Skills:      []string{"House Painting", "Home Renovation"},
		},
	}
}
