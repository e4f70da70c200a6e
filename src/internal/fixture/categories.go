package fixture

import "kerjabantu-service/src/internal/entity"

func Categories() []entity.JobCategory {
	return []entity.JobCategory{
		{ID: "cat-001", Name: "Cleaning", Icon: "broom", Description: "Professional cleaning services for homes and offices",
			PopularTasks: []string{"Home deep cleaning", "Office cleaning", "Window cleaning", "Post-construction cleaning"}, AverageHourlyRate: 45000},
		{ID: "cat-002", Name: "Delivery", Icon: "truck", Description: "Fast and reliable delivery services",
			PopularTasks: []string{"Package delivery", "Grocery delivery", "Food delivery", "Document delivery"}, AverageHourlyRate: 40000},
		{ID: "cat-003", Name: "Repair", Icon: "wrench", Description: "Home repairs and maintenance services",
			PopularTasks: []string{"Electrical repairs", "Plumbing fixes", "Furniture assembly", "Appliance repair"}, AverageHourlyRate: 60000},
		{ID: "cat-004", Name: "Cooking", Icon: "utensils", Description: "Homemade meals and catering services",
			PopularTasks: []string{"Meal preparation", "Small event catering", "Cooking lessons", "Special diet cooking"}, AverageHourlyRate: 50000},
		{ID: "cat-005", Name: "Gardening", Icon: "leaf", Description: "Garden maintenance and landscaping",
			PopularTasks: []string{"Lawn mowing", "Plant care", "Garden design", "Weed removal"}, AverageHourlyRate: 45000},
		{ID: "cat-006", Name: "Childcare", Icon: "child", Description: "Reliable childcare and babysitting services",
			PopularTasks: []string{"Babysitting", "After-school care", "Child activities", "Homework help"}, AverageHourlyRate: 55000},
		{ID: "cat-007", Name: "Errands", Icon: "shopping-cart", Description: "Help with daily errands and shopping",
			PopularTasks: []string{"Grocery shopping", "Prescription pickup", "Bill payments", "Queue services"}, AverageHourlyRate: 40000},
		{ID: "cat-008", Name: "Home Renovation", Icon: "paint-roller", Description: "Home renovation and improvement services",
			PopularTasks: []string{"Painting", "Tiling", "Carpentry", "Small renovations"}, AverageHourlyRate: 55000},
	}
}

// Catalog bundles every fixture collection.
func Catalog() *entity.Catalog {
	return &entity.Catalog{
		Users:      Users(),
		KerjaMates: KerjaMates(),
		Jobs:       Jobs(),
		Categories: Categories(),
	}
}
