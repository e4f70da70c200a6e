package fixture

import "kerjabantu-service/src/internal/entity"

func TrainingCourses() []entity.TrainingCourse {
	return []entity.TrainingCourse{
		{ID: "course-001", Title: "Customer Service Excellence", Instructor: "Sarah Johnson", Duration: "4 hours", Level: "Beginner", Category: "Soft Skills", Rating: 4.8, ReviewCount: 124, Image: "https://randomuser.me/api/portraits/women/32.jpg", Description: "Learn the fundamentals of exceptional customer service and how to handle difficult situations with professionalism."},
		{ID: "course-002", Title: "Basic Office Software Skills", Instructor: "David Chen", Duration: "6 hours", Level: "Beginner", Category: "Technical Skills", Rating: 4.6, ReviewCount: 98, Image: "https://randomuser.me/api/portraits/men/45.jpg", Description: "Master the essential office software tools including Word, Excel, and PowerPoint to boost your productivity."},
		{ID: "course-003", Title: "Professional Communication", Instructor: "Maya Putri", Duration: "3 hours", Level: "Beginner", Category: "Soft Skills", Rating: 4.9, ReviewCount: 156, Image: "https://randomuser.me/api/portraits/women/22.jpg", Description: "Improve your verbal and written communication skills for the workplace with practical exercises and feedback."},
		{ID: "course-004", Title: "Time Management Mastery", Instructor: "Budi Santoso", Duration: "2 hours", Level: "Intermediate", Category: "Productivity", Rating: 4.7, ReviewCount: 87, Image: "https://randomuser.me/api/portraits/men/36.jpg", Description: "Learn proven techniques to manage your time effectively, set priorities, and increase your productivity."},
		{ID: "course-005", Title: "Basic Accounting Principles", Instructor: "Lisa Wang", Duration: "5 hours", Level: "Beginner", Category: "Finance", Rating: 4.5, ReviewCount: 62, Image: "https://randomuser.me/api/portraits/women/15.jpg", Description: "Understand the fundamentals of accounting, financial statements, and basic bookkeeping for non-accountants."},
		{ID: "course-006", Title: "Sales Techniques for Beginners", Instructor: "Rahmat Hidayat", Duration: "4 hours", Level: "Beginner", Category: "Sales", Rating: 4.7, ReviewCount: 108, Image: "https://randomuser.me/api/portraits/men/25.jpg", Description: "Learn effective sales techniques, objection handling, and closing strategies to boost your confidence and results."},
	}
}

func Mentors() []entity.Mentor {
	return []entity.Mentor{
		{ID: "mentor-001", Name: "Dr. Siti Nuraini", Specialty: "Career Development", Experience: "15+ years", Availability: "Mon, Wed, Fri", Rating: 4.9, ReviewCount: 78, Avatar: "https://randomuser.me/api/portraits/women/68.jpg", Bio: "Career counselor specializing in helping individuals identify and achieve their professional goals."},
		{ID: "mentor-002", Name: "Ahmad Rizal, MBA", Specialty: "Business Management", Experience: "12+ years", Availability: "Tue, Thu", Rating: 4.8, ReviewCount: 65, Avatar: "https://randomuser.me/api/portraits/men/52.jpg", Bio: "Business consultant with experience in helping small businesses grow and optimize operations."},
		{ID: "mentor-003", Name: "Indah Wijaya", Specialty: "Digital Marketing", Experience: "8+ years", Availability: "Mon-Fri", Rating: 4.7, ReviewCount: 93, Avatar: "https://randomuser.me/api/portraits/women/42.jpg", Bio: "Digital marketing expert who helps individuals build their online presence and personal brand."},
	}
}

func TrainingBadges() []entity.TrainingBadge {
	return []entity.TrainingBadge{
		{ID: "badge-001", Title: "Communication Proficient", Icon: "/icons/communication.png", Description: "Awarded for excellence in professional communication skills", Earned: true, Progress: 100},
		{ID: "badge-002", Title: "Technical Fundamentals", Icon: "/icons/technical.png", Description: "Recognizes mastery of basic technical and computer skills", Earned: true, Progress: 100},
		{ID: "badge-003", Title: "Customer Service Expert", Icon: "/icons/customer-service.png", Description: "Demonstrates exceptional customer service abilities", Progress: 75},
		{ID: "badge-004", Title: "Financial Literacy", Icon: "/icons/finance.png", Description: "Shows understanding of basic financial and accounting concepts", Progress: 40},
	}
}
