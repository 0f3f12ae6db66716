package ngo

// SampleNGOs is the fixed bootstrap data set inserted by Service.SeedIfEmpty
// when the store holds no active records. Order matters: ids are assigned
// sequentially on an empty store.
var SampleNGOs = []Fields{
	{
		Name:        "Green Earth Foundation",
		Address:     "123 Eco Street, Downtown, City Name 12345",
		Phone:       "+1 (555) 123-4567",
		Email:       strPtr("contact@greenearth.org"),
		Website:     strPtr("https://greenearth.org"),
		Category:    "Environment",
		Description: "Dedicated to environmental conservation and sustainable development. We focus on tree plantation, waste management, and renewable energy projects.",
		Rating:      4.5,
		ReviewCount: 127,
	},
	{
		Name:        "Hope Children's Center",
		Address:     "456 Care Avenue, Westside, City Name 12346",
		Phone:       "+1 (555) 234-5678",
		Email:       strPtr("info@hopechildren.org"),
		Website:     strPtr("https://hopechildren.org"),
		Category:    "Education",
		Description: "Providing quality education and care for underprivileged children. We run schools, tutoring programs, and skill development workshops.",
		Rating:      4.8,
		ReviewCount: 203,
	},
	{
		Name:        "Community Health Partners",
		Address:     "789 Wellness Road, Northside, City Name 12347",
		Phone:       "+1 (555) 345-6789",
		Email:       strPtr("help@communityhealthpartners.org"),
		Website:     strPtr("https://communityhealthpartners.org"),
		Category:    "Health",
		Description: "Delivering essential healthcare services to underserved communities. We provide free medical camps, health education, and emergency care.",
		Rating:      4.6,
		ReviewCount: 89,
	},
	{
		Name:        "Elderly Care Society",
		Address:     "321 Senior Street, Eastside, City Name 12348",
		Phone:       "+1 (555) 456-7890",
		Email:       strPtr("support@elderlycare.org"),
		Website:     strPtr("https://elderlycare.org"),
		Category:    "Social Services",
		Description: "Supporting elderly citizens with healthcare, social activities, and daily assistance. We operate senior centers and home care services.",
		Rating:      4.3,
		ReviewCount: 156,
	},
	{
		Name:        "Skills Development Institute",
		Address:     "654 Training Plaza, Central District, City Name 12349",
		Phone:       "+1 (555) 567-8901",
		Email:       strPtr("programs@skillsdev.org"),
		Website:     strPtr("https://skillsdev.org"),
		Category:    "Education",
		Description: "Empowering youth and adults with vocational training and skill development programs. We offer courses in technology, trades, and entrepreneurship.",
		Rating:      4.4,
		ReviewCount: 98,
	},
	{
		Name:        "Animal Welfare League",
		Address:     "987 Pet Protection Way, Southside, City Name 12350",
		Phone:       "+1 (555) 678-9012",
		Email:       strPtr("rescue@animalwelfare.org"),
		Website:     strPtr("https://animalwelfare.org"),
		Category:    "Animal Welfare",
		Description: "Rescuing, rehabilitating, and rehoming animals in need. We also run awareness campaigns about animal rights and responsible pet ownership.",
		Rating:      4.7,
		ReviewCount: 234,
	},
	{
		Name:        "Women Empowerment Center",
		Address:     "147 Empowerment Street, Women's District, City Name 12351",
		Phone:       "+1 (555) 789-0123",
		Email:       strPtr("empower@womencenter.org"),
		Website:     strPtr("https://womencenter.org"),
		Category:    "Social Services",
		Description: "Supporting women through education, skill development, and advocacy. We provide shelter, legal aid, and economic empowerment programs.",
		Rating:      4.9,
		ReviewCount: 178,
	},
	{
		Name:        "Clean Water Initiative",
		Address:     "258 Water Works Lane, Industrial Area, City Name 12352",
		Phone:       "+1 (555) 890-1234",
		Email:       strPtr("water@cleanwater.org"),
		Website:     strPtr("https://cleanwater.org"),
		Category:    "Environment",
		Description: "Ensuring access to clean drinking water for all communities. We install water purification systems and educate about water conservation.",
		Rating:      4.2,
		ReviewCount: 67,
	},
	{
		Name:        "Mental Health Support Network",
		Address:     "369 Wellness Center, Healthcare District, City Name 12353",
		Phone:       "+1 (555) 901-2345",
		Email:       strPtr("support@mentalhealth.org"),
		Website:     strPtr("https://mentalhealth.org"),
		Category:    "Health",
		Description: "Providing mental health support, counseling, and awareness programs. We offer therapy sessions, support groups, and crisis intervention.",
		Rating:      4.8,
		ReviewCount: 145,
	},
	{
		Name:        "Food Bank Alliance",
		Address:     "741 Hunger Relief Road, Community Center, City Name 12354",
		Phone:       "+1 (555) 012-3456",
		Email:       strPtr("donate@foodbank.org"),
		Website:     strPtr("https://foodbank.org"),
		Category:    "Social Services",
		Description: "Fighting hunger by collecting and distributing food to those in need. We run soup kitchens, food pantries, and nutrition education programs.",
		Rating:      4.5,
		ReviewCount: 312,
	},
}

func strPtr(s string) *string { return &s }
