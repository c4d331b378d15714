package synth

// Curated value pools for realistic-looking synthetic values. Drawing from
// in-code tables keeps seeded generation byte-identical across runs, which a
// network- or time-backed source could not guarantee.

var firstNames = []string{
	"John", "Jane", "Bob", "Mary", "Alice", "David", "Emma", "Michael",
	"Olivia", "James", "Sophia", "William", "Ava", "Benjamin", "Mia",
	"Daniel", "Charlotte", "Matthew", "Amelia", "Henry", "Lucas", "Harper",
	"Ethan", "Evelyn", "Noah", "Abigail", "Liam", "Isabella", "Mason", "Grace",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller",
	"Wilson", "Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White",
	"Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson",
	"Clark", "Rodriguez", "Lewis", "Lee", "Walker", "Hall", "Allen", "Young",
}

var emailDomains = []string{
	"example.com", "mail.com", "inbox.net", "fastmail.org", "workmail.io",
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington", "Lake",
	"Hill", "Park", "River", "Sunset", "Highland", "Franklin", "Madison",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Ct", "Way"}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Bristol",
	"Clinton", "Fairview", "Salem", "Madison", "Georgetown", "Arlington",
	"Ashland", "Burlington", "Clayton", "Dayton", "Dover", "Hudson",
	"Kingston", "Milton", "Oxford",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France",
	"Australia", "Japan", "Brazil", "India", "Netherlands", "Spain",
	"Italy", "Sweden", "Mexico", "South Korea",
}

var companyNames = []string{
	"Acme", "Globex", "Initech", "Umbra", "Vertex", "Nimbus", "Quantum",
	"Pinnacle", "Summit", "Horizon", "Cascade", "Meridian", "Apex", "Zenith",
}

var companySuffixes = []string{
	"Corp", "Inc", "LLC", "Group", "Labs", "Industries", "Systems", "Holdings",
}

var departments = []string{
	"Engineering", "Sales", "Marketing", "Finance", "Human Resources",
	"Operations", "Customer Support", "Legal", "Product", "Research",
	"Logistics", "Procurement",
}

var jobLevels = []string{
	"Junior", "Senior", "Lead", "Principal", "Chief", "Associate", "Staff",
}

var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Consultant", "Architect",
	"Specialist", "Coordinator", "Director", "Strategist", "Administrator",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "amet", "consectetur", "adipiscing", "elit",
	"tempor", "incididunt", "labore", "magna", "aliqua", "veniam", "nostrud",
	"ullamco", "laboris", "aliquip", "commodo", "cupidatat", "voluptate",
}
