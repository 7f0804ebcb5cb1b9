package demodata

// Fixed catalogs feeding the synthesis stages. All weighted pools use explicit
// weights so the resulting distributions are exact and testable.

var adultMaleNames = []string{
	"James", "Robert", "John", "Michael", "David", "William", "Richard",
	"Thomas", "Mark", "Paul", "Daniel", "Stephen", "Andrew", "Joshua",
	"Peter", "Samuel", "Nathan", "Caleb", "Aaron", "Timothy",
}

var adultFemaleNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
	"Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Sandra", "Ruth",
	"Rebecca", "Rachel", "Hannah", "Esther", "Naomi", "Grace",
}

var childMaleNames = []string{
	"Liam", "Noah", "Oliver", "Elijah", "Lucas", "Mason", "Logan",
	"Ethan", "Jacob", "Levi", "Isaac", "Gabriel", "Owen", "Eli",
}

var childFemaleNames = []string{
	"Olivia", "Emma", "Charlotte", "Amelia", "Sophia", "Isabella", "Ava",
	"Mia", "Abigail", "Lily", "Chloe", "Zoe", "Nora", "Faith",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Anderson", "Taylor", "Thomas",
	"Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris",
	"Clark", "Lewis", "Walker", "Young",
}

// Six avatar image services; one template is picked at random per member.
var avatarURLTemplates = []string{
	"https://i.pravatar.cc/150?u=%s",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=%s",
	"https://api.dicebear.com/7.x/personas/svg?seed=%s",
	"https://api.dicebear.com/7.x/bottts/svg?seed=%s",
	"https://robohash.org/%s.png?size=150x150",
	"https://api.multiavatar.com/%s.png",
}

var streetNames = []string{
	"Oak Street", "Maple Avenue", "Cedar Lane", "Elm Drive", "Pine Road",
	"Willow Court", "Birch Boulevard", "Chestnut Way", "Magnolia Place",
	"Sycamore Circle",
}

var cityNames = []string{
	"Springfield", "Riverside", "Fairview", "Greenville", "Madison",
	"Georgetown", "Clinton", "Salem",
}

type groupTemplate struct {
	Name        string
	Description string
	TargetSize  int
}

const defaultGroupSize = 10

var groupCatalog = []groupTemplate{
	{"Worship Team", "Musicians and vocalists leading Sunday worship", 15},
	{"Youth Ministry", "Ministry for teenagers and young adults", 25},
	{"Children's Ministry", "Sunday school and children's programs", 20},
	{"Prayer Group", "Weekly intercessory prayer meeting", 12},
	{"Bible Study Fellowship", "Midweek small-group Bible study", 18},
	{"Outreach Committee", "Community service and evangelism projects", 10},
	{"Hospitality Team", "Greeters, ushers, and welcome desk", 8},
	{"Finance Committee", "Budget oversight and stewardship", 6},
	{"Media Team", "Sound, projection, and livestream", 7},
	{"Women's Ministry", "Fellowship and studies for women", 22},
}

type taskTemplate struct {
	Title    string
	Priority string
}

var taskCatalog = []taskTemplate{
	{"Prepare Sunday bulletin", "high"},
	{"Order communion supplies", "medium"},
	{"Schedule nursery volunteers", "high"},
	{"Follow up with first-time visitors", "high"},
	{"Update member directory", "low"},
	{"Plan fellowship dinner menu", "medium"},
	{"Inspect sound equipment", "medium"},
	{"Coordinate food pantry donations", "medium"},
	{"Draft quarterly newsletter", "low"},
	{"Review benevolence requests", "high"},
}

var guardianRelationships = []string{"parent", "grandparent", "aunt/uncle", "guardian"}

// 80% active / 20% visitor.
var statusChoices = []choice[string]{
	{"active", 4},
	{"visitor", 1},
}

// 60% regular / 20% occasional / 20% rare.
var frequencyChoices = []choice[string]{
	{"regular", 3},
	{"occasional", 1},
	{"rare", 1},
}

// 70% check / 30% cash.
var paymentMethodChoices = []choice[string]{
	{"check", 7},
	{"cash", 3},
}

// 70% one guardian / 30% two.
var guardianCountChoices = []choice[int]{
	{1, 7},
	{2, 3},
}

// ~60% of check-ins carry no note.
var checkInNoteChoices = []choice[string]{
	{"", 12},
	{"Allergic to peanuts", 2},
	{"Needs inhaler nearby", 2},
	{"May need a quiet corner when overstimulated", 2},
	{"Pick-up by grandparent today", 2},
}
