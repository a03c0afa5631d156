package triage

// emergencyKeywords mark a request as life-threatening. Any hit forces
// URGENT regardless of category.
var emergencyKeywords = []string{
	"emergency",
	"urgent",
	"fire",
	"flood",
	"accident",
	"bleeding",
	"unconscious",
	"heart attack",
	"stroke",
	"overdose",
	"drowning",
	"trapped",
	"collapse",
	"explosion",
	"earthquake",
	"missing",
	"danger",
	"injured",
	"dying",
	"choking",
}

// highPriorityKeywords cover essential needs: medicine, food, shelter and
// utility outages. They escalate to HIGH but never to URGENT on their own.
var highPriorityKeywords = []string{
	"medicine",
	"medication",
	"hospital",
	"doctor",
	"food",
	"hungry",
	"starving",
	"water",
	"shelter",
	"homeless",
	"evacuate",
	"electricity",
	"power outage",
	"sick",
	"fever",
}
