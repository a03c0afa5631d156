package chatbot

// entry pairs a set of trigger substrings with a canned reply. Entries are
// evaluated in order and the first match wins, so broad greetings sit ahead
// of topic entries. Triggers mix English and Filipino terms.
type entry struct {
	patterns   []string
	response   string
	confidence float64
	sources    []string
	actions    []string
}

var entries = []entry{
	{
		patterns:   []string{"hello", "kamusta", "kumusta", "magandang", "good morning", "good evening"},
		response:   "Hello! Kamusta? I'm the community assistance helper. I can answer questions about requesting help, emergency hotlines, and available services.",
		confidence: 0.9,
		sources:    []string{"Community Assistance Guide"},
		actions:    []string{"Submit a request", "View emergency hotlines"},
	},
	{
		patterns:   []string{"hotline", "911", "rescue", "emergency number"},
		response:   "For life-threatening emergencies call 911 immediately. The local disaster response hotline is available 24/7 through the barangay office.",
		confidence: 0.95,
		sources:    []string{"Emergency Hotline Directory"},
		actions:    []string{"Call 911", "Submit an URGENT request"},
	},
	{
		patterns:   []string{"how do i", "paano", "submit", "request help", "humingi"},
		response:   "To request assistance, open the Requests page, choose a category, and describe your situation. Urgent requests are triaged first.",
		confidence: 0.85,
		sources:    []string{"Community Assistance Guide"},
		actions:    []string{"Open the Requests page", "Read the triage guide"},
	},
	{
		patterns:   []string{"medicine", "gamot", "doctor", "medical", "ospital", "hospital"},
		response:   "Medical assistance requests are prioritized. Describe the condition and any medication needed; a health worker will be assigned to your case.",
		confidence: 0.85,
		sources:    []string{"Health Services FAQ"},
		actions:    []string{"Submit a MEDICAL request", "View nearby health centers"},
	},
	{
		patterns:   []string{"food", "pagkain", "gutom", "hungry", "relief goods"},
		response:   "Food assistance is distributed through local relief points. Submit a FOOD request with your household size so we can allocate rations.",
		confidence: 0.8,
		sources:    []string{"Relief Distribution Schedule"},
		actions:    []string{"Submit a FOOD request", "Find the nearest relief point"},
	},
	{
		patterns:   []string{"shelter", "tirahan", "evacuation center", "evacuee", "homeless"},
		response:   "Evacuation centers are listed per barangay. If you need temporary shelter, submit a SHELTER request and staff will coordinate placement.",
		confidence: 0.8,
		sources:    []string{"Evacuation Center Directory"},
		actions:    []string{"Submit a SHELTER request", "View evacuation centers"},
	},
	{
		patterns:   []string{"status", "track", "update on my", "nangyari sa"},
		response:   "You can track your request from the My Requests page. You'll also receive a realtime notification whenever its status changes.",
		confidence: 0.75,
		sources:    []string{"Community Assistance Guide"},
		actions:    []string{"Open My Requests"},
	},
	{
		patterns:   []string{"thank", "salamat"},
		response:   "Walang anuman! Happy to help. Reach out anytime you need assistance.",
		confidence: 0.9,
		sources:    nil,
		actions:    nil,
	},
	{
		patterns:   []string{"volunteer", "magboluntaryo", "donate", "donasyon"},
		response:   "Volunteers and donations are always welcome. Register through the Volunteer page and staff will contact you for the next drive.",
		confidence: 0.7,
		sources:    []string{"Volunteer Program FAQ"},
		actions:    []string{"Register as a volunteer"},
	},
}

const (
	defaultResponse   = "I'm not sure I understood that. You can ask me about requesting assistance, emergency hotlines, food and medical aid, or tracking an existing request."
	defaultConfidence = 0.3
)

var defaultActions = []string{"Submit a request", "View emergency hotlines", "Contact support"}
