package types

// Priority is the triage level assigned to a service request.
type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Category classifies what kind of help a request is asking for.
type Category string

const (
	CategoryMedical   Category = "MEDICAL"
	CategoryEmergency Category = "EMERGENCY"
	CategoryFood      Category = "FOOD"
	CategoryShelter   Category = "SHELTER"
	CategoryEducation Category = "EDUCATION"
	CategoryLegal     Category = "LEGAL"
	CategoryUtilities Category = "UTILITIES"
	CategoryOther     Category = "OTHER"
)

type DisasterType string

const (
	DisasterFlood      DisasterType = "FLOOD"
	DisasterEarthquake DisasterType = "EARTHQUAKE"
	DisasterFire       DisasterType = "FIRE"
	DisasterTyphoon    DisasterType = "TYPHOON"
	DisasterMedical    DisasterType = "MEDICAL"
)

// ServiceRequest is the inbound request object handed to triage.
// Persistence of the request itself is owned by the caller.
type ServiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Location    string   `json:"location,omitempty"`
	Timestamp   string   `json:"timestamp,omitempty"`
}

// Role names carried by realtime sessions. Roles are free-form strings on
// the wire; these two get extra admin-room membership.
const (
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
)
