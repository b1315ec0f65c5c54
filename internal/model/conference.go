package model

import "time"

// Conference represents a tech conference and its venue associations.
type Conference struct {
	Meta
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Website      string    `json:"website,omitempty"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	IsActive     bool      `json:"isActive"`
	Categories   []string  `json:"categories,omitempty"`
	VenueIDs     []string  `json:"venueIds,omitempty"`
	Location     string    `json:"location,omitempty"`
	MaxAttendees int       `json:"maxAttendees,omitempty"`
	Organizer    string    `json:"organizer,omitempty"`
}

// Kind returns the partition tag for conferences.
func (Conference) Kind() string { return KindConference }
