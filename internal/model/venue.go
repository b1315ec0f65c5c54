package model

// Venue represents a physical venue hosting one or more conferences.
type Venue struct {
	Meta
	ConferenceIDs []string `json:"conferenceIds,omitempty"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zipCode"`
	Country       string   `json:"country"`
	Capacity      int      `json:"capacity"`
	Rooms         []Room   `json:"rooms,omitempty"`
}

// Kind returns the partition tag for venues.
func (Venue) Kind() string { return KindVenue }

// MemberOf reports whether the venue is associated with the conference.
func (v Venue) MemberOf(conferenceID string) bool {
	for _, id := range v.ConferenceIDs {
		if id == conferenceID {
			return true
		}
	}
	return false
}

// Room is a named space within a venue. The (venueId, room name) pair is the
// double-booking unit for agenda scheduling.
type Room struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment,omitempty"`
}
