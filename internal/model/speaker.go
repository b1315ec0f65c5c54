package model

// Speaker represents a speaker profile shared across conferences.
//
// A speaker is identified by email: creating a speaker whose email already
// exists merges conference membership instead of inserting a duplicate.
type Speaker struct {
	Meta
	ConferenceIDs []string          `json:"conferenceIds,omitempty"`
	Name          string            `json:"name"`
	Bio           string            `json:"bio"`
	Company       string            `json:"company"`
	JobTitle      string            `json:"jobTitle"`
	PhotoURL      string            `json:"photoUrl,omitempty"`
	Email         string            `json:"email"`
	Website       string            `json:"website,omitempty"`
	SocialMedia   map[string]string `json:"socialMedia,omitempty"`
}

// Kind returns the partition tag for speakers.
func (Speaker) Kind() string { return KindSpeaker }

// MemberOf reports whether the speaker is registered for the conference.
func (s Speaker) MemberOf(conferenceID string) bool {
	for _, id := range s.ConferenceIDs {
		if id == conferenceID {
			return true
		}
	}
	return false
}
