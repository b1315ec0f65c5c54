package model

import (
	"strings"
	"time"
)

// CallForPaper represents a submission window for session proposals.
type CallForPaper struct {
	Meta
	ConferenceID       string    `json:"conferenceId"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	StartDate          time.Time `json:"startDate"`
	Deadline           time.Time `json:"deadline"`
	Topics             []string  `json:"topics,omitempty"`
	SessionTypes       []string  `json:"sessionTypes"`
	EvaluationCriteria string    `json:"evaluationCriteria,omitempty"`
	ContactEmail       string    `json:"contactEmail,omitempty"`
	InfoURL            string    `json:"infoUrl,omitempty"`
	IsOpen             bool      `json:"isOpen"`
}

// Kind returns the partition tag for calls for papers.
func (CallForPaper) Kind() string { return KindCallForPaper }

// AllowsSessionType reports whether the session type may be submitted to this
// call, ignoring case.
func (c CallForPaper) AllowsSessionType(sessionType string) bool {
	for _, allowed := range c.SessionTypes {
		if strings.EqualFold(allowed, sessionType) {
			return true
		}
	}
	return false
}
