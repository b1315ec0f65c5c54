package service

import (
	"context"
	"strings"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
)

// In-memory store fakes. Each keeps insertion order so list results are
// deterministic, and bumps revisions the way the real store does.

type memConferences struct {
	order []string
	items map[string]model.Conference
}

func newMemConferences() *memConferences {
	return &memConferences{items: make(map[string]model.Conference)}
}

func (m *memConferences) Get(_ context.Context, id string) (model.Conference, bool, error) {
	c, ok := m.items[id]
	return c, ok, nil
}

func (m *memConferences) Insert(_ context.Context, c model.Conference) (model.Conference, error) {
	if _, ok := m.items[c.ID]; ok {
		return model.Conference{}, docstore.ErrDuplicate
	}
	c.Rev = 1
	m.items[c.ID] = c
	m.order = append(m.order, c.ID)
	return c, nil
}

func (m *memConferences) Put(_ context.Context, c model.Conference) (model.Conference, error) {
	if existing, ok := m.items[c.ID]; ok {
		c.Rev = existing.Rev + 1
	} else {
		c.Rev = 1
		m.order = append(m.order, c.ID)
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *memConferences) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memConferences) List(_ context.Context) ([]model.Conference, error) {
	out := make([]model.Conference, 0, len(m.items))
	for _, id := range m.order {
		if c, ok := m.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type memSpeakers struct {
	order []string
	items map[string]model.Speaker
}

func newMemSpeakers() *memSpeakers {
	return &memSpeakers{items: make(map[string]model.Speaker)}
}

func (m *memSpeakers) Get(_ context.Context, id string) (model.Speaker, bool, error) {
	s, ok := m.items[id]
	return s, ok, nil
}

func (m *memSpeakers) Insert(_ context.Context, s model.Speaker) (model.Speaker, error) {
	if _, ok := m.items[s.ID]; ok {
		return model.Speaker{}, docstore.ErrDuplicate
	}
	s.Rev = 1
	m.items[s.ID] = s
	m.order = append(m.order, s.ID)
	return s, nil
}

func (m *memSpeakers) Put(_ context.Context, s model.Speaker) (model.Speaker, error) {
	if existing, ok := m.items[s.ID]; ok {
		s.Rev = existing.Rev + 1
	} else {
		s.Rev = 1
		m.order = append(m.order, s.ID)
	}
	m.items[s.ID] = s
	return s, nil
}

func (m *memSpeakers) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memSpeakers) List(_ context.Context) ([]model.Speaker, error) {
	out := make([]model.Speaker, 0, len(m.items))
	for _, id := range m.order {
		if s, ok := m.items[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSpeakers) FindByEmail(ctx context.Context, email string) (model.Speaker, bool, error) {
	speakers, _ := m.List(ctx)
	for _, s := range speakers {
		if strings.EqualFold(s.Email, email) {
			return s, true, nil
		}
	}
	return model.Speaker{}, false, nil
}

type memVenues struct {
	order []string
	items map[string]model.Venue
}

func newMemVenues() *memVenues {
	return &memVenues{items: make(map[string]model.Venue)}
}

func (m *memVenues) Get(_ context.Context, id string) (model.Venue, bool, error) {
	v, ok := m.items[id]
	return v, ok, nil
}

func (m *memVenues) Insert(_ context.Context, v model.Venue) (model.Venue, error) {
	if _, ok := m.items[v.ID]; ok {
		return model.Venue{}, docstore.ErrDuplicate
	}
	v.Rev = 1
	m.items[v.ID] = v
	m.order = append(m.order, v.ID)
	return v, nil
}

func (m *memVenues) Put(_ context.Context, v model.Venue) (model.Venue, error) {
	if existing, ok := m.items[v.ID]; ok {
		v.Rev = existing.Rev + 1
	} else {
		v.Rev = 1
		m.order = append(m.order, v.ID)
	}
	m.items[v.ID] = v
	return v, nil
}

func (m *memVenues) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memVenues) List(_ context.Context) ([]model.Venue, error) {
	out := make([]model.Venue, 0, len(m.items))
	for _, id := range m.order {
		if v, ok := m.items[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVenues) FindByNameAndAddress(ctx context.Context, name, address string) (model.Venue, bool, error) {
	venues, _ := m.List(ctx)
	for _, v := range venues {
		if strings.EqualFold(strings.TrimSpace(v.Name), strings.TrimSpace(name)) &&
			strings.EqualFold(strings.TrimSpace(v.Address), strings.TrimSpace(address)) {
			return v, true, nil
		}
	}
	return model.Venue{}, false, nil
}

type memSessions struct {
	order []string
	items map[string]model.Session
}

func newMemSessions() *memSessions {
	return &memSessions{items: make(map[string]model.Session)}
}

func (m *memSessions) Get(_ context.Context, id string) (model.Session, bool, error) {
	s, ok := m.items[id]
	return s, ok, nil
}

func (m *memSessions) Insert(_ context.Context, s model.Session) (model.Session, error) {
	if _, ok := m.items[s.ID]; ok {
		return model.Session{}, docstore.ErrDuplicate
	}
	s.Rev = 1
	m.items[s.ID] = s
	m.order = append(m.order, s.ID)
	return s, nil
}

func (m *memSessions) Put(_ context.Context, s model.Session) (model.Session, error) {
	if existing, ok := m.items[s.ID]; ok {
		s.Rev = existing.Rev + 1
	} else {
		s.Rev = 1
		m.order = append(m.order, s.ID)
	}
	m.items[s.ID] = s
	return s, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memSessions) List(_ context.Context) ([]model.Session, error) {
	out := make([]model.Session, 0, len(m.items))
	for _, id := range m.order {
		if s, ok := m.items[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSessions) ListByConference(ctx context.Context, conferenceID string) ([]model.Session, error) {
	sessions, _ := m.List(ctx)
	var out []model.Session
	for _, s := range sessions {
		if s.ConferenceID == conferenceID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memAttendees struct {
	order []string
	items map[string]model.Attendee
}

func newMemAttendees() *memAttendees {
	return &memAttendees{items: make(map[string]model.Attendee)}
}

func (m *memAttendees) Get(_ context.Context, id string) (model.Attendee, bool, error) {
	a, ok := m.items[id]
	return a, ok, nil
}

func (m *memAttendees) Insert(_ context.Context, a model.Attendee) (model.Attendee, error) {
	if _, ok := m.items[a.ID]; ok {
		return model.Attendee{}, docstore.ErrDuplicate
	}
	a.Rev = 1
	m.items[a.ID] = a
	m.order = append(m.order, a.ID)
	return a, nil
}

func (m *memAttendees) Put(_ context.Context, a model.Attendee) (model.Attendee, error) {
	if existing, ok := m.items[a.ID]; ok {
		a.Rev = existing.Rev + 1
	} else {
		a.Rev = 1
		m.order = append(m.order, a.ID)
	}
	m.items[a.ID] = a
	return a, nil
}

func (m *memAttendees) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memAttendees) List(_ context.Context) ([]model.Attendee, error) {
	out := make([]model.Attendee, 0, len(m.items))
	for _, id := range m.order {
		if a, ok := m.items[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAttendees) FindByEmail(ctx context.Context, email string) (model.Attendee, bool, error) {
	attendees, _ := m.List(ctx)
	for _, a := range attendees {
		if strings.EqualFold(a.Email, email) {
			return a, true, nil
		}
	}
	return model.Attendee{}, false, nil
}

type memCalls struct {
	order []string
	items map[string]model.CallForPaper
}

func newMemCalls() *memCalls {
	return &memCalls{items: make(map[string]model.CallForPaper)}
}

func (m *memCalls) Get(_ context.Context, id string) (model.CallForPaper, bool, error) {
	c, ok := m.items[id]
	return c, ok, nil
}

func (m *memCalls) Insert(_ context.Context, c model.CallForPaper) (model.CallForPaper, error) {
	if _, ok := m.items[c.ID]; ok {
		return model.CallForPaper{}, docstore.ErrDuplicate
	}
	c.Rev = 1
	m.items[c.ID] = c
	m.order = append(m.order, c.ID)
	return c, nil
}

func (m *memCalls) Put(_ context.Context, c model.CallForPaper) (model.CallForPaper, error) {
	if existing, ok := m.items[c.ID]; ok {
		c.Rev = existing.Rev + 1
	} else {
		c.Rev = 1
		m.order = append(m.order, c.ID)
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *memCalls) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memCalls) List(_ context.Context) ([]model.CallForPaper, error) {
	out := make([]model.CallForPaper, 0, len(m.items))
	for _, id := range m.order {
		if c, ok := m.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCalls) ListOpen(ctx context.Context) ([]model.CallForPaper, error) {
	calls, _ := m.List(ctx)
	var out []model.CallForPaper
	for _, c := range calls {
		if c.IsOpen {
			out = append(out, c)
		}
	}
	return out, nil
}

type memAgendaDays struct {
	order    []string
	items    map[string]model.AgendaDay
	sessions *memSessions

	// staleOnSave forces the next conditional write to fail, simulating a
	// concurrent writer.
	staleOnSave bool
}

func newMemAgendaDays(sessions *memSessions) *memAgendaDays {
	return &memAgendaDays{items: make(map[string]model.AgendaDay), sessions: sessions}
}

func (m *memAgendaDays) Get(_ context.Context, id string) (model.AgendaDay, bool, error) {
	d, ok := m.items[id]
	return d, ok, nil
}

func (m *memAgendaDays) Insert(_ context.Context, d model.AgendaDay) (model.AgendaDay, error) {
	if _, ok := m.items[d.ID]; ok {
		return model.AgendaDay{}, docstore.ErrDuplicate
	}
	d.Rev = 1
	m.items[d.ID] = d
	m.order = append(m.order, d.ID)
	return d, nil
}

func (m *memAgendaDays) Put(_ context.Context, d model.AgendaDay) (model.AgendaDay, error) {
	if existing, ok := m.items[d.ID]; ok {
		d.Rev = existing.Rev + 1
	} else {
		d.Rev = 1
		m.order = append(m.order, d.ID)
	}
	m.items[d.ID] = d
	return d, nil
}

func (m *memAgendaDays) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memAgendaDays) List(_ context.Context) ([]model.AgendaDay, error) {
	out := make([]model.AgendaDay, 0, len(m.items))
	for _, id := range m.order {
		if d, ok := m.items[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memAgendaDays) ListByConference(ctx context.Context, conferenceID string) ([]model.AgendaDay, error) {
	days, _ := m.List(ctx)
	var out []model.AgendaDay
	for _, d := range days {
		if d.ConferenceID == conferenceID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memAgendaDays) UpdateConditional(_ context.Context, day model.AgendaDay) error {
	existing, ok := m.items[day.ID]
	if !ok || existing.Rev != day.Rev || m.staleOnSave {
		return docstore.ErrStale
	}
	day.Rev++
	m.items[day.ID] = day
	return nil
}

func (m *memAgendaDays) SavePlacement(ctx context.Context, day model.AgendaDay, session model.Session) error {
	if err := m.UpdateConditional(ctx, day); err != nil {
		return err
	}
	_, err := m.sessions.Put(ctx, session)
	return err
}
