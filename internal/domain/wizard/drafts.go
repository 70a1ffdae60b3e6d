package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"life-reloaded/internal/domain/area"
)

var (
	ErrNoActiveDraft    = errors.New("no active draft")
	ErrUnknownArea      = errors.New("unknown area")
	ErrNotRelationships = errors.New("active draft is not relationships")
	ErrNotPersonal      = errors.New("active draft is not personal")
	ErrPersonNotFound   = errors.New("person not found")
)

// Drafts holds the single active draft being edited. Opening another area
// replaces the slot and silently drops unsaved edits.
type Drafts struct {
	active    area.Draft
	personSeq int
}

func (s *Drafts) Active() (area.Draft, bool) {
	if s.active == nil {
		return nil, false
	}
	return s.active, true
}

func (s *Drafts) ActiveID() (area.ID, bool) {
	if s.active == nil {
		return "", false
	}
	return s.active.Area(), true
}

// Open loads the committed draft for id, or the area default, into the slot.
func (s *Drafts) Open(configs area.Configs, id area.ID) (area.Draft, error) {
	if committed, ok := configs[id]; ok {
		s.active = committed.Clone()
		return s.active, nil
	}
	d := area.Default(id)
	if d == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArea, id)
	}
	s.active = d
	return s.active, nil
}

func (s *Drafts) Edit(field string, value any) error {
	if s.active == nil {
		return ErrNoActiveDraft
	}
	return s.active.Set(field, value)
}

func (s *Drafts) Clear() {
	s.active = nil
}

func (s *Drafts) relationships() (*area.RelationshipsDraft, error) {
	if s.active == nil {
		return nil, ErrNoActiveDraft
	}
	r, ok := s.active.(*area.RelationshipsDraft)
	if !ok {
		return nil, ErrNotRelationships
	}
	return r, nil
}

func (s *Drafts) personal() (*area.PersonalDraft, error) {
	if s.active == nil {
		return nil, ErrNoActiveDraft
	}
	p, ok := s.active.(*area.PersonalDraft)
	if !ok {
		return nil, ErrNotPersonal
	}
	return p, nil
}

func (s *Drafts) AddPerson() (area.Person, error) {
	r, err := s.relationships()
	if err != nil {
		return area.Person{}, err
	}

	p := area.Person{ID: s.nextPersonID(r.People), Quality: area.DefaultQuality}
	r.People = append(r.People, p)
	return p, nil
}

func (s *Drafts) RemovePerson(id string) error {
	r, err := s.relationships()
	if err != nil {
		return err
	}

	out := make([]area.Person, 0, len(r.People))
	for _, p := range r.People {
		if p.ID != id {
			out = append(out, p)
		}
	}
	if len(out) == len(r.People) {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
	}
	r.People = out
	return nil
}

func (s *Drafts) UpdatePerson(id, field string, value any) (area.Person, error) {
	r, err := s.relationships()
	if err != nil {
		return area.Person{}, err
	}

	for i := range r.People {
		if r.People[i].ID != id {
			continue
		}
		if err := r.People[i].Set(field, value); err != nil {
			return area.Person{}, err
		}
		return r.People[i], nil
	}
	return area.Person{}, fmt.Errorf("%w: %s", ErrPersonNotFound, id)
}

func (s *Drafts) AddHobby(hobby string) (bool, error) {
	p, err := s.personal()
	if err != nil {
		return false, err
	}
	return p.AddHobby(hobby), nil
}

func (s *Drafts) RemoveHobby(hobby string) (bool, error) {
	p, err := s.personal()
	if err != nil {
		return false, err
	}
	return p.RemoveHobby(hobby), nil
}

// nextPersonID advances the counter past any id already in people, which
// matters when a committed relationships draft is re-opened.
func (s *Drafts) nextPersonID(people []area.Person) string {
	taken := make(map[string]struct{}, len(people))
	for _, p := range people {
		taken[p.ID] = struct{}{}
	}
	for {
		s.personSeq++
		id := strconv.Itoa(s.personSeq)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}
