package area

import (
	"github.com/goccy/go-json"
)

// Configs maps each committed area to its draft snapshot.
type Configs map[ID]Draft

func (c Configs) Has(id ID) bool {
	_, ok := c[id]
	return ok
}

// Complete reports whether every catalog area has a committed draft.
func (c Configs) Complete() bool {
	for _, a := range catalog {
		if !c.Has(a.ID) {
			return false
		}
	}
	return true
}

// Clone deep-copies every draft so the copy shares no mutable state.
func (c Configs) Clone() Configs {
	out := make(Configs, len(c))
	for id, d := range c {
		out[id] = d.Clone()
	}
	return out
}

func (c Configs) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[ID]Draft(c))
}

// UnmarshalJSON decodes each key into its area variant. Unknown area ids
// are dropped; a malformed known entry fails the whole decode.
func (c *Configs) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := make(Configs, len(raw))
	for key, msg := range raw {
		id, ok := Parse(key)
		if !ok {
			continue
		}
		d := Default(id)
		if err := json.Unmarshal(msg, d); err != nil {
			return err
		}
		normalize(d)
		out[id] = d
	}
	*c = out
	return nil
}

// normalize replaces null lists with empty ones after decoding.
func normalize(d Draft) {
	switch v := d.(type) {
	case *RelationshipsDraft:
		if v.People == nil {
			v.People = []Person{}
		}
	case *PersonalDraft:
		if v.Hobbies == nil {
			v.Hobbies = []string{}
		}
	}
}
