package wizard

import (
	"errors"

	"life-reloaded/internal/domain/area"
)

var ErrValidationFailed = errors.New("validation failed")

// Commit stores a snapshot of d under id when it passes area validation.
// An invalid draft leaves configs untouched.
func Commit(configs area.Configs, id area.ID, d area.Draft) error {
	if !area.Validate(id, d) {
		return ErrValidationFailed
	}
	configs[id] = d.Clone()
	return nil
}
