package tracker

import "time"

// SetNowFunc overrides the engine clock for deterministic tests.
func (e *Engine) SetNowFunc(now func() time.Time) {
	e.now = now
}
