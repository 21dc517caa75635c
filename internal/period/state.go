package period

import "fmt"

// Status is the load state of one stage of the year → month → resources chain.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// Stage is one step of the chain.
type Stage struct {
	Status Status
	Err    error
}

func (s Stage) Loaded() bool { return s.Status == StatusLoaded }

func (s Stage) Failed() bool { return s.Status == StatusError }

func isAllowedTransition(from, to Status) bool {
	switch from {
	case StatusIdle:
		return to == StatusLoading
	case StatusLoading:
		return to == StatusLoaded || to == StatusError
	default:
		return false
	}
}

// transition moves s from its current status to `to`, recording err for the
// error status.
func (s *Stage) transition(to Status, err error) error {
	if !isAllowedTransition(s.Status, to) {
		return fmt.Errorf("disallowed stage transition: %s -> %s", s.Status, to)
	}
	s.Status = to
	s.Err = err
	return nil
}
