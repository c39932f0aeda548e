package flag

import (
	"errors"

	"github.com/google/uuid"
)

var ErrJobNameRequired = errors.New("job name is required")

// Job holds the command line arguments of one worker run.
type Job struct {
	JobName string
	Version string

	// ClientID restricts the run to one client. Empty means every client.
	ClientID string
}

func (j Job) Validate() error {
	if j.JobName == "" {
		return ErrJobNameRequired
	}
	if j.ClientID != "" {
		if _, err := uuid.Parse(j.ClientID); err != nil {
			return err
		}
	}
	return nil
}
