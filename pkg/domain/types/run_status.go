package types

import "fmt"

// RunStatus represents the outcome of a single agent execution
type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// IsValid checks if the run status is valid
func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusSuccess, RunStatusError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the run status
func (s RunStatus) String() string {
	return string(s)
}

// ParseRunStatus parses a string into a RunStatus
func ParseRunStatus(s string) (RunStatus, error) {
	status := RunStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid run status: %s", s)
	}
	return status, nil
}
