package complaint

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Open
	InProgress
	Resolved
	Rejected
	Closed
	Reopened
)

var statusNames = map[Status]string{
	Open:       "OPEN",
	InProgress: "IN_PROGRESS",
	Resolved:   "RESOLVED",
	Rejected:   "REJECTED",
	Closed:     "CLOSED",
	Reopened:   "REOPENED",
}

var statusTransitions = kernel.TransitionTable[Status]{
	Open:       {InProgress, Resolved, Closed, Rejected},
	InProgress: {Resolved, Closed, Rejected},
	Resolved:   {Closed, Reopened},
	Reopened:   {InProgress, Resolved, Closed, Rejected},
	Rejected:   {Reopened},
	Closed:     {},
}

func AllStatuses() []Status {
	return []Status{Open, InProgress, Resolved, Rejected, Closed, Reopened}
}

func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, candidate := range statusNames {
		if candidate == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid complaint status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("complaint status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) CanTransitionTo(next Status) bool {
	return statusTransitions.Can(s, next)
}

func (s Status) IsTerminal() bool {
	return statusTransitions.IsTerminal(s)
}

// closesCase reports whether entering s records who settled the complaint.
func (s Status) closesCase() bool {
	return s == Resolved || s == Rejected || s == Closed
}

func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(
			"complaint status", s.String(), next.String(), statusTransitions.Names(s, Status.String),
		)
	}
	return next, nil
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
