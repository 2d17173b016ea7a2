package request

import "time"

type Type string

const (
	TypeVacation   Type = "vacation"
	TypeExtraShift Type = "extra_shift"
)

func (t Type) IsValid() bool {
	return t == TypeVacation || t == TypeExtraShift
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// transitions lists the allowed status changes.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Request is a vacation or extra shift request submitted by an employee.
// StartDate and EndDate carry calendar days anchored at midnight of the
// application location.
type Request struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	ManagerID    string
	Type         Type
	Status       Status
	StartDate    time.Time
	EndDate      *time.Time
	ProjectName  *string
	Notes        *string
	ApprovedBy   *string
	DecidedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasStartDate is false for records imported without a usable start date.
func (r *Request) HasStartDate() bool {
	return !r.StartDate.IsZero()
}

// LastDay is the end date, or the start date for single-day requests.
func (r *Request) LastDay() time.Time {
	if r.EndDate != nil && !r.EndDate.IsZero() {
		return *r.EndDate
	}
	return r.StartDate
}

// IsActive reports whether the request still counts (not cancelled).
func (r *Request) IsActive() bool {
	return r.Status != StatusCancelled
}

// Approve records a manager decision on a pending request.
func (r *Request) Approve(managerID string, now time.Time) error {
	return r.decide(StatusApproved, managerID, now)
}

// Reject records a manager decision on a pending request.
func (r *Request) Reject(managerID string, now time.Time) error {
	return r.decide(StatusRejected, managerID, now)
}

func (r *Request) decide(to Status, managerID string, now time.Time) error {
	if r.Status != StatusPending {
		return ErrRequestAlreadyProcessed
	}
	if r.ManagerID != managerID {
		return ErrNotRequestManager
	}
	r.Status = to
	r.ApprovedBy = &managerID
	r.DecidedAt = &now
	r.UpdatedAt = now
	return nil
}

// CanCancel reports whether the request can still be cancelled at now:
// it must be pending or approved and start on a later calendar day.
func (r *Request) CanCancel(now time.Time, loc *time.Location) bool {
	return CanTransition(r.Status, StatusCancelled) && r.startsAfter(now, loc)
}

// Cancel withdraws a pending or approved request that has not started yet.
func (r *Request) Cancel(now time.Time, loc *time.Location) error {
	if !CanTransition(r.Status, StatusCancelled) {
		return ErrInvalidTransition
	}
	if !r.startsAfter(now, loc) {
		return ErrRequestAlreadyStarted
	}
	r.Status = StatusCancelled
	r.UpdatedAt = now
	return nil
}

func (r *Request) startsAfter(now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	n := now.In(loc)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	s := r.StartDate.In(loc)
	start := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	return start.After(today)
}
