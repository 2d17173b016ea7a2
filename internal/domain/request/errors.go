package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestAlreadyProcessed = errors.New("request already processed")
	ErrRequestAlreadyStarted   = errors.New("request can only be cancelled before its start date")
	ErrInvalidTransition       = errors.New("request status does not allow this action")
	ErrNotRequestOwner         = errors.New("request belongs to another employee")
	ErrNotRequestManager       = errors.New("request is assigned to another manager")
	ErrNoManagerAvailable      = errors.New("no manager available to review the request")
	ErrInvalidManager          = errors.New("assigned user is not a manager")
	ErrEndDateBeforeStartDate  = errors.New("end date must not be before start date")
)
