package booking

import "slices"

type Status string

const (
	StatusCreated                    Status = "CREATED"
	StatusAwaitingAgencyConfirmation Status = "AWAITING_AGENCY_CONFIRMATION"
	StatusAgencyConfirmed            Status = "AGENCY_CONFIRMED"
	StatusManagerVerified            Status = "MANAGER_VERIFIED"
	StatusMeetingScheduled           Status = "MEETING_SCHEDULED"
	StatusPaymentPending             Status = "PAYMENT_PENDING"
	StatusPaid                       Status = "PAID"
	StatusInProgress                 Status = "IN_PROGRESS"
	StatusCompleted                  Status = "COMPLETED"
	StatusCancelled                  Status = "CANCELLED"
	StatusExpired                    Status = "EXPIRED"
	StatusRejectedByAgency           Status = "REJECTED_BY_AGENCY"
)

// transitions lists the statuses directly reachable from each source.
// Terminal statuses have no entry.
var transitions = map[Status][]Status{
	StatusCreated: {StatusAwaitingAgencyConfirmation},
	StatusAwaitingAgencyConfirmation: {
		StatusAgencyConfirmed,
		StatusRejectedByAgency,
		StatusExpired,
		StatusCancelled,
	},
	StatusAgencyConfirmed:  {StatusManagerVerified, StatusCancelled},
	StatusManagerVerified:  {StatusMeetingScheduled, StatusCancelled},
	StatusMeetingScheduled: {StatusPaymentPending, StatusCancelled},
	StatusPaymentPending:   {StatusPaid, StatusCancelled},
	StatusPaid:             {StatusInProgress, StatusCancelled},
	StatusInProgress:       {StatusCompleted, StatusCancelled},
}

var allStatuses = []Status{
	StatusCreated,
	StatusAwaitingAgencyConfirmation,
	StatusAgencyConfirmed,
	StatusManagerVerified,
	StatusMeetingScheduled,
	StatusPaymentPending,
	StatusPaid,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusExpired,
	StatusRejectedByAgency,
}

func AllStatuses() []Status {
	return slices.Clone(allStatuses)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return slices.Contains(allStatuses, s)
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// Next returns the statuses reachable from s in one step.
func (s Status) Next() []Status {
	return slices.Clone(transitions[s])
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}
