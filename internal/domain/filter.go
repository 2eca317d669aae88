package domain

// Period selects timeslots relative to the current time by their end.
type Period int

const (
	PeriodAll Period = iota
	PeriodFuture
	PeriodPast
)

type TimeslotFilter struct {
	IDs      []string
	Statuses []TimeslotStatus
	Period   Period
}

type BookingFilter struct {
	TimeslotIDs []string
	UserID      string
	Statuses    []BookingStatus
	// Period applies to the timeslot the booking belongs to.
	Period Period
}
