package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusApproved  BookingStatus = "Approved"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCompleted BookingStatus = "Completed"
)

// CanTransition reports whether moving a booking from one status to another
// follows the intended lifecycle: Pending may become Approved or Rejected,
// Approved becomes Completed once an inspection is filed, and Rejected and
// Completed are terminal. The admin status endpoint does not reject writes
// that fall outside this table; it only logs them. Tightening that is a
// product decision, not a code one.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusApproved || to == BookingStatusRejected
	case BookingStatusApproved:
		return to == BookingStatusCompleted
	default:
		return false
	}
}

type Booking struct {
	ID                int64
	FacilityID        int64
	Facility          *Facility
	RequesterName     string
	RequesterEmail    string
	RequesterPhone    string
	BookingDate       time.Time
	StartTime         string
	EndTime           string
	Purpose           string
	ExpectedAttendees int
	Status            BookingStatus
	RequestDate       time.Time
	AdminNotes        string
}
