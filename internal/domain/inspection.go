package domain

import "time"

type Inspection struct {
	ID                int64
	BookingID         int64
	Booking           *Booking
	InspectorName     string
	InspectorContact  string
	InspectionDate    time.Time
	ConditionBefore   string
	ConditionAfter    string
	DamagesFound      bool
	DamageDescription string
	DamagePhotos      string
	InspectionNotes   string
}
