package domain

import "time"

type FacilityStatus string

const (
	FacilityStatusAvailable        FacilityStatus = "Available"
	FacilityStatusUnderMaintenance FacilityStatus = "Under Maintenance"
	FacilityStatusBooked           FacilityStatus = "Booked"
)

type FacilityType string

const (
	FacilityTypeBuilding FacilityType = "Building"
	FacilityTypePark     FacilityType = "Park"
	FacilityTypeFacility FacilityType = "Facility"
)

type Facility struct {
	ID          int64
	Name        string
	Type        FacilityType
	Location    string
	Description string
	Capacity    int
	Amenities   string
	Status      FacilityStatus
	CreatedDate time.Time
}
