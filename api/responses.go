package api

import (
	"time"

	"github.com/cityworks/facilitybooking/internal/domain"
)

// Wire representations. Field names match what the booking front end and the
// reporting screens already consume, so they are mapped explicitly instead of
// serializing domain structs directly.

type facilityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Amenities   string `json:"amenities"`
	Status      string `json:"status"`
	CreatedDate string `json:"createdDate"`
}

type bookingResponse struct {
	ID                int64             `json:"id"`
	FacilityID        int64             `json:"facilityId"`
	Facility          *facilityResponse `json:"facility,omitempty"`
	RequesterName     string            `json:"requesterName"`
	RequesterEmail    string            `json:"requesterEmail"`
	RequesterPhone    string            `json:"requesterPhone"`
	BookingDate       string            `json:"bookingDate"`
	StartTime         string            `json:"startTime"`
	EndTime           string            `json:"endTime"`
	Purpose           string            `json:"purpose"`
	ExpectedAttendees int               `json:"expectedAttendees"`
	Status            string            `json:"status"`
	RequestDate       string            `json:"requestDate"`
	AdminNotes        string            `json:"adminNotes"`
}

type inspectionResponse struct {
	ID                int64            `json:"id"`
	BookingID         int64            `json:"bookingId"`
	Booking           *bookingResponse `json:"booking,omitempty"`
	InspectorName     string           `json:"inspectorName"`
	InspectorContact  string           `json:"inspectorContact"`
	InspectionDate    string           `json:"inspectionDate"`
	ConditionBefore   string           `json:"conditionBefore"`
	ConditionAfter    string           `json:"conditionAfter"`
	DamagesFound      bool             `json:"damagesFound"`
	DamageDescription string           `json:"damageDescription"`
	DamagePhotos      string           `json:"damagePhotos"`
	InspectionNotes   string           `json:"inspectionNotes"`
}

func toFacilityResponse(f *domain.Facility) *facilityResponse {
	if f == nil {
		return nil
	}
	return &facilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Type:        string(f.Type),
		Location:    f.Location,
		Description: f.Description,
		Capacity:    f.Capacity,
		Amenities:   f.Amenities,
		Status:      string(f.Status),
		CreatedDate: f.CreatedDate.Format(time.RFC3339),
	}
}

func toBookingResponse(b *domain.Booking) *bookingResponse {
	if b == nil {
		return nil
	}
	return &bookingResponse{
		ID:                b.ID,
		FacilityID:        b.FacilityID,
		Facility:          toFacilityResponse(b.Facility),
		RequesterName:     b.RequesterName,
		RequesterEmail:    b.RequesterEmail,
		RequesterPhone:    b.RequesterPhone,
		BookingDate:       b.BookingDate.Format("2006-01-02"),
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		Purpose:           b.Purpose,
		ExpectedAttendees: b.ExpectedAttendees,
		Status:            string(b.Status),
		RequestDate:       b.RequestDate.Format(time.RFC3339),
		AdminNotes:        b.AdminNotes,
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *toBookingResponse(&bookings[i]))
	}
	return out
}

func toInspectionResponse(in *domain.Inspection) *inspectionResponse {
	if in == nil {
		return nil
	}
	return &inspectionResponse{
		ID:                in.ID,
		BookingID:         in.BookingID,
		Booking:           toBookingResponse(in.Booking),
		InspectorName:     in.InspectorName,
		InspectorContact:  in.InspectorContact,
		InspectionDate:    in.InspectionDate.Format(time.RFC3339),
		ConditionBefore:   in.ConditionBefore,
		ConditionAfter:    in.ConditionAfter,
		DamagesFound:      in.DamagesFound,
		DamageDescription: in.DamageDescription,
		DamagePhotos:      in.DamagePhotos,
		InspectionNotes:   in.InspectionNotes,
	}
}

func toInspectionResponses(inspections []domain.Inspection) []inspectionResponse {
	out := make([]inspectionResponse, 0, len(inspections))
	for i := range inspections {
		out = append(out, *toInspectionResponse(&inspections[i]))
	}
	return out
}
