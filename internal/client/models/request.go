package models

import (
	"errors"
	"strings"
)

// Urgency says how soon the requested blood is needed.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyScheduled Urgency = "scheduled"
)

// Urgencies lists every urgency, most pressing first.
var Urgencies = []Urgency{UrgencyEmergency, UrgencyUrgent, UrgencyScheduled}

var ErrUnknownUrgency = errors.New("unknown urgency")

// ParseUrgency accepts an urgency name in any letter case.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case UrgencyEmergency, UrgencyUrgent, UrgencyScheduled:
		return u, nil
	}
	return "", ErrUnknownUrgency
}

// RequestStatus tracks a blood request through review.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// RequestedDateLayout is the ISO-8601 form used for locally stamped
// requests: UTC with millisecond precision.
const RequestedDateLayout = "2006-01-02T15:04:05.000Z"

// BloodRequest asks for a number of units of one blood group for a patient.
// RequestedDate is kept verbatim as the server sent it.
type BloodRequest struct {
	ID            string        `json:"id"`
	PatientName   string        `json:"patientName"`
	BloodGroup    BloodGroup    `json:"bloodGroup"`
	Units         int           `json:"units"`
	Hospital      string        `json:"hospital"`
	Urgency       Urgency       `json:"urgency"`
	Status        RequestStatus `json:"status"`
	RequestedDate string        `json:"requestedDate"`
}

// RequestInput carries the fields of the request form.
type RequestInput struct {
	PatientName string     `json:"patientName"`
	BloodGroup  BloodGroup `json:"bloodGroup"`
	Units       int        `json:"units"`
	Hospital    string     `json:"hospital"`
	Urgency     Urgency    `json:"urgency"`
}

// NewBloodRequest builds a BloodRequest from form input.
func NewBloodRequest(in RequestInput, id string, status RequestStatus, requestedDate string) BloodRequest {
	return BloodRequest{
		ID:            id,
		PatientName:   in.PatientName,
		BloodGroup:    in.BloodGroup,
		Units:         in.Units,
		Hospital:      in.Hospital,
		Urgency:       in.Urgency,
		Status:        status,
		RequestedDate: requestedDate,
	}
}

// IsPending reports whether the request still awaits a decision.
func (r BloodRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
