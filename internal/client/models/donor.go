package models

// DonorStatus tells whether a donor can currently be contacted.
type DonorStatus string

const (
	DonorStatusActive   DonorStatus = "active"
	DonorStatusInactive DonorStatus = "inactive"
)

// Donor is a registered blood donor.
type Donor struct {
	ID               string      `json:"id"`
	FullName         string      `json:"fullName"`
	BloodGroup       BloodGroup  `json:"bloodGroup"`
	Phone            string      `json:"phone"`
	Location         string      `json:"location"`
	LastDonationDate string      `json:"lastDonationDate,omitempty"`
	Status           DonorStatus `json:"status"`
}

// DonorInput carries the fields a person fills in when registering.
// The id and status are assigned by whoever stores the record.
type DonorInput struct {
	FullName         string     `json:"fullName"`
	BloodGroup       BloodGroup `json:"bloodGroup"`
	Phone            string     `json:"phone"`
	Location         string     `json:"location"`
	LastDonationDate string     `json:"lastDonationDate,omitempty"`
}

// NewDonor builds a Donor from user input with the given id and status.
func NewDonor(in DonorInput, id string, status DonorStatus) Donor {
	return Donor{
		ID:               id,
		FullName:         in.FullName,
		BloodGroup:       in.BloodGroup,
		Phone:            in.Phone,
		Location:         in.Location,
		LastDonationDate: in.LastDonationDate,
		Status:           status,
	}
}
