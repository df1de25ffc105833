package models

// Stats is the dashboard overview.
//
// SuccessfulDonations is a placeholder estimate (1.5 per donor, rounded
// down), not an aggregate of real donations.
type Stats struct {
	TotalDonors         int `json:"totalDonors"`
	PendingRequests     int `json:"pendingRequests"`
	SuccessfulDonations int `json:"successfulDonations"`

	DonorsSource   Source `json:"-"`
	RequestsSource Source `json:"-"`
}

// NewStats derives the overview from the two collections.
func NewStats(donors []Donor, requests []BloodRequest) Stats {
	pending := 0
	for _, r := range requests {
		if r.IsPending() {
			pending++
		}
	}
	return Stats{
		TotalDonors:         len(donors),
		PendingRequests:     pending,
		SuccessfulDonations: len(donors) * 3 / 2,
	}
}
