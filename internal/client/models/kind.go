package models

// Kind identifies a record collection. Each kind has its own slot in the
// local store and its own id prefix.
type Kind string

const (
	KindDonors   Kind = "donors"
	KindRequests Kind = "requests"
)

// SlotName is the key the collection is stored under locally.
func (k Kind) SlotName() string {
	switch k {
	case KindDonors:
		return "bbbd_donors"
	case KindRequests:
		return "bbbd_requests"
	default:
		return "bbbd_" + string(k)
	}
}

// IDPrefix is prepended to locally generated ids.
func (k Kind) IDPrefix() string {
	switch k {
	case KindDonors:
		return "D-"
	case KindRequests:
		return "REQ-"
	default:
		return ""
	}
}
