package models

// CommitteeStatus is a point-in-time snapshot of the committee
type CommitteeStatus struct {
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	UnitPrice int      `json:"unitPrice"`
	PaidCount int      `json:"paidCount"`
	Members   []Member `json:"members"`
}
