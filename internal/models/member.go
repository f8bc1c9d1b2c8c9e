package models

// PaymentStatus represents whether a member has paid their contribution
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// Member represents a single participant of the committee
type Member struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// NewMember creates an unpaid member
func NewMember(id int, name string) Member {
	return Member{
		ID:            id,
		Name:          name,
		PaymentStatus: PaymentStatusUnpaid,
	}
}

// IsPaid reports whether the member has paid
func (m Member) IsPaid() bool {
	return m.PaymentStatus == PaymentStatusPaid
}

// MarkPaid flips the member to Paid. There is no way back to Unpaid.
func (m *Member) MarkPaid() {
	m.PaymentStatus = PaymentStatusPaid
}

// StatusLabel returns the label shown in member listings
func (m Member) StatusLabel() string {
	if m.IsPaid() {
		return string(PaymentStatusPaid)
	}
	return string(PaymentStatusUnpaid)
}
