package services

import (
	"fmt"
	"time"

	"github.com/ArowuTest/committee-manager/internal/models"
	"github.com/ArowuTest/committee-manager/pkg/random"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	// MaxMembers is the number of seats in a committee
	MaxMembers = 5

	// DefaultUnitPrice is the contribution each member pays
	DefaultUnitPrice = 1000
)

// Compile-time check to ensure CommitteeServiceImpl implements CommitteeService
var _ CommitteeService = (*CommitteeServiceImpl)(nil)

// CommitteeServiceImpl is the in-memory committee registry.
// It is not safe for concurrent use; callers serialize access.
type CommitteeServiceImpl struct {
	name      string
	unitPrice int
	members   []models.Member
	rnd       random.Source
	now       func() time.Time
}

// NewCommitteeService creates an empty committee.
// A non-positive unitPrice falls back to DefaultUnitPrice.
func NewCommitteeService(name string, unitPrice int, rnd random.Source) *CommitteeServiceImpl {
	if unitPrice <= 0 {
		unitPrice = DefaultUnitPrice
	}
	if rnd == nil {
		rnd = random.New()
	}
	return &CommitteeServiceImpl{
		name:      name,
		unitPrice: unitPrice,
		members:   make([]models.Member, 0, MaxMembers),
		rnd:       rnd,
		now:       time.Now,
	}
}

// Name returns the committee name
func (s *CommitteeServiceImpl) Name() string {
	return s.name
}

// UnitPrice returns the exact payment amount
func (s *CommitteeServiceImpl) UnitPrice() int {
	return s.unitPrice
}

// AddMember appends a new unpaid member. Ids are not checked for uniqueness.
func (s *CommitteeServiceImpl) AddMember(id int, name string) (models.Member, error) {
	if len(s.members) >= MaxMembers {
		slog.Warn("Attempted to add member to full committee", "memberId", id, "capacity", MaxMembers)
		return models.Member{}, ErrCapacityExceeded
	}

	member := models.NewMember(id, name)
	s.members = append(s.members, member)

	slog.Info("Member added", "memberId", id, "name", name, "count", len(s.members))
	return member, nil
}

// CollectPayment validates the amount first, then marks the first member
// with a matching id as paid. Paying twice is not an error.
func (s *CommitteeServiceImpl) CollectPayment(id int, amount int) (models.Member, error) {
	if amount != s.unitPrice {
		slog.Warn("Rejected payment with wrong amount", "memberId", id, "amount", amount, "expected", s.unitPrice)
		return models.Member{}, fmt.Errorf("%w: got %d, want %d", ErrInvalidAmount, amount, s.unitPrice)
	}

	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].MarkPaid()
			slog.Info("Payment collected", "memberId", id, "name", s.members[i].Name, "amount", amount)
			return s.members[i], nil
		}
	}

	slog.Warn("Payment for unknown member", "memberId", id)
	return models.Member{}, ErrMemberNotFound
}

// MemberStatus returns a copy of the members in insertion order
func (s *CommitteeServiceImpl) MemberStatus() []models.Member {
	members := make([]models.Member, len(s.members))
	copy(members, s.members)
	return members
}

// Status returns the committee snapshot
func (s *CommitteeServiceImpl) Status() models.CommitteeStatus {
	members := s.MemberStatus()
	paid := 0
	for _, m := range members {
		if m.IsPaid() {
			paid++
		}
	}
	return models.CommitteeStatus{
		Name:      s.name,
		Capacity:  MaxMembers,
		UnitPrice: s.unitPrice,
		PaidCount: paid,
		Members:   members,
	}
}

// ConductLuckyDraw selects one paid member uniformly at random.
// Member state is left untouched, so the same member can win again.
func (s *CommitteeServiceImpl) ConductLuckyDraw() (models.DrawResult, error) {
	eligible := s.paidMembers()
	if len(eligible) == 0 {
		slog.Warn("Lucky draw attempted with no paid members", "members", len(s.members))
		return models.DrawResult{}, ErrNoEligibleMembers
	}

	winner := eligible[s.rnd.Intn(len(eligible))]
	result := models.DrawResult{
		ID:            uuid.NewString(),
		Winner:        winner,
		EligibleCount: len(eligible),
		DrawnAt:       s.now(),
	}

	slog.Info("Lucky draw conducted", "drawId", result.ID, "winnerId", winner.ID, "winner", winner.Name, "eligible", len(eligible))
	return result, nil
}

// paidMembers returns paid members in insertion order
func (s *CommitteeServiceImpl) paidMembers() []models.Member {
	var paid []models.Member
	for _, m := range s.members {
		if m.IsPaid() {
			paid = append(paid, m)
		}
	}
	return paid
}
