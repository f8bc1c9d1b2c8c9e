package services

import (
	"context"

	"github.com/ArowuTest/committee-manager/internal/models"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . CommitteeService,AuthService

// CommitteeService defines the operations of the committee registry
type CommitteeService interface {
	// Name returns the committee name
	Name() string

	// UnitPrice returns the exact amount every member must pay
	UnitPrice() int

	// AddMember appends an unpaid member, failing once the committee is full
	AddMember(id int, name string) (models.Member, error)

	// CollectPayment marks the first member with the given id as paid
	CollectPayment(id int, amount int) (models.Member, error)

	// MemberStatus lists all members in insertion order
	MemberStatus() []models.Member

	// Status returns the committee metadata together with its members
	Status() models.CommitteeStatus

	// ConductLuckyDraw picks a random paid member
	ConductLuckyDraw() (models.DrawResult, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	// Login checks admin credentials and returns a signed token
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
}
