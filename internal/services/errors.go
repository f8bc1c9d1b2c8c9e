package services

import "errors"

var (
	ErrCapacityExceeded   = errors.New("committee is full")
	ErrInvalidAmount      = errors.New("invalid payment amount")
	ErrMemberNotFound     = errors.New("member not found")
	ErrNoEligibleMembers  = errors.New("no paid members eligible for lucky draw")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
