package models

import "errors"

// Ledger error values. Controllers translate these into HTTP responses;
// anything else bubbling out of a model method is a storage failure.
var (
	ErrNameRequired       = errors.New("required voter name")
	ErrInvalidVoteKind    = errors.New("invalid vote kind")
	ErrInvalidParticipant = errors.New("invalid participant type")
	ErrInviterRequired    = errors.New("required inviter for guest")
	ErrInvalidDeadline    = errors.New("invalid vote deadline")
	ErrDeadlinePassed     = errors.New("vote deadline has passed")
	ErrCapacityReached    = errors.New("attendee capacity reached")
	ErrVoterNotFound      = errors.New("voter not found")
)
