// Package usecase hosts the business rules. This file is the shared
// authorization policy: every check takes the explicit caller identity
// and the facts about the target record, and runs before any mutation
// touches the store.
package usecase

import "github.com/mentortrack/backend/domain"

// RequireRole rejects callers whose role differs from the required one.
func RequireRole(actor domain.Actor, role domain.Role) error {
	if actor.UserID == 0 {
		return domain.ErrInvalidCredentials
	}
	if actor.Role != role {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireMentor rejects non-mentor callers.
func RequireMentor(actor domain.Actor) error {
	return RequireRole(actor, domain.RoleMentor)
}

// RequireOwner rejects callers who are not the mentor of the mentorship.
func RequireOwner(actor domain.Actor, mentorship *domain.Mentorship) error {
	if mentorship == nil {
		return domain.ErrInvalidMentorship
	}
	if err := RequireMentor(actor); err != nil {
		return err
	}
	if mentorship.MentorID != actor.UserID {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireParticipant rejects callers who are neither side of the
// mentorship.
func RequireParticipant(actor domain.Actor, mentorship *domain.Mentorship) error {
	if mentorship == nil {
		return domain.ErrInvalidMentorship
	}
	if actor.UserID == 0 {
		return domain.ErrInvalidCredentials
	}
	if !mentorship.HasParticipant(actor.UserID) {
		return domain.ErrUnauthorized
	}
	return nil
}
