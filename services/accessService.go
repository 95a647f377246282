package services

import (
	"CareLink/models"
	"CareLink/repositories"
	"context"
)

// CanAccess is the pure access decision: the owner always sees their own
// data; a doctor sees it only through a link whose permission set allows the
// category. A nil link denies everything except self-access.
func CanAccess(requesterID, ownerID string, category models.Category, link *models.DoctorPatientLink) bool {
	if requesterID == ownerID {
		return true
	}
	if link == nil || link.DoctorID != requesterID || link.PatientID != ownerID {
		return false
	}
	return link.Permissions.Allows(category)
}

// Authorizer gates every resource accessor. It re-reads the link on each
// check so a permission revocation takes effect immediately.
type Authorizer struct {
	links repositories.LinkRepository
}

func NewAuthorizer(links repositories.LinkRepository) *Authorizer {
	return &Authorizer{links: links}
}

// Authorize returns nil when requesterID may touch ownerID's records in the
// given category. A denial is an error, never an empty result: callers must
// be able to tell "no data" from "access denied".
func (a *Authorizer) Authorize(ctx context.Context, requesterID, ownerID string, category models.Category) error {
	if requesterID == ownerID {
		return nil
	}

	link, err := a.links.Find(ctx, requesterID, ownerID)
	if err != nil {
		return err
	}

	if !CanAccess(requesterID, ownerID, category, link) {
		return repositories.ErrNotAuthorized
	}
	return nil
}
