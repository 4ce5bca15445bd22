package domain

import (
	"context"

	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

// BulkWriter submits one ordered instruction list for one destination index.
type BulkWriter interface {
	Bulk(ctx context.Context, index string, ops []BulkOp) (BulkResult, error)
}

// MembershipReader fetches every team-membership row of one user through
// the inverted secondary index.
type MembershipReader interface {
	MembershipsByUser(ctx context.Context, userID string) ([]models.TeamMembership, error)
}
