package projection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

type fakeMembershipReader struct {
	byUser  map[string][]models.TeamMembership
	queries []string
}

func (f *fakeMembershipReader) MembershipsByUser(_ context.Context, userID string) ([]models.TeamMembership, error) {
	f.queries = append(f.queries, userID)
	return f.byUser[userID], nil
}

func TestMembershipFullRecompute(t *testing.T) {
	reader := &fakeMembershipReader{byUser: map[string][]models.TeamMembership{
		"U": {
			{Pk: "team#A", Sk: "user#U", Status: models.StatusAccepted, Role: models.RoleMember, ClubID: "C"},
			{Pk: "team#B", Sk: "user#U", Status: models.StatusPending, Role: models.RoleCoach, ClubID: "C"},
		},
	}}
	projector := UserTeamMembershipProjector{Memberships: reader}

	// only team A changed, but the projector must emit the user's full
	// current membership set
	ops, err := projector.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindModify, Pk: "team#A", Sk: "user#U"},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.Equal(t, "U", op.DocID)
	require.NotNil(t, op.Script)

	teams := op.Script.Params["teams"].([]models.UserTeam)
	assert.ElementsMatch(t, []models.UserTeam{
		{TeamID: "A", ClubID: "C", Role: models.RoleMember, Status: models.StatusAccepted},
		{TeamID: "B", ClubID: "C", Role: models.RoleCoach, Status: models.StatusPending},
	}, teams)
}

func TestMembershipDeduplicatesUsersWithinBatch(t *testing.T) {
	reader := &fakeMembershipReader{byUser: map[string][]models.TeamMembership{
		"U": {{Pk: "team#A", Sk: "user#U", Status: models.StatusAccepted}},
		"V": {},
	}}
	projector := UserTeamMembershipProjector{Memberships: reader}

	ops, err := projector.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindInsert, Pk: "team#A", Sk: "user#U"},
		{Kind: domain.KindModify, Pk: "team#B", Sk: "user#U"},
		{Kind: domain.KindRemove, Pk: "team#A", Sk: "user#V"},
	})
	require.NoError(t, err)

	// one recompute per affected user, not per record
	assert.Equal(t, []string{"U", "V"}, reader.queries)
	require.Len(t, ops, 2)

	// a user whose last membership disappeared still gets a replacement
	// with the empty set
	assert.Equal(t, "V", ops[1].DocID)
	assert.Empty(t, ops[1].Script.Params["teams"])
}
