package projection

import (
	"context"
	"fmt"
	"sort"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
	"github.com/cool-develope/cloudbreak-infra-sub000/utils"
)

// replaceTeamsScript swaps the whole derived "teams" array of the user
// document. A nested array cannot be patched incrementally without risking
// duplicates or stale entries when several membership changes for the same
// user arrive in one batch, so every change triggers a full recompute from
// the membership rows.
const replaceTeamsScript = "ctx._source.teams = params.teams"

type UserTeamMembershipProjector struct {
	Memberships domain.MembershipReader
}

func (UserTeamMembershipProjector) Index() string { return "users" }

func (p UserTeamMembershipProjector) Project(ctx context.Context, records []domain.ChangeRecord) ([]domain.BulkOp, error) {
	affectedUsers := utils.NewMapSet[string]()
	for _, record := range records {
		affectedUsers.Add(models.KeyID(record.Sk, models.UserPrefix))
	}

	userIDs := affectedUsers.ToSlice()
	sort.Strings(userIDs)

	var ops []domain.BulkOp
	for _, userID := range userIDs {
		memberships, err := p.Memberships.MembershipsByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to recompute teams for user '%s': %w", userID, err)
		}

		teams := make([]models.UserTeam, 0, len(memberships))
		for _, membership := range memberships {
			teams = append(teams, membership.UserTeam())
		}

		ops = append(ops, domain.ScriptOp(userID,
			domain.Script{
				Source: replaceTeamsScript,
				Lang:   "painless",
				Params: map[string]any{"teams": teams},
			},
			map[string]any{"teams": teams},
		))
	}

	return ops, nil
}
