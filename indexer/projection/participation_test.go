package projection

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
)

func participationRecord(kind domain.EventKind, accepted bool) domain.ChangeRecord {
	return domain.ChangeRecord{
		Kind: kind,
		Pk:   "event#77",
		Sk:   "user#9",
		NewImage: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: "event#77"},
			"sk": &types.AttributeValueMemberS{Value: "user#9"},
			"a":  &types.AttributeValueMemberBOOL{Value: accepted},
		},
	}
}

func TestParticipationAcceptAppends(t *testing.T) {
	ops, err := EventParticipationProjector{}.Project(context.Background(), []domain.ChangeRecord{
		participationRecord(domain.KindInsert, true),
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.Equal(t, domain.ActionUpdate, op.Action)
	assert.Equal(t, "77", op.DocID)
	require.NotNil(t, op.Script)
	assert.Equal(t, "9", op.Script.Params["userId"])
	assert.Equal(t, map[string]any{"participants": []string{"9"}}, op.Upsert)
}

func TestParticipationDeclineEmitsNothing(t *testing.T) {
	// append-only by contract: a decline never removes an earlier accept
	ops, err := EventParticipationProjector{}.Project(context.Background(), []domain.ChangeRecord{
		participationRecord(domain.KindModify, false),
	})
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestParticipationRemoveEmitsNothing(t *testing.T) {
	ops, err := EventParticipationProjector{}.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindRemove, Pk: "event#77", Sk: "user#9"},
	})
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestParticipationAcceptViaModify(t *testing.T) {
	// a late accept arrives as a modify of the mark, not an insert
	ops, err := EventParticipationProjector{}.Project(context.Background(), []domain.ChangeRecord{
		participationRecord(domain.KindModify, true),
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "77", ops[0].DocID)
}
