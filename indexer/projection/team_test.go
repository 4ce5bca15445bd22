package projection

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
)

func TestTeamProjectorInjectsParentClub(t *testing.T) {
	ops, err := TeamProjector{}.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindInsert, Pk: "club#C", Sk: "team#T", NewImage: map[string]types.AttributeValue{
			"pk":   &types.AttributeValueMemberS{Value: "club#C"},
			"sk":   &types.AttributeValueMemberS{Value: "team#T"},
			"name": &types.AttributeValueMemberS{Value: "U19"},
		}},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	// document id comes from the sort key, the club id from the partition
	// key; the record itself carries neither
	assert.Equal(t, "T", ops[0].DocID)
	body, err := json.Marshal(ops[0].Doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"U19","clubId":"C"}`, string(body))
}

func TestTeamProjectorRemoveUsesSortKeyID(t *testing.T) {
	ops, err := TeamProjector{}.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindRemove, Pk: "club#C", Sk: "team#T"},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, domain.ActionDelete, ops[0].Action)
	assert.Equal(t, "T", ops[0].DocID)
}
