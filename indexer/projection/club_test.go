package projection

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

func clubImage(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk":         &types.AttributeValueMemberS{Value: "club#1"},
		"sk":         &types.AttributeValueMemberS{Value: "metadata"},
		"name":       &types.AttributeValueMemberS{Value: name},
		"modifiedAt": &types.AttributeValueMemberS{Value: "2024-05-01T10:00:00Z"},
	}
}

func TestClubProjectorInsert(t *testing.T) {
	ops, err := ClubProjector{}.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindInsert, Pk: "club#1", Sk: "metadata", NewImage: clubImage("FC Test")},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.Equal(t, domain.ActionIndex, op.Action)
	assert.Equal(t, "1", op.DocID)

	// the document carries the club fields and nothing from the table's
	// key or bookkeeping attributes
	body, err := json.Marshal(op.Doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"FC Test"}`, string(body))
}

func TestClubProjectorModifyIsUpsert(t *testing.T) {
	ops, err := ClubProjector{}.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindModify, Pk: "club#1", Sk: "metadata", NewImage: clubImage("FC Renamed")},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, domain.ActionUpdate, ops[0].Action)
	assert.True(t, ops[0].DocAsUpsert)
	assert.Equal(t, "1", ops[0].DocID)
	assert.Equal(t, "FC Renamed", ops[0].Doc.(models.Club).Name)
}

func TestClubProjectorRemove(t *testing.T) {
	ops, err := ClubProjector{}.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindRemove, Pk: "club#1", Sk: "metadata", OldImage: clubImage("FC Test")},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, domain.ActionDelete, ops[0].Action)
	assert.Equal(t, "1", ops[0].DocID)
	assert.Nil(t, ops[0].Doc)
}

func TestUserProjectorStripsBookkeeping(t *testing.T) {
	ops, err := UserProjector{}.Project(context.Background(), []domain.ChangeRecord{
		{Kind: domain.KindInsert, Pk: "user#9", Sk: "metadata", NewImage: map[string]types.AttributeValue{
			"pk":         &types.AttributeValueMemberS{Value: "user#9"},
			"sk":         &types.AttributeValueMemberS{Value: "metadata"},
			"firstName":  &types.AttributeValueMemberS{Value: "Jo"},
			"modifiedAt": &types.AttributeValueMemberS{Value: "2024-05-01T10:00:00Z"},
		}},
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, "9", ops[0].DocID)
	body, err := json.Marshal(ops[0].Doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Jo"}`, string(body))
}
