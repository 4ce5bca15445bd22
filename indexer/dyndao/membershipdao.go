package dyndao

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/cool-develope/cloudbreak-infra-sub000/dynamoutils"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

// DynMembershipDao reads team-membership rows through the inverted index.
// On that index the partition is the user sort key, so one query returns
// every team of one user; the begins_with condition keeps event
// participation rows (which share the "user#" sort key) out of the result.
type DynMembershipDao struct {
	Client    *dynamodb.Client
	TableName string
}

var _ domain.MembershipReader = &DynMembershipDao{}

func NewDynMembershipDao(client *dynamodb.Client, tableName string) *DynMembershipDao {
	return &DynMembershipDao{Client: client, TableName: tableName}
}

func (dao *DynMembershipDao) MembershipsByUser(ctx context.Context, userID string) ([]models.TeamMembership, error) {
	keyCond := expression.
		Key(models.SortKeyName).Equal(expression.Value(models.UserSK(userID))).
		And(expression.Key(models.PartitionKeyName).BeginsWith(models.TeamPrefix))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build membership query for user '%s': %w", userID, err)
	}

	var memberships []models.TeamMembership
	var startKey map[string]types.AttributeValue

	for {
		output, err := dao.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(dao.TableName),
			IndexName:                 aws.String(dynamoutils.InvertedIndexName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query memberships for user '%s': %w", userID, err)
		}

		var page []models.TeamMembership
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal memberships for user '%s': %w", userID, err)
		}
		memberships = append(memberships, page...)

		if output.LastEvaluatedKey == nil {
			return memberships, nil
		}
		startKey = output.LastEvaluatedKey
	}
}
