package dynamoutils

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/ratelimit"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

// InvertedIndexName is the secondary index with pk and sk swapped,
// used for "all teams of one user" lookups.
const InvertedIndexName = "invertedIndex"

type TableDefinition struct {
	TableName string

	PartitionKey         AttributeDefinition
	SortKey              AttributeDefinition
	AdditionalAttributes []AttributeDefinition

	SecondaryIndexes []SecondaryIndexDefinition

	StreamEnabled bool
}

type SecondaryIndexDefinition struct {
	IndexName string

	PartitionKeyName string
	SortKeyName      string
}

type AttributeDefinition struct {
	Name       string
	ScalarType types.ScalarAttributeType
}

// PlatformTableDefinition is the single wide table every entity lives in.
// The stream carries both images so projectors can handle removes.
func PlatformTableDefinition(tableName string) TableDefinition {
	return TableDefinition{
		TableName:    tableName,
		PartitionKey: AttributeDefinition{models.PartitionKeyName, types.ScalarAttributeTypeS},
		SortKey:      AttributeDefinition{models.SortKeyName, types.ScalarAttributeTypeS},
		SecondaryIndexes: []SecondaryIndexDefinition{
			{
				IndexName:        InvertedIndexName,
				PartitionKeyName: models.SortKeyName,
				SortKeyName:      models.PartitionKeyName,
			},
		},
		StreamEnabled: true,
	}
}

func CreatePlatformTable(client *dynamodb.Client, tableName string) (*types.TableDescription, error) {
	return CreateTable(client, PlatformTableDefinition(tableName))
}

func CreateTable(client *dynamodb.Client, tableDefinition TableDefinition) (*types.TableDescription, error) {
	var tableDesc *types.TableDescription
	attributeDefinitions := []types.AttributeDefinition{{
		AttributeName: aws.String(tableDefinition.PartitionKey.Name),
		AttributeType: tableDefinition.PartitionKey.ScalarType,
	}}
	if tableDefinition.SortKey.Name != "" {
		attributeDefinitions = append(attributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(tableDefinition.SortKey.Name),
			AttributeType: tableDefinition.SortKey.ScalarType,
		})
	}

	for _, additionalAttribute := range tableDefinition.AdditionalAttributes {
		attributeDefinitions = append(attributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(additionalAttribute.Name),
			AttributeType: additionalAttribute.ScalarType,
		})
	}

	tableSchema := createKeySchema(
		tableDefinition.PartitionKey.Name,
		tableDefinition.SortKey.Name,
	)

	globalSecondaryIndexes := []types.GlobalSecondaryIndex{}
	for _, index := range tableDefinition.SecondaryIndexes {
		indexSchema := createKeySchema(
			index.PartitionKeyName,
			index.SortKeyName,
		)

		globalSecondaryIndexes = append(globalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(index.IndexName),
			KeySchema:  indexSchema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	if len(globalSecondaryIndexes) == 0 {
		globalSecondaryIndexes = nil
	}

	var streamSpecification *types.StreamSpecification
	if tableDefinition.StreamEnabled {
		streamSpecification = &types.StreamSpecification{
			StreamEnabled:  aws.Bool(true),
			StreamViewType: types.StreamViewTypeNewAndOldImages,
		}
	}

	createTableInput := dynamodb.CreateTableInput{
		TableName:              aws.String(tableDefinition.TableName),
		AttributeDefinitions:   attributeDefinitions,
		KeySchema:              tableSchema,
		BillingMode:            types.BillingModePayPerRequest,
		GlobalSecondaryIndexes: globalSecondaryIndexes,
		StreamSpecification:    streamSpecification,
	}

	table, err := client.CreateTable(context.TODO(), &createTableInput)

	if err != nil {
		log.Printf("Couldn't create table %v. Here's why: %v\n", tableDefinition.TableName, err)
	} else {
		waiter := dynamodb.NewTableExistsWaiter(client)
		err = waiter.Wait(context.TODO(), &dynamodb.DescribeTableInput{
			TableName: aws.String(tableDefinition.TableName)}, 5*time.Minute)
		if err != nil {
			log.Printf("Wait for table exists failed. Here's why: %v\n", err)
		}
		tableDesc = table.TableDescription
	}
	return tableDesc, err

}

func CreateAwsClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")),
		config.WithClientLogMode(aws.LogRetries),
		config.WithRetryer(func() aws.Retryer {
			return retry.NewStandard(func(so *retry.StandardOptions) {
				so.RateLimiter = ratelimit.NewTokenRateLimit(1000000)
				so.MaxAttempts = 0
			})
		}),
	)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := dynamodb.NewFromConfig(cfg)
	return client
}

// CreateAwsPrivateClient targets a local endpoint (DDB_URL), for development
// against dynamodb-local.
func CreateAwsPrivateClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")),
		config.WithClientLogMode(aws.LogRetries),
	)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(os.Getenv("DDB_URL"))
		o.Credentials = credentials.NewStaticCredentialsProvider("local", "local", "")
	})
	return client
}

func GetExistingTableNames(client *dynamodb.Client) (tableNames []string, err error) {
	result, err := client.ListTables(context.TODO(), &dynamodb.ListTablesInput{})
	if err != nil {
		return []string{}, err
	}
	return result.TableNames, nil
}

func DeleteTable(client *dynamodb.Client, tableName string) (*dynamodb.DeleteTableOutput, error) {
	table, err := client.DeleteTable(context.TODO(), &dynamodb.DeleteTableInput{TableName: &tableName})

	if err != nil {
		log.Printf("Could not delete table %v: %v\n", tableName, err)
	}

	return table, err
}

func createKeySchema(
	partitionKeyName string, sortKeyName string) []types.KeySchemaElement {
	schema := []types.KeySchemaElement{{
		AttributeName: aws.String(partitionKeyName),
		KeyType:       types.KeyTypeHash,
	}}

	if sortKeyName != "" {
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(sortKeyName),
			KeyType:       types.KeyTypeRange,
		})
	}

	return schema
}
