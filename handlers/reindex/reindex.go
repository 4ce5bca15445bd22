package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/cool-develope/cloudbreak-infra-sub000/dynamoutils"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/dyndao"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/projection"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/searchdao"
	"github.com/cool-develope/cloudbreak-infra-sub000/lambdautils"
	"github.com/cool-develope/cloudbreak-infra-sub000/utils"
)

var client *dynamodb.Client
var pipeline *projection.Pipeline
var tableName string

func init() {
	searchClient, err := searchdao.CreateSearchClient(os.Getenv("SEARCH_ENDPOINT"))
	if err != nil {
		log.Fatalf("unable to create search client, %v", err)
	}

	client = dynamoutils.CreateAwsClient()
	tableName = os.Getenv("TABLE_NAME")
	pipeline = projection.NewPipeline(searchdao.NewWriter(searchClient), dyndao.NewDynMembershipDao(client, tableName))
}

// handler replays the whole table through the projection pipeline as
// synthetic inserts. The indexes are derived data and may be rebuilt at any
// point; upsert-shaped operations make replaying over live documents safe.
func handler(ctx context.Context, evt json.RawMessage) error {
	params := &lambdautils.ReindexParameters{}
	if err := json.Unmarshal(evt, params); err != nil {
		return err
	}
	if params.RunID == "" {
		params.RunID = uuid.NewString()
	}

	log.Printf("Reindex run '%v' starting for indexes %v\n", params.RunID, params.Indexes)

	retrier := utils.NewDefaultRetrier[*dynamodb.ScanOutput]()

	var lastKey map[string]types.AttributeValue
	scannedItems := 0

	for {
		result, err := retrier.DoWithReturn(func() (*dynamodb.ScanOutput, error) {
			return client.Scan(ctx, &dynamodb.ScanInput{
				TableName:         aws.String(tableName),
				ExclusiveStartKey: lastKey,
			})
		})
		if err != nil {
			return err
		}

		records := make([]domain.ChangeRecord, 0, len(result.Items))
		for _, item := range result.Items {
			record, ok := syntheticInsert(item)
			if !ok {
				continue
			}
			records = append(records, record)
		}
		scannedItems += len(result.Items)

		if err := pipeline.RunIndexes(ctx, records, params.Indexes); err != nil {
			return err
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	log.Printf("Reindex run '%v' completed: %v items scanned\n", params.RunID, scannedItems)

	return nil
}

// syntheticInsert turns a scanned item into the change record its original
// insert would have produced.
func syntheticInsert(item map[string]types.AttributeValue) (domain.ChangeRecord, bool) {
	pk, pkOk := item["pk"].(*types.AttributeValueMemberS)
	sk, skOk := item["sk"].(*types.AttributeValueMemberS)
	if !pkOk || !skOk {
		return domain.ChangeRecord{}, false
	}

	return domain.ChangeRecord{
		Kind:     domain.KindInsert,
		Pk:       pk.Value,
		Sk:       sk.Value,
		NewImage: item,
	}, true
}

func main() {
	lambda.Start(handler)
}
