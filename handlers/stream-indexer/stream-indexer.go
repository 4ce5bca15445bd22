package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/cool-develope/cloudbreak-infra-sub000/dynamoutils"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/dyndao"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/projection"
	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/searchdao"
)

var pipeline *projection.Pipeline

func init() {
	searchClient, err := searchdao.CreateSearchClient(os.Getenv("SEARCH_ENDPOINT"))
	if err != nil {
		log.Fatalf("unable to create search client, %v", err)
	}

	membershipDao := dyndao.NewDynMembershipDao(dynamoutils.CreateAwsClient(), os.Getenv("TABLE_NAME"))
	pipeline = projection.NewPipeline(searchdao.NewWriter(searchClient), membershipDao)
}

// A returned error makes the platform redeliver the whole batch; the
// operation shapes are idempotent so reprocessing is safe.
func handler(ctx context.Context, evt events.DynamoDBEvent) error {
	return pipeline.Run(ctx, domain.FromDynamoDBEvent(evt))
}

func main() {
	lambda.Start(handler)
}
