package main

import (
	"context"
	"encoding/json"
	"os"
	"slices"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/cool-develope/cloudbreak-infra-sub000/dynamoutils"
)

var client *dynamodb.Client

func init() {
	client = dynamoutils.CreateAwsPrivateClient()
}

// Creates the platform table in a development environment. Production
// tables come from the deployment stack, not from here.
func handler(_ context.Context, _ json.RawMessage) error {
	tableName := os.Getenv("TABLE_NAME")

	existingTableNames, err := dynamoutils.GetExistingTableNames(client)

	if err != nil {
		return err
	}

	if !slices.Contains(existingTableNames, tableName) {
		_, err = dynamoutils.CreatePlatformTable(client, tableName)
		if err != nil {
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(handler)
}
