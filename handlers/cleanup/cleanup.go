package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/cool-develope/cloudbreak-infra-sub000/dynamoutils"
)

var client *dynamodb.Client

func init() {
	client = dynamoutils.CreateAwsPrivateClient()
}

// Tears down the development table created by the setup function.
func handler() error {
	_, err := dynamoutils.DeleteTable(client, os.Getenv("TABLE_NAME"))
	return err
}

func main() {
	lambda.Start(handler)
}
