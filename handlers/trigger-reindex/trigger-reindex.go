package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	lambdaservice "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/google/uuid"

	"github.com/cool-develope/cloudbreak-infra-sub000/lambdautils"
)

var knownIndexes = map[string]bool{
	"clubs":  true,
	"users":  true,
	"teams":  true,
	"events": true,
}

var lambdaClient *lambdaservice.Client

func init() {
	lambdaClient = lambdautils.CreateNewClient()
}

func handler(_ context.Context, evt json.RawMessage) error {
	params := &lambdautils.ReindexParameters{}
	err := json.Unmarshal(evt, params)
	if err != nil {
		return err
	}

	for _, index := range params.Indexes {
		if !knownIndexes[index] {
			return errors.New("unknown search index: " + index)
		}
	}

	if params.RunID == "" {
		params.RunID = uuid.NewString()
	}

	log.Printf("Triggering reindex run '%v' for indexes %v\n", params.RunID, params.Indexes)

	return lambdautils.InvokeReindexAsync(lambdaClient, *params)
}

func main() {
	lambda.Start(handler)
}
