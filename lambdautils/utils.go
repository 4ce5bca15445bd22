package lambdautils

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// ReindexParameters is the payload of the reindex function. An empty index
// list rebuilds every search index.
type ReindexParameters struct {
	Indexes []string `json:"indexes"`
	RunID   string   `json:"runId"`
}

func CreateNewClient() *lambda.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")),
		config.WithClientLogMode(aws.LogRetries),
	)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := lambda.NewFromConfig(cfg)
	return client
}

// InvokeReindexAsync fires the reindex function without waiting for it; a
// rebuild can outlive the caller's own invocation window.
func InvokeReindexAsync(client *lambda.Client, params ReindexParameters) error {
	paramsJson, err := json.Marshal(params)

	if err != nil {
		return err
	}
	_, err = client.Invoke(context.TODO(), &lambda.InvokeInput{
		FunctionName:   aws.String(reindexFunctionName()),
		InvocationType: "Event",
		Payload:        paramsJson,
	})

	return err
}

func reindexFunctionName() string {
	if name := os.Getenv("REINDEX_FUNCTION"); name != "" {
		return name
	}
	return "Reindex"
}
