package searchdao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
)

// CreateSearchClient builds a client against the search endpoint configured
// by the deployment layer.
func CreateSearchClient(endpoint string) (*opensearch.Client, error) {
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{endpoint},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create search client for '%s': %w", endpoint, err)
	}
	return client, nil
}

// Writer submits bulk instruction lists, one call per destination index.
// There is no retry here: a transport or top-level failure is returned and
// causes the whole triggering batch to be redelivered by the platform.
type Writer struct {
	Client *opensearch.Client
}

var _ domain.BulkWriter = &Writer{}

func NewWriter(client *opensearch.Client) *Writer {
	return &Writer{Client: client}
}

func (w *Writer) Bulk(ctx context.Context, index string, ops []domain.BulkOp) (domain.BulkResult, error) {
	if len(ops) == 0 {
		return domain.BulkResult{}, nil
	}

	body, err := encodeBulkBody(ops)
	if err != nil {
		return domain.BulkResult{}, err
	}

	req := opensearchapi.BulkRequest{
		Index:   index,
		Body:    body,
		Refresh: "true",
	}
	res, err := req.Do(ctx, w.Client)
	if err != nil {
		return domain.BulkResult{}, fmt.Errorf("bulk call to index '%s' failed: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return domain.BulkResult{}, fmt.Errorf("bulk call to index '%s' rejected: %s", index, res.String())
	}

	result, err := decodeBulkResponse(res.Body)
	if err != nil {
		return domain.BulkResult{}, fmt.Errorf("failed to decode bulk response from index '%s': %w", index, err)
	}

	if result.HasFailures() {
		log.Printf("Bulk write to '%v' completed with %v failed items out of %v: %+v\n", index, len(result.Failed), len(ops), result.Failed)
	} else {
		log.Printf("Bulk write to '%v' completed: %v items in %vms\n", index, len(ops), result.Took)
	}

	return result, nil
}

func encodeBulkBody(ops []domain.BulkOp) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)

	for _, op := range ops {
		action := map[string]any{
			op.Action.String(): map[string]any{"_id": op.DocID},
		}
		if err := enc.Encode(action); err != nil {
			return nil, err
		}

		switch op.Action {
		case domain.ActionIndex:
			if err := enc.Encode(op.Doc); err != nil {
				return nil, err
			}
		case domain.ActionUpdate:
			body := map[string]any{}
			if op.Script != nil {
				body["script"] = op.Script
				if op.Upsert != nil {
					body["upsert"] = op.Upsert
				}
			} else {
				body["doc"] = op.Doc
				if op.DocAsUpsert {
					body["doc_as_upsert"] = true
				}
			}
			if err := enc.Encode(body); err != nil {
				return nil, err
			}
		case domain.ActionDelete:
			// action line only
		}
	}

	return buf, nil
}

type bulkResponse struct {
	Took   int                           `json:"took"`
	Errors bool                          `json:"errors"`
	Items  []map[string]bulkResponseItem `json:"items"`
}

type bulkResponseItem struct {
	ID     string `json:"_id"`
	Status int    `json:"status"`
	Error  *struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}

func decodeBulkResponse(body io.Reader) (domain.BulkResult, error) {
	var decoded bulkResponse
	if err := json.NewDecoder(body).Decode(&decoded); err != nil {
		return domain.BulkResult{}, err
	}

	result := domain.BulkResult{Took: decoded.Took}
	if !decoded.Errors {
		return result, nil
	}

	for _, item := range decoded.Items {
		for _, outcome := range item {
			if outcome.Error == nil {
				continue
			}
			result.Failed = append(result.Failed, domain.ItemFailure{
				DocID:  outcome.ID,
				Status: outcome.Status,
				Type:   outcome.Error.Type,
				Reason: outcome.Error.Reason,
			})
		}
	}
	return result, nil
}
