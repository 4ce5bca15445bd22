package projection

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
)

// Projector turns the records of one bucket into the bulk instruction list
// for its destination index.
type Projector interface {
	Index() string
	Project(ctx context.Context, records []domain.ChangeRecord) ([]domain.BulkOp, error)
}

// documentOps is the shared three-way branch of the metadata projectors:
// insert → full document, modify → upsert-merge, remove → delete by id.
// The document type carries the field stripping: key and bookkeeping
// attributes are not part of its JSON form.
func documentOps[T any](records []domain.ChangeRecord, docID func(domain.ChangeRecord) string, decorate func(doc *T, record domain.ChangeRecord)) ([]domain.BulkOp, error) {
	var ops []domain.BulkOp

	for _, record := range records {
		id := docID(record)

		if record.Kind == domain.KindRemove {
			ops = append(ops, domain.DeleteOp(id))
			continue
		}

		var doc T
		if err := attributevalue.UnmarshalMap(record.NewImage, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal image for '%s'/'%s': %w", record.Pk, record.Sk, err)
		}
		if decorate != nil {
			decorate(&doc, record)
		}

		switch record.Kind {
		case domain.KindInsert:
			ops = append(ops, domain.IndexOp(id, doc))
		case domain.KindModify:
			ops = append(ops, domain.UpsertOp(id, doc))
		}
	}

	return ops, nil
}
