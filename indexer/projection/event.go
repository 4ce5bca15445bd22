package projection

import (
	"context"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

type EventProjector struct{}

func (EventProjector) Index() string { return "events" }

func (EventProjector) Project(_ context.Context, records []domain.ChangeRecord) ([]domain.BulkOp, error) {
	return documentOps[models.Event](records, func(record domain.ChangeRecord) string {
		return models.KeyID(record.Pk, models.EventPrefix)
	}, nil)
}
