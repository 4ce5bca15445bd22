package projection

import (
	"context"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

type UserProjector struct{}

func (UserProjector) Index() string { return "users" }

func (UserProjector) Project(_ context.Context, records []domain.ChangeRecord) ([]domain.BulkOp, error) {
	return documentOps[models.User](records, func(record domain.ChangeRecord) string {
		return models.KeyID(record.Pk, models.UserPrefix)
	}, nil)
}
