package projection

import (
	"context"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

type ClubProjector struct{}

func (ClubProjector) Index() string { return "clubs" }

func (ClubProjector) Project(_ context.Context, records []domain.ChangeRecord) ([]domain.BulkOp, error) {
	return documentOps[models.Club](records, func(record domain.ChangeRecord) string {
		return models.KeyID(record.Pk, models.ClubPrefix)
	}, nil)
}
