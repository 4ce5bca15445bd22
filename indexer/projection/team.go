package projection

import (
	"context"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

type TeamProjector struct{}

func (TeamProjector) Index() string { return "teams" }

// A team record is keyed under its club, so the document id comes from the
// sort key and the parent club id from the partition key. The record's own
// attributes never carry the club id.
func (TeamProjector) Project(_ context.Context, records []domain.ChangeRecord) ([]domain.BulkOp, error) {
	return documentOps[models.Team](records, func(record domain.ChangeRecord) string {
		return models.KeyID(record.Sk, models.TeamPrefix)
	}, func(doc *models.Team, record domain.ChangeRecord) {
		doc.ClubID = models.KeyID(record.Pk, models.ClubPrefix)
	})
}
