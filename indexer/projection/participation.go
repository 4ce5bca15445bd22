package projection

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

// appendParticipantScript adds the user to the event's participant list,
// initializing it when absent and skipping duplicates so redelivery is safe.
const appendParticipantScript = "if (ctx._source.participants == null) { ctx._source.participants = [params.userId] } else if (!ctx._source.participants.contains(params.userId)) { ctx._source.participants.add(params.userId) }"

// EventParticipationProjector appends accepted users to the participant
// list of the event document. It is append-only: a decline after an
// acceptance, or a removed mark, leaves the list untouched. That asymmetry
// is the table's contract, not an oversight of this projector.
type EventParticipationProjector struct{}

func (EventParticipationProjector) Index() string { return "events" }

func (EventParticipationProjector) Project(_ context.Context, records []domain.ChangeRecord) ([]domain.BulkOp, error) {
	var ops []domain.BulkOp

	for _, record := range records {
		if record.Kind == domain.KindRemove {
			continue
		}

		var participation models.EventParticipation
		if err := attributevalue.UnmarshalMap(record.NewImage, &participation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participation for '%s'/'%s': %w", record.Pk, record.Sk, err)
		}
		if !participation.Accepted {
			continue
		}

		eventID := models.KeyID(record.Pk, models.EventPrefix)
		userID := models.KeyID(record.Sk, models.UserPrefix)

		ops = append(ops, domain.ScriptOp(eventID,
			domain.Script{
				Source: appendParticipantScript,
				Lang:   "painless",
				Params: map[string]any{"userId": userID},
			},
			map[string]any{"participants": []string{userID}},
		))
	}

	return ops, nil
}
