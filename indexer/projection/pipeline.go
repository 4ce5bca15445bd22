package projection

import (
	"context"
	"errors"
	"log"

	"golang.org/x/exp/maps"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
)

// projectorOrder fixes the position of each projector's instructions inside
// its destination's bulk body. Two projectors may share a destination (event
// metadata and participation both target "events", user metadata and team
// membership both target "users"); full-document operations must precede the
// scripted ones so the scripts land on the document the same batch rewrote.
var projectorOrder = []EntityKind{
	EntityClubMetadata,
	EntityUserMetadata,
	EntityEventMetadata,
	EntityTeam,
	EntityEventParticipation,
	EntityUserTeamMembership,
}

// Pipeline fans one change batch out to the per-index projectors, merges
// their instruction lists per destination index and hands each destination
// exactly one bulk call.
type Pipeline struct {
	writer     domain.BulkWriter
	projectors map[EntityKind]Projector
}

func NewPipeline(writer domain.BulkWriter, memberships domain.MembershipReader) *Pipeline {
	return &Pipeline{
		writer: writer,
		projectors: map[EntityKind]Projector{
			EntityClubMetadata:       ClubProjector{},
			EntityUserMetadata:       UserProjector{},
			EntityEventMetadata:      EventProjector{},
			EntityTeam:               TeamProjector{},
			EntityEventParticipation: EventParticipationProjector{},
			EntityUserTeamMembership: UserTeamMembershipProjector{Memberships: memberships},
		},
	}
}

// Run classifies the batch, runs every non-empty bucket's projector and
// submits one bulk call per destination index. The aggregated error makes
// the platform redeliver the whole batch, which every operation shape must
// tolerate (at-least-once).
func (p *Pipeline) Run(ctx context.Context, records []domain.ChangeRecord) error {
	return p.RunIndexes(ctx, records, nil)
}

// RunIndexes restricts a run to the projectors targeting the given
// destination indexes. An empty list means all of them; the reindex path
// uses this to rebuild a subset.
func (p *Pipeline) RunIndexes(ctx context.Context, records []domain.ChangeRecord, indexes []string) error {
	buckets, dropped := ClassifyBatch(records)
	if dropped > 0 {
		log.Printf("Dropped %v records matching no key shape\n", dropped)
	}
	if len(indexes) > 0 {
		wanted := make(map[string]struct{}, len(indexes))
		for _, index := range indexes {
			wanted[index] = struct{}{}
		}
		for kind := range buckets {
			if _, ok := wanted[p.projectors[kind].Index()]; !ok {
				delete(buckets, kind)
			}
		}
	}

	if len(buckets) == 0 {
		return nil
	}

	log.Printf("Projecting %v records into buckets %v\n", len(records), maps.Keys(buckets))

	opsByKind, errs := p.projectBuckets(ctx, buckets)

	perIndex := map[string][]domain.BulkOp{}
	for _, kind := range projectorOrder {
		ops := opsByKind[kind]
		if len(ops) == 0 {
			continue
		}
		index := p.projectors[kind].Index()
		perIndex[index] = append(perIndex[index], ops...)
	}

	errs = append(errs, p.submitBulks(ctx, perIndex)...)

	return errors.Join(errs...)
}

// projectBuckets runs the projectors concurrently. The membership projector
// reads the table, so the phase is I/O-bound and safe to parallelize; each
// projector only turns its own records into instructions.
func (p *Pipeline) projectBuckets(ctx context.Context, buckets map[EntityKind][]domain.ChangeRecord) (map[EntityKind][]domain.BulkOp, []error) {
	type outcome struct {
		kind EntityKind
		ops  []domain.BulkOp
		err  error
	}
	outcomes := make(chan outcome, len(buckets))

	for kind, bucket := range buckets {
		go func(kind EntityKind, projector Projector, bucket []domain.ChangeRecord) {
			ops, err := projector.Project(ctx, bucket)
			outcomes <- outcome{kind: kind, ops: ops, err: err}
		}(kind, p.projectors[kind], bucket)
	}

	//reducer
	opsByKind := map[EntityKind][]domain.BulkOp{}
	var errs []error
	for i := 0; i < len(buckets); i++ {
		result := <-outcomes
		if result.err != nil {
			log.Printf("Projection '%v' failed: %v\n", result.kind, result.err)
			errs = append(errs, result.err)
			continue
		}
		opsByKind[result.kind] = result.ops
	}

	return opsByKind, errs
}

// submitBulks issues one call per destination index, concurrently across the
// distinct destinations. Per-item failures are logged by the writer and not
// retried; only a failed call as a whole triggers redelivery.
func (p *Pipeline) submitBulks(ctx context.Context, perIndex map[string][]domain.BulkOp) []error {
	type outcome struct {
		index string
		err   error
	}
	outcomes := make(chan outcome, len(perIndex))

	for index, ops := range perIndex {
		go func(index string, ops []domain.BulkOp) {
			_, err := p.writer.Bulk(ctx, index, ops)
			outcomes <- outcome{index: index, err: err}
		}(index, ops)
	}

	//reducer
	var errs []error
	for i := 0; i < len(perIndex); i++ {
		result := <-outcomes
		if result.err != nil {
			log.Printf("Bulk write to '%v' failed: %v\n", result.index, result.err)
			errs = append(errs, result.err)
		}
	}

	return errs
}
