package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		pk   string
		sk   string
		want []EntityKind
	}{
		{"event metadata", "event#77", "metadata", []EntityKind{EntityEventMetadata}},
		{"event participation", "event#77", "user#9", []EntityKind{EntityEventParticipation}},
		{"club metadata", "club#1", "metadata", []EntityKind{EntityClubMetadata}},
		{"user metadata", "user#9", "metadata", []EntityKind{EntityUserMetadata}},
		{"team membership", "team#5", "user#9", []EntityKind{EntityUserTeamMembership}},
		{"team under club", "club#1", "team#5", []EntityKind{EntityTeam}},
		{"team sub-key is not a team", "club#1", "team#5#budget", nil},
		{"club child without shape", "club#1", "user#9", nil},
		{"notification is ignored", "user#9", "notification#3", nil},
		{"bare keys", "something", "else", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.pk, tt.sk))
		})
	}
}

func TestClassifyBatchBucketsAndDrops(t *testing.T) {
	records := []domain.ChangeRecord{
		{Kind: domain.KindInsert, Pk: "club#1", Sk: "metadata"},
		{Kind: domain.KindModify, Pk: "club#1", Sk: "team#5"},
		{Kind: domain.KindInsert, Pk: "team#5", Sk: "user#9"},
		{Kind: domain.KindInsert, Pk: "user#9", Sk: "notification#3"},
	}

	buckets, dropped := ClassifyBatch(records)

	assert.Equal(t, 1, dropped)
	assert.Len(t, buckets, 3)
	assert.Len(t, buckets[EntityClubMetadata], 1)
	assert.Len(t, buckets[EntityTeam], 1)
	assert.Len(t, buckets[EntityUserTeamMembership], 1)
	assert.NotContains(t, buckets, EntityUserMetadata)
	assert.NotContains(t, buckets, EntityEventMetadata)
	assert.NotContains(t, buckets, EntityEventParticipation)
}
