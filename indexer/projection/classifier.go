package projection

import (
	"regexp"
	"strings"

	"github.com/cool-develope/cloudbreak-infra-sub000/indexer/domain"
	"github.com/cool-develope/cloudbreak-infra-sub000/models"
)

// EntityKind is the closed set of key shapes the pipeline projects. The key
// prefix is the sole type discriminator in the table, so classification is
// purely a matter of pk/sk pattern matching.
type EntityKind int

const (
	EntityEventMetadata EntityKind = iota
	EntityEventParticipation
	EntityClubMetadata
	EntityUserMetadata
	EntityUserTeamMembership
	EntityTeam
)

func (k EntityKind) String() string {
	switch k {
	case EntityEventMetadata:
		return "event-metadata"
	case EntityEventParticipation:
		return "event-participation"
	case EntityClubMetadata:
		return "club-metadata"
	case EntityUserMetadata:
		return "user-metadata"
	case EntityUserTeamMembership:
		return "user-team-membership"
	case EntityTeam:
		return "team"
	default:
		return "unknown"
	}
}

// Strict: a team sort key carries no further suffix, so nested sub-keys
// under a team never classify as the team record itself.
var teamSortKeyPattern = regexp.MustCompile(`^team#[^#]+$`)

type predicate struct {
	kind  EntityKind
	match func(pk, sk string) bool
}

// The predicates are evaluated independently; a record may land in more
// than one bucket.
var predicates = []predicate{
	{EntityEventMetadata, func(pk, sk string) bool {
		return strings.HasPrefix(pk, models.EventPrefix) && sk == models.MetadataSK
	}},
	{EntityEventParticipation, func(pk, sk string) bool {
		return strings.HasPrefix(pk, models.EventPrefix) && strings.HasPrefix(sk, models.UserPrefix)
	}},
	{EntityClubMetadata, func(pk, sk string) bool {
		return strings.HasPrefix(pk, models.ClubPrefix) && sk == models.MetadataSK
	}},
	{EntityUserMetadata, func(pk, sk string) bool {
		return strings.HasPrefix(pk, models.UserPrefix) && sk == models.MetadataSK
	}},
	{EntityUserTeamMembership, func(pk, sk string) bool {
		return strings.HasPrefix(pk, models.TeamPrefix) && strings.HasPrefix(sk, models.UserPrefix)
	}},
	{EntityTeam, func(pk, sk string) bool {
		return strings.HasPrefix(pk, models.ClubPrefix) && teamSortKeyPattern.MatchString(sk)
	}},
}

// Classify returns every bucket a key pair belongs to.
func Classify(pk, sk string) []EntityKind {
	var kinds []EntityKind
	for _, p := range predicates {
		if p.match(pk, sk) {
			kinds = append(kinds, p.kind)
		}
	}
	return kinds
}

// ClassifyBatch buckets a batch by key shape. Records matching no predicate
// are dropped; the caller gets their count for visibility.
func ClassifyBatch(records []domain.ChangeRecord) (buckets map[EntityKind][]domain.ChangeRecord, dropped int) {
	buckets = make(map[EntityKind][]domain.ChangeRecord)
	for _, record := range records {
		kinds := Classify(record.Pk, record.Sk)
		if len(kinds) == 0 {
			dropped++
			continue
		}
		for _, kind := range kinds {
			buckets[kind] = append(buckets[kind], record)
		}
	}
	return buckets, dropped
}
