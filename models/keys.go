package models

import "strings"

// Single-table key layout. The entity type lives in the key prefix,
// not in a separate attribute.
const (
	PartitionKeyName = "pk"
	SortKeyName      = "sk"

	ClubPrefix  = "club#"
	UserPrefix  = "user#"
	TeamPrefix  = "team#"
	EventPrefix = "event#"

	MetadataSK = "metadata"
)

func ClubPK(clubID string) string   { return ClubPrefix + clubID }
func UserPK(userID string) string   { return UserPrefix + userID }
func TeamPK(teamID string) string   { return TeamPrefix + teamID }
func EventPK(eventID string) string { return EventPrefix + eventID }

func TeamSK(teamID string) string { return TeamPrefix + teamID }
func UserSK(userID string) string { return UserPrefix + userID }

// KeyID strips the type prefix from a composite key part.
// KeyID("club#42", ClubPrefix) == "42".
func KeyID(key, prefix string) string {
	return strings.TrimPrefix(key, prefix)
}
