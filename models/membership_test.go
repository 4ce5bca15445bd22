package models

import "testing"

func TestMembershipKeyAccessors(t *testing.T) {
	membership := TeamMembership{Pk: "team#A", Sk: "user#U", Role: RoleCoach, Status: StatusAccepted, ClubID: "C"}

	if membership.TeamID() != "A" {
		t.Fatalf("unexpected team id: %v", membership.TeamID())
	}
	if membership.UserID() != "U" {
		t.Fatalf("unexpected user id: %v", membership.UserID())
	}

	userTeam := membership.UserTeam()
	if userTeam != (UserTeam{TeamID: "A", ClubID: "C", Role: RoleCoach, Status: StatusAccepted}) {
		t.Fatalf("unexpected user team: %+v", userTeam)
	}
}

func TestKeyID(t *testing.T) {
	if got := KeyID(ClubPK("42"), ClubPrefix); got != "42" {
		t.Fatalf("unexpected id: %v", got)
	}
	if got := KeyID("metadata", ClubPrefix); got != "metadata" {
		t.Fatalf("unexpected id: %v", got)
	}
}
