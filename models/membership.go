package models

// Membership roles and statuses as stored on the association record.
const (
	RoleMember = "Member"
	RoleCoach  = "Coach"

	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusDeclined = "Declined"
)

// TeamMembership associates a user with a team: pk "team#<teamId>",
// sk "user#<userId>". The inverted secondary index swaps pk and sk so all
// memberships of one user can be queried by sk.
type TeamMembership struct {
	Pk         string `dynamodbav:"pk" json:"-"`
	Sk         string `dynamodbav:"sk" json:"-"`
	ModifiedAt string `dynamodbav:"modifiedAt,omitempty" json:"-"`

	Role   string `dynamodbav:"role,omitempty" json:"role,omitempty"`
	Status string `dynamodbav:"status,omitempty" json:"status,omitempty"`
	ClubID string `dynamodbav:"clubId,omitempty" json:"clubId,omitempty"`
}

// TeamID returns the team identifier encoded in the partition key.
func (m TeamMembership) TeamID() string { return KeyID(m.Pk, TeamPrefix) }

// UserID returns the user identifier encoded in the sort key.
func (m TeamMembership) UserID() string { return KeyID(m.Sk, UserPrefix) }

// UserTeam converts a membership row into its form inside the user
// search document.
func (m TeamMembership) UserTeam() UserTeam {
	return UserTeam{
		TeamID: m.TeamID(),
		ClubID: m.ClubID,
		Role:   m.Role,
		Status: m.Status,
	}
}
