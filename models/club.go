package models

// Club is the metadata record of a club: pk "club#<id>", sk "metadata".
// The pk/sk pair and the modifiedAt bookkeeping attribute stay in the
// table and are excluded from the search document form.
type Club struct {
	Pk         string `dynamodbav:"pk" json:"-"`
	Sk         string `dynamodbav:"sk" json:"-"`
	ModifiedAt string `dynamodbav:"modifiedAt,omitempty" json:"-"`

	Name        string   `dynamodbav:"name" json:"name,omitempty"`
	Description string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Logo        string   `dynamodbav:"logo,omitempty" json:"logo,omitempty"`
	CoverPhoto  string   `dynamodbav:"coverPhoto,omitempty" json:"coverPhoto,omitempty"`
	Email       string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Phone       string   `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	Website     string   `dynamodbav:"website,omitempty" json:"website,omitempty"`
	Address     string   `dynamodbav:"address,omitempty" json:"address,omitempty"`
	Disciplines []string `dynamodbav:"disciplines,omitempty" json:"disciplines,omitempty"`
	OwnerUserID string   `dynamodbav:"ownerUserId,omitempty" json:"ownerUserId,omitempty"`

	PendingCoachInvitations  int `dynamodbav:"pendingCoachInvitations,omitempty" json:"pendingCoachInvitations,omitempty"`
	PendingMemberInvitations int `dynamodbav:"pendingMemberInvitations,omitempty" json:"pendingMemberInvitations,omitempty"`
}
