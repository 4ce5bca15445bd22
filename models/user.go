package models

// User is the metadata record of a user: pk "user#<id>", sk "metadata".
type User struct {
	Pk         string `dynamodbav:"pk" json:"-"`
	Sk         string `dynamodbav:"sk" json:"-"`
	ModifiedAt string `dynamodbav:"modifiedAt,omitempty" json:"-"`

	FirstName string `dynamodbav:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string `dynamodbav:"lastName,omitempty" json:"lastName,omitempty"`
	Email     string `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	Photo     string `dynamodbav:"photo,omitempty" json:"photo,omitempty"`
	Birthdate string `dynamodbav:"birthdate,omitempty" json:"birthdate,omitempty"`
	City      string `dynamodbav:"city,omitempty" json:"city,omitempty"`
}

// UserTeam is one element of the derived "teams" array in the user search
// document. It is never stored in the table; it is recomputed from the
// membership rows on every membership change.
type UserTeam struct {
	TeamID string `json:"teamId"`
	ClubID string `json:"clubId,omitempty"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}
