package models

// Team is a child record of a club: pk "club#<clubId>", sk "team#<teamId>".
// ClubID is not stored on the record itself; the projector fills it in
// from the partition key when building the search document.
type Team struct {
	Pk         string `dynamodbav:"pk" json:"-"`
	Sk         string `dynamodbav:"sk" json:"-"`
	ModifiedAt string `dynamodbav:"modifiedAt,omitempty" json:"-"`

	Name        string   `dynamodbav:"name" json:"name,omitempty"`
	Description string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Logo        string   `dynamodbav:"logo,omitempty" json:"logo,omitempty"`
	Disciplines []string `dynamodbav:"disciplines,omitempty" json:"disciplines,omitempty"`

	ClubID string `dynamodbav:"-" json:"clubId,omitempty"`
}
