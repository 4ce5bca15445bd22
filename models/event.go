package models

// Event is the metadata record of an event or post: pk "event#<id>",
// sk "metadata". The participants list of the search document is never part
// of this record; it only grows through participation marks.
type Event struct {
	Pk         string `dynamodbav:"pk" json:"-"`
	Sk         string `dynamodbav:"sk" json:"-"`
	ModifiedAt string `dynamodbav:"modifiedAt,omitempty" json:"-"`

	Title       string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Text        string   `dynamodbav:"text,omitempty" json:"text,omitempty"`
	Images      []string `dynamodbav:"images,omitempty" json:"images,omitempty"`
	StartDate   string   `dynamodbav:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     string   `dynamodbav:"endDate,omitempty" json:"endDate,omitempty"`
	OwnerUserID string   `dynamodbav:"ownerUserId,omitempty" json:"ownerUserId,omitempty"`
	ClubID      string   `dynamodbav:"clubId,omitempty" json:"clubId,omitempty"`
}

// EventParticipation marks a user on an event: pk "event#<eventId>",
// sk "user#<userId>". Attribute "a" is the accepted flag.
type EventParticipation struct {
	Pk         string `dynamodbav:"pk" json:"-"`
	Sk         string `dynamodbav:"sk" json:"-"`
	ModifiedAt string `dynamodbav:"modifiedAt,omitempty" json:"-"`

	Accepted bool `dynamodbav:"a" json:"-"`
}
