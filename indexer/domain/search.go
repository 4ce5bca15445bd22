package domain

type BulkAction int

const (
	ActionIndex BulkAction = iota
	ActionUpdate
	ActionDelete
)

func (a BulkAction) String() string {
	switch a {
	case ActionIndex:
		return "index"
	case ActionUpdate:
		return "update"
	default:
		return "delete"
	}
}

// Script is a server-side document mutation, used where a plain field
// overwrite cannot express the change (list append, array replacement).
type Script struct {
	Source string         `json:"source"`
	Lang   string         `json:"lang,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

// BulkOp is one instruction of a bulk submission. Exactly one of Doc or
// Script is set for updates; deletes carry neither.
type BulkOp struct {
	Action BulkAction
	DocID  string

	Doc         any
	DocAsUpsert bool

	Script *Script
	Upsert any
}

// IndexOp replaces the whole document.
func IndexOp(docID string, doc any) BulkOp {
	return BulkOp{Action: ActionIndex, DocID: docID, Doc: doc}
}

// UpsertOp merges the partial document, creating it when absent. Safe under
// redelivery: an insert redelivered as a modify still lands.
func UpsertOp(docID string, doc any) BulkOp {
	return BulkOp{Action: ActionUpdate, DocID: docID, Doc: doc, DocAsUpsert: true}
}

// DeleteOp removes the document by id.
func DeleteOp(docID string) BulkOp {
	return BulkOp{Action: ActionDelete, DocID: docID}
}

// ScriptOp runs a script against the document, seeding it with upsert when
// the document does not exist yet.
func ScriptOp(docID string, script Script, upsert any) BulkOp {
	return BulkOp{Action: ActionUpdate, DocID: docID, Script: &script, Upsert: upsert}
}

// ItemFailure is one failed instruction of a bulk submission.
type ItemFailure struct {
	DocID  string
	Status int
	Type   string
	Reason string
}

// BulkResult is the decoded outcome of one bulk call. A result with failed
// items is not an error: the remaining items went through and the platform
// redrive is the only retry mechanism.
type BulkResult struct {
	Took   int
	Failed []ItemFailure
}

func (r BulkResult) HasFailures() bool { return len(r.Failed) > 0 }
