package domain

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type EventKind int

const (
	KindUnknown EventKind = iota
	KindInsert
	KindModify
	KindRemove
)

func (k EventKind) String() string {
	switch k {
	case KindInsert:
		return "INSERT"
	case KindModify:
		return "MODIFY"
	case KindRemove:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

func ParseEventKind(eventName string) EventKind {
	switch eventName {
	case "INSERT":
		return KindInsert
	case "MODIFY":
		return KindModify
	case "REMOVE":
		return KindRemove
	default:
		return KindUnknown
	}
}

// ChangeRecord is one table mutation, decoded once at the boundary. Images
// are kept in SDK attribute-value form so they can be unmarshalled into the
// typed models.
type ChangeRecord struct {
	Kind EventKind
	Pk   string
	Sk   string

	NewImage map[string]types.AttributeValue
	OldImage map[string]types.AttributeValue
}

// Image returns the snapshot a projector should read: the new image for
// inserts and modifies, the old image for removes.
func (r ChangeRecord) Image() map[string]types.AttributeValue {
	if r.Kind == KindRemove {
		return r.OldImage
	}
	return r.NewImage
}

// FromDynamoDBEvent converts a Lambda stream event into change records.
// Records with keys that are not plain strings are skipped; the key shape
// is the sole type discriminator downstream.
func FromDynamoDBEvent(evt events.DynamoDBEvent) []ChangeRecord {
	records := make([]ChangeRecord, 0, len(evt.Records))
	for _, raw := range evt.Records {
		pk := raw.Change.Keys["pk"]
		sk := raw.Change.Keys["sk"]
		if pk.DataType() != events.DataTypeString || sk.DataType() != events.DataTypeString {
			continue
		}
		records = append(records, ChangeRecord{
			Kind:     ParseEventKind(raw.EventName),
			Pk:       pk.String(),
			Sk:       sk.String(),
			NewImage: toSDKImage(raw.Change.NewImage),
			OldImage: toSDKImage(raw.Change.OldImage),
		})
	}
	return records
}

func toSDKImage(image map[string]events.DynamoDBAttributeValue) map[string]types.AttributeValue {
	if len(image) == 0 {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(image))
	for name, av := range image {
		out[name] = toSDKAttributeValue(av)
	}
	return out
}

// toSDKAttributeValue bridges the Lambda event encoding to the SDK one.
// The Lambda runtime and the DynamoDB SDK ship two incompatible
// AttributeValue types for the same wire format.
func toSDKAttributeValue(av events.DynamoDBAttributeValue) types.AttributeValue {
	switch av.DataType() {
	case events.DataTypeString:
		return &types.AttributeValueMemberS{Value: av.String()}
	case events.DataTypeNumber:
		return &types.AttributeValueMemberN{Value: av.Number()}
	case events.DataTypeBoolean:
		return &types.AttributeValueMemberBOOL{Value: av.Boolean()}
	case events.DataTypeNull:
		return &types.AttributeValueMemberNULL{Value: av.IsNull()}
	case events.DataTypeBinary:
		return &types.AttributeValueMemberB{Value: av.Binary()}
	case events.DataTypeStringSet:
		return &types.AttributeValueMemberSS{Value: av.StringSet()}
	case events.DataTypeNumberSet:
		return &types.AttributeValueMemberNS{Value: av.NumberSet()}
	case events.DataTypeBinarySet:
		return &types.AttributeValueMemberBS{Value: av.BinarySet()}
	case events.DataTypeList:
		list := make([]types.AttributeValue, 0, len(av.List()))
		for _, item := range av.List() {
			list = append(list, toSDKAttributeValue(item))
		}
		return &types.AttributeValueMemberL{Value: list}
	case events.DataTypeMap:
		return &types.AttributeValueMemberM{Value: toSDKImage(av.Map())}
	default:
		return &types.AttributeValueMemberNULL{Value: true}
	}
}
