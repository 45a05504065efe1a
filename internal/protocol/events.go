package protocol

// ChangeType describes how a property changed.
type ChangeType uint16

const (
	ChangeTypeValueChanged        ChangeType = 0
	ChangeTypeSequenceItemAdded   ChangeType = 1
	ChangeTypeSequenceItemChanged ChangeType = 2
	ChangeTypeSequenceItemRemoved ChangeType = 3
)

// PropertyChangedEventData carries the details of a single property
// mutation: which property, how it changed, the new value, and (for
// sequence operations) the affected index.
type PropertyChangedEventData struct {
	PropertyID        ElementId  `json:"propertyId"`
	ChangeType        ChangeType `json:"changeType"`
	Value             any        `json:"value"`
	SequenceItemIndex *uint64    `json:"sequenceItemIndex"`
}

// PropertyChangedEvent is published on the event bus by model objects
// whenever a writable property mutates, and (in batch) synthesized by
// Block when its members list changes. EventID is always (1,1) per
// the base Object's event address space.
type PropertyChangedEvent struct {
	Oid       uint32                   `json:"oid"`
	EventID   ElementId                `json:"eventId"`
	EventData PropertyChangedEventData `json:"eventData"`
}

// NewValueChangedEvent builds a PropertyChangedEvent for a plain
// (non-sequence) property write.
func NewValueChangedEvent(oid uint32, propertyID ElementId, value any) PropertyChangedEvent {
	return PropertyChangedEvent{
		Oid:     oid,
		EventID: ElementId{Level: 1, Index: 1},
		EventData: PropertyChangedEventData{
			PropertyID: propertyID,
			ChangeType: ChangeTypeValueChanged,
			Value:      value,
		},
	}
}
