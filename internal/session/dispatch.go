package session

import (
	"encoding/json"

	"github.com/ncdevice/ncdevice/internal/model"
	"github.com/ncdevice/ncdevice/internal/protocol"
)

// HandleFrame decodes one inbound WebSocket text frame and enqueues
// the appropriate reply on s. Commands are dispatched against tree in
// arrival order within the batch, preserving Handle correlation; a
// frame that isn't valid JSON or carries an unrecognized messageType
// gets an out-of-band ErrorMessage instead of a reply to a specific
// message.
func HandleFrame(s *Session, tree *model.Tree, raw []byte) {
	var envelope protocol.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		s.Send(protocol.NewErrorMessage(protocol.StatusBadCommandFormat, "malformed JSON: "+err.Error()))
		return
	}

	switch envelope.MessageType {
	case protocol.MessageTypeCommand:
		var msg protocol.CommandMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.Send(protocol.NewErrorMessage(protocol.StatusBadCommandFormat, "malformed command message: "+err.Error()))
			return
		}
		responses := make([]protocol.Response, 0, len(msg.Commands))
		for _, cmd := range msg.Commands {
			responses = append(responses, tree.Dispatch(cmd))
		}
		s.Send(protocol.NewCommandResponseMessage(responses))

	case protocol.MessageTypeSubscription:
		var msg protocol.SubscriptionMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.Send(protocol.NewErrorMessage(protocol.StatusBadCommandFormat, "malformed subscription message: "+err.Error()))
			return
		}
		s.SetSubscriptions(msg.Subscriptions)
		s.Send(protocol.NewSubscriptionResponseMessage(msg.Subscriptions))

	default:
		s.Send(protocol.NewErrorMessage(protocol.StatusBadCommandFormat, "unrecognized messageType"))
	}
}
