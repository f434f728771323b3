// Package transport exposes the skill handler over HTTP: it decodes the
// voice platform's request envelope, runs the turn, and renders the
// resulting directive back into the platform's response envelope.
package transport

import (
	"fmt"

	"github.com/illmade-knight/grocery-list-skill/pkg/dialogue"
	"github.com/illmade-knight/grocery-list-skill/pkg/skill"
)

// --- Inbound wire types ---

type requestEnvelope struct {
	Version string         `json:"version"`
	Session sessionPayload `json:"session"`
	Request requestPayload `json:"request"`
}

type sessionPayload struct {
	User userPayload `json:"user"`
}

type userPayload struct {
	UserID string `json:"userId"`
}

type requestPayload struct {
	Type   string         `json:"type"`
	Intent *intentPayload `json:"intent,omitempty"`
}

type intentPayload struct {
	Name  string                 `json:"name"`
	Slots map[string]slotPayload `json:"slots,omitempty"`
}

type slotPayload struct {
	Name               string `json:"name"`
	Value              string `json:"value,omitempty"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// toRequest maps the wire envelope onto the handler's turn input.
func (e requestEnvelope) toRequest() skill.Request {
	req := skill.Request{
		Type:   skill.RequestType(e.Request.Type),
		UserID: e.Session.User.UserID,
	}
	if e.Request.Intent == nil {
		return req
	}

	req.Intent = e.Request.Intent.Name
	req.Slots = make(map[string]dialogue.Slot, len(e.Request.Intent.Slots))
	for name, slot := range e.Request.Intent.Slots {
		status := dialogue.ConfirmationStatus(slot.ConfirmationStatus)
		if status == "" {
			status = dialogue.StatusNone
		}
		req.Slots[name] = dialogue.Slot{
			Name:               slot.Name,
			Value:              slot.Value,
			ConfirmationStatus: status,
		}
	}
	return req
}

// --- Outbound wire types ---

type responseEnvelope struct {
	Version  string       `json:"version"`
	Response responseBody `json:"response"`
}

type responseBody struct {
	OutputSpeech     *outputSpeech     `json:"outputSpeech,omitempty"`
	Reprompt         *repromptPayload  `json:"reprompt,omitempty"`
	Directives       []dialogDirective `json:"directives,omitempty"`
	ShouldEndSession bool              `json:"shouldEndSession"`
}

type outputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type repromptPayload struct {
	OutputSpeech outputSpeech `json:"outputSpeech"`
}

type dialogDirective struct {
	Type          string `json:"type"`
	SlotToElicit  string `json:"slotToElicit,omitempty"`
	SlotToConfirm string `json:"slotToConfirm,omitempty"`
}

func ssml(speech string) *outputSpeech {
	if speech == "" {
		return nil
	}
	return &outputSpeech{Type: "SSML", SSML: "<speak>" + speech + "</speak>"}
}

func repromptFor(speech string) *repromptPayload {
	out := ssml(speech)
	if out == nil {
		return nil
	}
	return &repromptPayload{OutputSpeech: *out}
}

// renderDirective builds the platform response for a directive. The type
// switch is exhaustive over the skill.Directive variants.
func renderDirective(directive skill.Directive) (responseEnvelope, error) {
	envelope := responseEnvelope{Version: "1.0"}

	switch d := directive.(type) {
	case skill.Ask:
		envelope.Response = responseBody{
			OutputSpeech: ssml(d.Speech),
			Reprompt:     repromptFor(d.Reprompt),
		}
	case skill.Tell:
		envelope.Response = responseBody{
			OutputSpeech:     ssml(d.Speech),
			ShouldEndSession: true,
		}
	case skill.ElicitSlot:
		envelope.Response = responseBody{
			OutputSpeech: ssml(d.Speech),
			Reprompt:     repromptFor(d.Reprompt),
			Directives: []dialogDirective{
				{Type: "Dialog.ElicitSlot", SlotToElicit: d.SlotName},
			},
		}
	case skill.ConfirmSlot:
		envelope.Response = responseBody{
			OutputSpeech: ssml(d.Speech),
			Reprompt:     repromptFor(d.Reprompt),
			Directives: []dialogDirective{
				{Type: "Dialog.ConfirmSlot", SlotToConfirm: d.SlotName},
			},
		}
	default:
		return responseEnvelope{}, fmt.Errorf("unknown directive kind: %s", directive.Kind())
	}

	return envelope, nil
}
