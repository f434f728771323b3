package skill

import (
	"context"
	"errors"

	"github.com/illmade-knight/grocery-list-skill/pkg/analytics"
	"github.com/illmade-knight/grocery-list-skill/pkg/dialogue"
	"github.com/illmade-knight/grocery-list-skill/pkg/groceries"
	"github.com/rs/zerolog"
)

// Analytics event categories, one per flow.
const (
	categoryAddItem    = "add-item"
	categoryListItems  = "list-items"
	categoryRemoveItem = "remove-item"
	categorySession    = "session"
)

// Handler routes one platform turn to the matching intent flow. Every turn
// produces exactly one Directive; a handler never returns an error to the
// platform, and it keeps no state between turns.
type Handler struct {
	service  *groceries.Service
	recorder analytics.Recorder
	logger   zerolog.Logger
}

// NewHandler creates the intent handler. The recorder may be a NoopRecorder;
// it must never be nil.
func NewHandler(service *groceries.Service, recorder analytics.Recorder, logger zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		recorder: recorder,
		logger:   logger.With().Str("component", "skill-handler").Logger(),
	}
}

// HandleTurn processes a single turn synchronously and returns the directive
// to send back to the platform.
func (h *Handler) HandleTurn(ctx context.Context, req Request) Directive {
	switch req.Type {
	case TypeLaunch:
		return Ask{Speech: instructions, Reprompt: instructions}
	case TypeSessionEnded:
		h.recorder.Record(analytics.Event{Category: categorySession, Label: "session-end"})
		return Tell{}
	case TypeIntent:
		return h.handleIntent(ctx, req)
	default:
		return h.unhandled(req)
	}
}

func (h *Handler) handleIntent(ctx context.Context, req Request) Directive {
	switch req.Intent {
	case IntentNewItem:
		return h.handleNewItem(ctx, req)
	case IntentListItems:
		return h.handleListItems(ctx, req)
	case IntentRemoveItem:
		return h.handleRemoveItem(ctx, req)
	case IntentHelp:
		h.recorder.Record(analytics.Event{Category: categorySession, Label: "help"})
		return Ask{Speech: instructions, Reprompt: instructions}
	case IntentCancel, IntentStop:
		h.recorder.Record(analytics.Event{Category: categorySession, Label: "session-end"})
		return Tell{Speech: goodbyeSpeech}
	default:
		return h.unhandled(req)
	}
}

// itemPrompts carries the per-intent wording for the shared slot negotiation.
type itemPrompts struct {
	elicitSpeech   string
	elicitReprompt string
	confirmSpeech  func(value string) string
}

// negotiateItemName runs one turn of the slot confirmation protocol for the
// GroceryItemName slot. It returns either the confirmed value or the
// directive that continues the negotiation (exactly one of the two).
func (h *Handler) negotiateItemName(req Request, prompts itemPrompts, category string) (string, Directive) {
	slot, ok := req.Slots[SlotItemName]
	if !ok {
		// The interaction model always delivers the slot; its absence means
		// a malformed request, not a dialogue state.
		h.logger.Error().Str("intent", req.Intent).Msg("Request is missing the GroceryItemName slot")
		return "", h.unhandled(req)
	}

	switch action := dialogue.Evaluate(slot).(type) {
	case dialogue.Elicit:
		if slot.ConfirmationStatus == dialogue.StatusDenied {
			h.recorder.Record(analytics.Event{Category: category, Label: "denied"})
		} else {
			h.recorder.Record(analytics.Event{Category: category, Label: "elicit"})
		}
		return "", ElicitSlot{
			SlotName: action.SlotName,
			Speech:   prompts.elicitSpeech,
			Reprompt: prompts.elicitReprompt,
		}
	case dialogue.Confirm:
		h.recorder.Record(analytics.Event{Category: category, Label: "unconfirmed"})
		speech := prompts.confirmSpeech(action.Value)
		return "", ConfirmSlot{SlotName: action.SlotName, Speech: speech, Reprompt: speech}
	case dialogue.Proceed:
		h.recorder.Record(analytics.Event{Category: category, Label: "confirmed"})
		return action.Value, nil
	default:
		return "", h.unhandled(req)
	}
}

func (h *Handler) handleNewItem(ctx context.Context, req Request) Directive {
	prompts := itemPrompts{
		elicitSpeech:   addElicitSpeech,
		elicitReprompt: addElicitReprompt,
		confirmSpeech:  addConfirmSpeech,
	}
	name, directive := h.negotiateItemName(req, prompts, categoryAddItem)
	if directive != nil {
		return directive
	}

	err := h.service.AddItem(ctx, req.UserID, name)
	switch {
	case errors.Is(err, groceries.ErrItemExists):
		h.recorder.Record(analytics.Event{Category: categoryAddItem, Label: "duplicate"})
		return Tell{Speech: itemExistsSpeech(name)}
	case err != nil:
		return h.storeFailure(req, categoryAddItem, err)
	}

	h.recorder.Record(analytics.Event{Category: categoryAddItem, Label: "success"})
	return Tell{Speech: itemAddedSpeech(name)}
}

func (h *Handler) handleListItems(ctx context.Context, req Request) Directive {
	items, err := h.service.ListItems(ctx, req.UserID)
	if err != nil {
		return h.storeFailure(req, categoryListItems, err)
	}

	if len(items) == 0 {
		h.recorder.Record(analytics.Event{Category: categoryListItems, Label: "not-found"})
		return Tell{Speech: emptyListSpeech}
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	h.recorder.Record(analytics.Event{Category: categoryListItems, Label: "success"})
	return Tell{Speech: listSpeech(names)}
}

func (h *Handler) handleRemoveItem(ctx context.Context, req Request) Directive {
	prompts := itemPrompts{
		elicitSpeech:   removeElicitSpeech,
		elicitReprompt: removeElicitReprompt,
		confirmSpeech:  removeConfirmSpeech,
	}
	name, directive := h.negotiateItemName(req, prompts, categoryRemoveItem)
	if directive != nil {
		return directive
	}

	err := h.service.RemoveItem(ctx, req.UserID, name)
	switch {
	case errors.Is(err, groceries.ErrItemNotFound):
		h.recorder.Record(analytics.Event{Category: categoryRemoveItem, Label: "not-found"})
		return Tell{Speech: itemNotFoundSpeech(name)}
	case err != nil:
		return h.storeFailure(req, categoryRemoveItem, err)
	}

	h.recorder.Record(analytics.Event{Category: categoryRemoveItem, Label: "success"})
	return Tell{Speech: itemDeletedSpeech(name)}
}

// storeFailure ends the turn with a spoken apology. Persistence failures are
// never silently swallowed: the user always hears a response.
func (h *Handler) storeFailure(req Request, category string, err error) Directive {
	h.logger.Error().Err(err).
		Str("intent", req.Intent).
		Str("user_id", req.UserID).
		Msg("Store operation failed")
	h.recorder.Record(analytics.Event{Category: category, Label: "error"})
	return Tell{Speech: apologySpeech}
}

func (h *Handler) unhandled(req Request) Directive {
	h.logger.Error().
		Str("type", string(req.Type)).
		Str("intent", req.Intent).
		Msg("Unhandled request")
	h.recorder.Record(analytics.Event{Category: categorySession, Label: "unhandled"})
	return Ask{Speech: unhandledSpeech, Reprompt: unhandledSpeech}
}
