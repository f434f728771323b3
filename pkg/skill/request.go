// Package skill contains the voice-platform facing surface of the grocery
// list manager: the per-turn request envelope, the outbound directive
// variants, and the intent handlers that drive the slot dialogue and the
// grocery service.
package skill

import "github.com/illmade-knight/grocery-list-skill/pkg/dialogue"

// RequestType identifies the kind of turn the platform delivered.
type RequestType string

const (
	TypeLaunch       RequestType = "LaunchRequest"
	TypeIntent       RequestType = "IntentRequest"
	TypeSessionEnded RequestType = "SessionEndedRequest"
)

// Intent names from the skill's interaction model.
const (
	IntentNewItem    = "NewGroceryItemIntent"
	IntentListItems  = "GetAllGroceryItemsIntent"
	IntentRemoveItem = "RemoveGroceryItemIntent"
	IntentHelp       = "AMAZON.HelpIntent"
	IntentCancel     = "AMAZON.CancelIntent"
	IntentStop       = "AMAZON.StopIntent"
)

// SlotItemName is the single slot the dialogue protocol negotiates, shared by
// the add and remove intents.
const SlotItemName = "GroceryItemName"

// Request is one decoded turn from the voice platform. It carries everything
// the handler may consult; the handler itself holds no state between turns.
type Request struct {
	Type   RequestType
	Intent string
	Slots  map[string]dialogue.Slot
	UserID string
}
