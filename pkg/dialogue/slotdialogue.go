// Package dialogue implements the slot confirmation protocol used by the
// skill's intent handlers. It decides, for a single turn, whether a
// user-supplied slot value is ready for use, and if not, which dialogue
// action the platform should perform next.
package dialogue

// ConfirmationStatus is the platform-reported confirmation state of a slot.
type ConfirmationStatus string

const (
	StatusNone        ConfirmationStatus = "NONE"
	StatusUnconfirmed ConfirmationStatus = "UNCONFIRMED"
	StatusConfirmed   ConfirmationStatus = "CONFIRMED"
	StatusDenied      ConfirmationStatus = "DENIED"
)

// Slot is the per-turn view of a single intent slot. It is supplied by the
// platform at the start of each turn and is never held across turns.
type Slot struct {
	Name               string
	Value              string
	ConfirmationStatus ConfirmationStatus
}

// Action is the decision for one turn of slot negotiation. It is one of
// Elicit, Confirm, or Proceed.
type Action interface {
	// Kind returns a string identifier for the action (e.g., "Elicit").
	Kind() string
}

// Elicit asks the platform to (re-)request a value for the named slot.
type Elicit struct {
	SlotName string
}

func (e Elicit) Kind() string { return "Elicit" }

// Confirm asks the platform to get a yes/no confirmation of the slot's
// current value.
type Confirm struct {
	SlotName string
	Value    string
}

func (c Confirm) Kind() string { return "Confirm" }

// Proceed returns control to the caller with the confirmed value.
type Proceed struct {
	Value string
}

func (p Proceed) Kind() string { return "Proceed" }

// Evaluate maps a slot to the single dialogue action for this turn.
//
// The branches are checked in order: an absent value dominates every status
// check, an unresolved status (neither confirmed nor denied) produces a
// confirmation request, a denied value is re-elicited from scratch, and a
// confirmed value is the sole accept path. Evaluate is a pure function; it
// holds no state between turns and there is no cap on elicit/deny cycles.
func Evaluate(slot Slot) Action {
	if slot.Value == "" {
		return Elicit{SlotName: slot.Name}
	}

	if slot.ConfirmationStatus != StatusConfirmed {
		if slot.ConfirmationStatus != StatusDenied {
			return Confirm{SlotName: slot.Name, Value: slot.Value}
		}

		// Denied: discard the value and ask again.
		return Elicit{SlotName: slot.Name}
	}

	return Proceed{Value: slot.Value}
}
