package skill

// Directive is the single outbound instruction produced for a turn. It is one
// of Ask, Tell, ElicitSlot, or ConfirmSlot; callers render it into the
// platform's response envelope with an exhaustive type switch.
type Directive interface {
	// Kind returns a string identifier for the directive (e.g., "Tell").
	Kind() string
}

// Ask keeps the session open with a question and a reprompt.
type Ask struct {
	Speech   string
	Reprompt string
}

func (a Ask) Kind() string { return "Ask" }

// Tell closes the session with a final utterance.
type Tell struct {
	Speech string
}

func (t Tell) Kind() string { return "Tell" }

// ElicitSlot keeps the session open and asks the platform to re-request a
// value for the named slot.
type ElicitSlot struct {
	SlotName string
	Speech   string
	Reprompt string
}

func (e ElicitSlot) Kind() string { return "ElicitSlot" }

// ConfirmSlot keeps the session open and asks the platform to get a yes/no
// confirmation of the named slot's current value.
type ConfirmSlot struct {
	SlotName string
	Speech   string
	Reprompt string
}

func (c ConfirmSlot) Kind() string { return "ConfirmSlot" }
