package skill

import (
	"fmt"
	"strings"
)

// SSML pause markers inserted into spoken output. The list uses the strongest
// break so items are clearly separated when read aloud.
const (
	breakMedium  = `<break strength="medium" />`
	breakXStrong = `<break strength="x-strong" />`
)

const instructions = "Welcome to Grocery List Manager" + breakMedium +
	" The following commands are available: add an item to your grocery list, " +
	"read all items, and remove an item. What would you like to do?"

const (
	addElicitSpeech   = "What would you like to add to your grocery list?"
	addElicitReprompt = "Please tell me what you would like to add to your grocery list."

	removeElicitSpeech   = "What item would you like to remove from your grocery list?"
	removeElicitReprompt = "Please say what item you would like to remove"

	emptyListSpeech = "No grocery items found!"
	goodbyeSpeech   = "Goodbye!"
	unhandledSpeech = "An unhandled problem occurred!"
	apologySpeech   = "Sorry, something went wrong with your grocery list. Please try again."
)

func addConfirmSpeech(name string) string {
	return fmt.Sprintf("The item that you would like to add is %s, correct?", name)
}

func removeConfirmSpeech(name string) string {
	return fmt.Sprintf("You would like to remove %s, correct?", name)
}

func itemExistsSpeech(name string) string {
	return fmt.Sprintf("Grocery item %s already exists!", name)
}

func itemAddedSpeech(name string) string {
	return fmt.Sprintf("Grocery item %s added!", name)
}

func itemNotFoundSpeech(name string) string {
	return fmt.Sprintf("Grocery item %s not found!", name)
}

func itemDeletedSpeech(name string) string {
	return fmt.Sprintf("Grocery item %s deleted!", name)
}

// listSpeech renders the full grocery list as one utterance, each item
// followed by a strong pause.
func listSpeech(names []string) string {
	var b strings.Builder
	b.WriteString("Here's what's on your grocery list: ")
	b.WriteString(breakXStrong)
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(breakXStrong)
	}
	return b.String()
}
