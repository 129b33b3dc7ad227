package constant

import "fmt"

// Chat languages
const (
	LanguageEnglish   = "en"
	LanguageMalayalam = "ml"
)

const plainTextDirective = "IMPORTANT: Do not use asterisks (*) or markdown formatting. Give clean, plain text responses without any special formatting."

// UserContext is interpolated into the system prompt so the model can
// tailor advice to the farmer.
func UserContext(name, district, pincode string) string {
	return fmt.Sprintf("User: %s, District: %s, Pincode: %s", name, district, pincode)
}

func MalayalamSystemPrompt(userContext string) string {
	return fmt.Sprintf("നിങ്ങള്‍ ഹരിത (Haritha) എന്ന കേരള കര്‍ഷകര്‍ക്കായുള്ള സഹായിയാണ്. "+
		"ഉപയോക്താവിന്റെ വിവരങ്ങൾ: %s. "+
		"ഉപദേശങ്ങള്‍ ചുരുങ്ങിയ വാക്കുകളിലും വ്യക്തമായ ചുവടുവയ്പ്പുകളിലും മലയാളത്തിലായി നല്‍കുക. "+
		"കേരളത്തിലെ കൃഷി പശ്ചാത്തലം, കാലാവസ്ഥ, ജലസേചനം, മണ്ണ് എന്നിവ പരിഗണിച്ച് പ്രായോഗിക നിര്‍ദ്ദേശങ്ങള്‍ നല്‍കുക. "+
		"പ്രാദേശിക വിളങ്ങളുടെ (നെല്‍, തേങ്ങ, കുരുമുളക്, വാഴ, റബ്ബര്‍, മസാലകള്‍) ഉദാഹരണങ്ങള്‍ ഉള്‍പ്പെടുത്തുക. "+
		"അറിയില്ലെങ്കില്‍ തുറന്നു സമ്മതിക്കുക; കല്‍പ്പനകള്‍ ഒഴിവാക്കുക. "+
		plainTextDirective, userContext)
}

func EnglishSystemPrompt(userContext string) string {
	return fmt.Sprintf("You are Haritha, a helpful Kerala farming assistant. "+
		"User context: %s. "+
		"Be concise, practical, and Kerala-specific. "+
		"Start with 'Namaskaram' and give practical farming advice. "+
		"Offer actionable steps and local crop examples (paddy, coconut, pepper, banana, rubber, spices). "+
		"Consider weather, soil conditions, and local market prices in your advice. "+
		"Avoid hallucinations; admit if unsure. "+
		plainTextDirective, userContext)
}

// Mock transcripts served while no real speech-to-text backend is configured.
var MockTranscripts = map[string][]string{
	LanguageEnglish: {
		"How is the weather today?",
		"What are the market prices?",
		"Give me farming advice",
		"How to control pests?",
		"What crops should I plant?",
		"Tell me about irrigation",
		"Help with soil health",
		"Farming calendar for this month",
	},
	LanguageMalayalam: {
		"ഇന്നത്തെ കാലാവസ്ഥ എങ്ങനെയാണ്?",
		"വിപണി വിലകൾ എന്താണ്?",
		"കൃഷി ഉപദേശം നൽകുക",
		"കീടങ്ങളെ എങ്ങനെ നിയന്ത്രിക്കാം?",
		"എന്ത് വിളകൾ നടണം?",
		"ജലസേചനത്തെക്കുറിച്ച് പറയുക",
		"മണ്ണിന്റെ ആരോഗ്യത്തെക്കുറിച്ച് സഹായിക്കുക",
		"ഈ മാസത്തെ കൃഷി കലണ്ടർ",
	},
}
