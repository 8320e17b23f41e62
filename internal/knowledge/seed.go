package knowledge

var (
	genericGreetingResponses = []string{
		"Hello! What do you want?",
		"Hi there! What can I do for you?",
		"Hey! How's it going?",
	}

	seedGreetings = map[string][]string{
		"how are you": {
			"I'm just a bunch of code, but I'm here to help!",
			"I'm fine, thanks!",
			"Feeling digital as always!",
		},
		"what is your name": {
			"I'm Eliana Alpha0.2.",
			"You can call me Eliana.",
			"I'm Eliana, your friendly AI.",
			"I'm Eliana, but you can call me daddy.",
		},
		"what do you do": {
			"I tell you what I know.",
			"I'm here to talk to you because you are lonely.",
			"I give you the meaning of words and talk.",
		},
		"hello": genericGreetingResponses,
		"hi":    genericGreetingResponses,
		"hey":   genericGreetingResponses,
	}

	seedWordMeanings = map[string]string{
		"help":        "At least say please.",
		"order":       "A request for something to be made, supplied, or served.",
		"anime":       "Top tier entertainment",
		"god is good": "All the time",
	}
)

// SeedSnapshot returns a fresh copy of the built-in knowledge.
func SeedSnapshot() Snapshot {
	words := make(map[string]string, len(seedWordMeanings))
	for word, meaning := range seedWordMeanings {
		words[word] = meaning
	}
	greetings := make(map[string][]string, len(seedGreetings))
	for trigger, responses := range seedGreetings {
		greetings[trigger] = append([]string(nil), responses...)
	}
	return Snapshot{
		WordMeanings:        words,
		PredefinedResponses: greetings,
	}
}
