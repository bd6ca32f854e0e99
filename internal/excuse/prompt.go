package excuse

import "fmt"

// seriousnessPhrases maps the 1-5 seriousness level to the descriptive
// phrase interpolated into the prompt.
var seriousnessPhrases = map[int]string{
	1: "very silly and humorous",
	2: "light and playful",
	3: "balanced and professional",
	4: "serious and formal",
	5: "very serious and professional",
}

// SeriousnessPhrase returns the descriptive phrase for a seriousness
// level. Unknown levels (only reachable when validation is bypassed) map
// to "balanced".
func SeriousnessPhrase(level int) string {
	if phrase, ok := seriousnessPhrases[level]; ok {
		return phrase
	}
	return "balanced"
}

const promptTemplate = `You are an expert email writer. Generate a professional excuse email based on the following requirements:

Category: %s
Tone: %s
Seriousness Level: %s (scale 1-5, current: %d)
Recipient: %s
Sender: %s
ETA/When: %s

Please generate a JSON response with the following structure:
{
    "subject": "Appropriate email subject line",
    "body": "Complete email body with greeting, apology, reason, next steps, and sign-off"
}

Requirements:
- The email should be appropriate for the %s tone
- Match the %s seriousness level
- Include the specific ETA/when information: %s
- Address %s appropriately
- Sign off from %s
- Keep it professional but match the requested tone
- The body should be well-formatted with proper paragraphs

Return only the JSON response, no additional text.`

// BuildPrompt renders the instruction sent to the model. It is
// deterministic in the request fields and performs no I/O.
func BuildPrompt(req Request) string {
	phrase := SeriousnessPhrase(req.Seriousness)
	return fmt.Sprintf(promptTemplate,
		req.Category,
		req.Tone,
		phrase,
		req.Seriousness,
		req.RecipientName,
		req.SenderName,
		req.ETAWhen,
		req.Tone,
		phrase,
		req.ETAWhen,
		req.RecipientName,
		req.SenderName,
	)
}
