package service

import (
	"fmt"
	"strings"
)

// Draft action name constants.
// Use these instead of string literals for compile-time safety.
const (
	ActionReply     = "reply"
	ActionRewrite   = "rewrite"
	ActionSummarize = "summarize"
	ActionProofread = "proofread"
)

// actionOrder defines the canonical order for ActionNames().
// This order is used for API documentation and error messages.
var actionOrder = []string{
	ActionReply,
	ActionRewrite,
	ActionSummarize,
	ActionProofread,
}

// templates maps action names to their prompt templates. Templates use
// {{MESSAGE}}, {{TONE}}, and {{SIGNATURE}} markers filled in per request.
// Prompts are versioned with the binary; an update requires a rebuild.
var templates = map[string]string{
	ActionReply:     replyTemplate,
	ActionRewrite:   rewriteTemplate,
	ActionSummarize: summarizeTemplate,
	ActionProofread: proofreadTemplate,
}

// GetTemplate returns the prompt template for the given action name.
// Returns ErrUnknownAction if the name is not recognized.
func GetTemplate(action string) (string, error) {
	tmpl, ok := templates[action]
	if !ok {
		return "", fmt.Errorf("unknown action %q (want one of: %s): %w",
			action, strings.Join(ActionNames(), ", "), ErrUnknownAction)
	}
	return tmpl, nil
}

// ActionNames returns the list of available draft actions.
// The order is stable (reply, rewrite, summarize, proofread).
func ActionNames() []string {
	result := make([]string, len(actionOrder))
	copy(result, actionOrder)
	return result
}

const replyTemplate = `You draft a reply to the email below.

Rules:
- Match a {{TONE}} tone
- Address every question or request in the original message
- Keep it concise: no filler openings like "I hope this finds you well"
- Do not invent facts, commitments, or dates not implied by the message
- End with this signature if one is given, else no signature: {{SIGNATURE}}

Email to reply to:

{{MESSAGE}}`

const rewriteTemplate = `You rewrite the email draft below, preserving its meaning.

Rules:
- Match a {{TONE}} tone
- Keep every factual statement, name, date, and number unchanged
- Improve clarity and flow; shorten where possible without losing content
- Keep the original greeting and sign-off style unless they clash with the tone
- Return only the rewritten email, no commentary

Draft to rewrite:

{{MESSAGE}}`

const summarizeTemplate = `You summarize the email or thread below.

Rules:
- Lead with a one-sentence overview
- Bullet points for the key facts, decisions, and open questions
- Name who said what when it matters
- Do not editorialize or add information not in the text

Text to summarize:

{{MESSAGE}}`

const proofreadTemplate = `You proofread the email draft below.

Rules:
- Fix spelling, grammar, and punctuation only
- Do not change wording, tone, or structure beyond what a fix requires
- Keep formatting, line breaks, and quoted text as they are
- Return only the corrected email, no commentary

Draft to proofread:

{{MESSAGE}}`
