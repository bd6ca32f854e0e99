package excuse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// minBodyLength is the shortest body the text strategy may return before
// the templated fallback replaces it.
const minBodyLength = 50

// Draft is a normalized subject/body pair ready to hand back to the
// caller.
type Draft struct {
	Subject string
	Body    string
}

// strategy inspects a raw model reply and either produces a draft or
// declines so the next strategy in the chain runs.
type strategy func(reply string, req Request) (Draft, bool)

var strategies = []strategy{parseJSONReply, parseTextReply}

// Normalize converts an arbitrary model reply into a usable draft. It
// never fails: a JSON reply is taken as-is, a text reply is mined for a
// subject line, and a text body that is still too short is replaced with
// a templated fallback. Only the body is ever replaced by the fallback;
// the subject stays whatever the earlier strategies produced.
func Normalize(reply string, req Request) Draft {
	for _, s := range strategies {
		if draft, ok := s(reply, req); ok {
			return draft
		}
	}
	// parseTextReply always matches, so this is unreachable.
	return Draft{Subject: defaultSubject(req), Body: fallbackBody(req)}
}

func defaultSubject(req Request) string {
	return "Re: " + req.Category
}

// parseJSONReply handles replies that look like a JSON object with
// "subject" and "body" keys. A reply that starts with '{' but fails to
// parse is silently left for the text strategy. The minimum-length guard
// does not apply here: a parsed JSON body is returned as-is.
func parseJSONReply(reply string, req Request) (Draft, bool) {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "{") {
		return Draft{}, false
	}

	var fields struct {
		Subject *string `json:"subject"`
		Body    *string `json:"body"`
	}
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return Draft{}, false
	}

	draft := Draft{
		Subject: defaultSubject(req),
		Body:    "Email content could not be generated.",
	}
	if fields.Subject != nil {
		draft.Subject = *fields.Subject
	}
	if fields.Body != nil {
		draft.Body = *fields.Body
	}
	return draft, true
}

// parseTextReply mines a plain-text reply for a subject line and keeps
// the remaining lines, in their original order, as the body. It always
// matches.
func parseTextReply(reply string, req Request) (Draft, bool) {
	lines := strings.Split(strings.TrimSpace(reply), "\n")

	// First line with a "subject:" or "subject " prefix wins; scanning
	// stops there.
	subject := defaultSubject(req)
	subjectLine := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "subject:") {
			subject = strings.TrimSpace(line[len("subject:"):])
			subjectLine = i
			break
		}
		if strings.HasPrefix(lower, "subject ") {
			subject = strings.TrimSpace(line[len("subject "):])
			subjectLine = i
			break
		}
	}

	// Rebuild the body without the subject line and without the blank
	// padding immediately after it. Blank lines elsewhere stay.
	var bodyLines []string
	skipBlank := false
	for i, line := range lines {
		if i == subjectLine {
			skipBlank = true
			continue
		}
		if skipBlank {
			if strings.TrimSpace(line) == "" {
				continue
			}
			skipBlank = false
		}
		bodyLines = append(bodyLines, line)
	}

	body := strings.TrimSpace(strings.Join(bodyLines, "\n"))
	if len(body) < minBodyLength {
		body = fallbackBody(req)
	}
	return Draft{Subject: subject, Body: body}, true
}

// fallbackBody synthesizes a minimal but complete email when the reply
// carried no usable body. The category is lower-cased here and nowhere
// else.
func fallbackBody(req Request) string {
	return fmt.Sprintf(`Dear %s,

I wanted to let you know that I'm running late due to %s.

%s

I apologize for any inconvenience this may cause.

Best regards,
%s`, req.RecipientName, strings.ToLower(req.Category), req.ETAWhen, req.SenderName)
}
