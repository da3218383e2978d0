package categorizer

import (
	"fmt"
	"strings"
	"studyshare/pkg/domain"
)

const categorizeSystem = `You catalogue study material for Sri Lankan G.C.E. O-Level students.
Answer with a single JSON object and nothing else.`

const reviewSystem = `You screen files uploaded to a study material sharing site for Sri Lankan O-Level students.
Answer with a single JSON object and nothing else.`

const moderateSystem = `You moderate short thank-you notes students send to each other on a study site.
Answer with a single JSON object and nothing else.`

func categorizePrompt(fileName, hint, text string) string {
	var sb strings.Builder
	sb.WriteString("Classify the attached document.\n\nAllowed subjects (use the id):\n")
	for _, s := range domain.Catalog {
		fmt.Fprintf(&sb, "- %s: %s\n", s.Subject, s.Name)
	}
	sb.WriteString("\nAllowed media: ")
	for i, m := range domain.Media {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(m))
	}
	sb.WriteString("\nAllowed types: ")
	for i, t := range domain.DocTypes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(t))
	}
	sb.WriteString(`

Reply with:
{"title": "<short descriptive title>", "subject": "<subject id>", "medium": "<medium>",` +
		` "doc_type": "<type>", "year": <exam year or 0>, "confidence": <0..1>}
`)
	fmt.Fprintf(&sb, "\nFile name: %s\n", fileName)
	if hint != "" {
		fmt.Fprintf(&sb, "Title suggested by the uploader: %s\n", hint)
	}
	if text != "" {
		fmt.Fprintf(&sb, "\nText of the first pages:\n%s\n", text)
	}

	return sb.String()
}

func reviewPrompt(fileName, text string) string {
	var sb strings.Builder
	sb.WriteString(`Decide whether the attached file is appropriate for students and whether it is study material
(past papers, model papers, notes, books or similar).

Reply with:
{"appropriate": true|false, "is_study_material": true|false, "reason": "<one sentence>"}
`)
	fmt.Fprintf(&sb, "\nFile name: %s\n", fileName)
	if text != "" {
		fmt.Fprintf(&sb, "\nText of the first pages:\n%s\n", text)
	}

	return sb.String()
}

func moderatePrompt(body string) string {
	return `Is the following note appropriate to show to a student? Reject insults, harassment, sexual content,` +
		` spam and contact details.

Reply with:
{"appropriate": true|false, "reason": "<one sentence shown to the sender when rejected>"}

Note:
"""
` + body + `
"""`
}
