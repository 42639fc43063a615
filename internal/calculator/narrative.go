package calculator

import (
	"strings"

	"verdant/internal/domain"
)

// SectionHeadings are the headers the advice prompt asks the model to use,
// in presentation order.
var SectionHeadings = []string{
	"YOUR INVESTMENT PROFILE",
	"TOP RECOMMENDATION",
	"SUGGESTED ALLOCATION",
	"ENVIRONMENTAL IMPACT",
	"KEY RISKS TO WATCH",
	"FINAL VERDICT",
}

const disclaimerMarker = "educational purposes"

// SplitNarrative parses model output into the expected sections. Matching is
// best-effort: a line counts as a header when its uppercased form contains
// one of the expected headings. If nothing matches, the whole response comes
// back as a single unstructured block — malformed model output must never
// propagate an error.
func SplitNarrative(text string) domain.Narrative {
	narrative := domain.Narrative{Raw: text}

	var current *domain.NarrativeSection
	for _, line := range strings.Split(text, "\n") {
		upper := strings.ToUpper(strings.TrimSpace(line))

		var matched string
		for _, heading := range SectionHeadings {
			if strings.Contains(upper, heading) {
				matched = heading
				break
			}
		}

		switch {
		case matched != "":
			if current != nil {
				appendSection(&narrative, *current)
			}
			current = &domain.NarrativeSection{Heading: matched}
		case strings.Contains(line, disclaimerMarker):
			narrative.Disclaimer = strings.TrimSpace(line)
		case current != nil:
			current.Body += line + "\n"
		}
	}
	if current != nil {
		appendSection(&narrative, *current)
	}

	narrative.Structured = len(narrative.Sections) > 0
	return narrative
}

func appendSection(n *domain.Narrative, s domain.NarrativeSection) {
	s.Body = strings.TrimSpace(s.Body)
	if s.Body == "" {
		return
	}
	n.Sections = append(n.Sections, s)
}
