package trend

import (
	"fmt"
	"regexp"
	"strings"

	"newsroom/internal/domain"
)

func buildPrompt(articles []domain.Article, tags []domain.TagCount, maxTitles, maxTags int) string {
	var b strings.Builder
	b.WriteString("You are a technology news analyst. Below are the headlines and the most frequent tags ")
	b.WriteString("from the articles published in the last week.\n\n")

	b.WriteString("Headlines:\n")
	for i, a := range articles {
		if i == maxTitles {
			break
		}
		fmt.Fprintf(&b, "- %s\n", a.Title)
	}

	b.WriteString("\nTop tags:\n")
	for i, t := range tags {
		if i == maxTags {
			break
		}
		fmt.Fprintf(&b, "- %s (%d)\n", t.Tag, t.Count)
	}

	b.WriteString("\nAnswer in exactly this format:\n")
	b.WriteString("SUMMARY: <three to five sentences describing the main trends>\n")
	b.WriteString("EMERGING TOPICS: <comma-separated list of new or rising topics>\n")
	return b.String()
}

var (
	summaryRe    = regexp.MustCompile(`(?is)summary\W*:\W*(.*?)(?:(emerging\s+topics\W*:)|\z)`)
	topicsRe     = regexp.MustCompile(`(?is)emerging\s+topics\W*:\s*(.*)`)
	markupRe     = regexp.MustCompile(`[*_#` + "`" + `]+`)
	listMarkerRe = regexp.MustCompile(`\n[ \t]*(?:\d+[.)]|[-*•])?[ \t]*$`)
)

// ParseResponse splits a model answer into the summary and emerging topics
// sections. Markdown emphasis around labels is tolerated. When no summary
// label is found the whole text becomes the summary.
func ParseResponse(text string) (summary string, topics []string) {
	topics = []string{}
	text = strings.TrimSpace(text)

	m := summaryRe.FindStringSubmatch(text)
	if m == nil {
		return text, topics
	}
	section := m[1]
	if m[2] != "" {
		// a numbered or bulleted answer leaves the marker of the topics item behind
		section = listMarkerRe.ReplaceAllString(markupRe.ReplaceAllString(section, ""), "")
	}
	summary = cleanSection(section)
	if summary == "" {
		summary = text
	}

	if t := topicsRe.FindStringSubmatch(text); t != nil {
		section := t[1]
		if line, _, ok := strings.Cut(strings.TrimSpace(section), "\n\n"); ok {
			section = line
		}
		for _, topic := range strings.FieldsFunc(section, func(r rune) bool {
			return r == ',' || r == '\n' || r == '、'
		}) {
			topic = strings.TrimLeft(cleanSection(topic), "-• ")
			if topic != "" {
				topics = append(topics, topic)
			}
		}
	}
	return summary, topics
}

func cleanSection(s string) string {
	return strings.Join(strings.Fields(markupRe.ReplaceAllString(s, "")), " ")
}
