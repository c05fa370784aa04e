package ai

import (
	"fmt"
	"strings"
)

func summaryPrompt(language, text string) string {
	return fmt.Sprintf(`Summarize the following news article in %s.
Write 3 to 5 concise sentences covering the key facts and why they matter.
Return only the summary text.

ARTICLE:
---
%s
---`, language, text)
}

func translatePrompt(language, title string) string {
	return fmt.Sprintf(`Translate this news headline into natural %s.
Keep product names, company names and acronyms as they are.
Return only the translated headline.

%s`, language, title)
}

// clean strips wrapping the models tend to add around an answer.
func clean(s string) string {
	s = strings.ReplaceAll(s, "<|system|>", "")
	s = strings.ReplaceAll(s, "<|user|>", "")
	s = strings.ReplaceAll(s, "<end_of_turn>", "")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
