package tagging

import "strings"

// Rule adds Tag when any keyword occurs in the analyzed text.
type Rule struct {
	Keywords []string `yaml:"keywords"`
	Tag      string   `yaml:"tag"`
}

// prefixChars bounds how much body text the rules look at.
const prefixChars = 2000

// Engine evaluates an ordered list of keyword rules. Matching is a plain
// case-insensitive substring test, so "ai" also fires inside "said".
type Engine struct {
	rules []Rule
}

func NewEngine(rules []Rule) *Engine {
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if strings.TrimSpace(r.Tag) == "" {
			continue
		}
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				kws = append(kws, kw)
			}
		}
		normalized = append(normalized, Rule{Keywords: kws, Tag: r.Tag})
	}
	return &Engine{rules: normalized}
}

// Tags returns the tags of every rule firing on title plus the head of text,
// in rule order.
func (e *Engine) Tags(title, text string) []string {
	runes := []rune(text)
	if len(runes) > prefixChars {
		runes = runes[:prefixChars]
	}
	haystack := strings.ToLower(title + " " + string(runes))

	var tags []string
	for _, r := range e.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(haystack, kw) {
				tags = append(tags, r.Tag)
				break
			}
		}
	}
	return Merge(tags)
}

// Merge unions tag lists, dropping case-insensitive duplicates and blanks.
// The first spelling and the original order are kept.
func Merge(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, tag := range list {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// DefaultRules is used when the config does not list tag rules.
func DefaultRules() []Rule {
	return []Rule{
		{Tag: "AI", Keywords: []string{"artificial intelligence", "machine learning", "llm", "openai", "chatgpt", "gpt-", "neural network", "deep learning"}},
		{Tag: "Security", Keywords: []string{"vulnerability", "exploit", "ransomware", "cve-", "breach", "malware", "phishing"}},
		{Tag: "Cloud", Keywords: []string{"aws", "azure", "google cloud", "kubernetes", "serverless"}},
		{Tag: "Mobile", Keywords: []string{"iphone", "android", "ios ", "smartphone"}},
		{Tag: "Startup", Keywords: []string{"startup", "funding round", "series a", "series b", "venture capital"}},
		{Tag: "Semiconductor", Keywords: []string{"semiconductor", "chipmaker", "nvidia", "tsmc", "gpu"}},
		{Tag: "Blockchain", Keywords: []string{"blockchain", "bitcoin", "ethereum", "crypto"}},
		{Tag: "Open Source", Keywords: []string{"open source", "open-source", "github"}},
	}
}
