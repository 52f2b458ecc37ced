package founder

import (
	"regexp"
	"strings"
)

var (
	emojiRegex    = regexp.MustCompile(`[\x{1F600}-\x{1F64F}]|[\x{1F300}-\x{1F5FF}]|[\x{1F680}-\x{1F6FF}]|[\x{1F700}-\x{1F77F}]|[\x{1F780}-\x{1F7FF}]|[\x{1F800}-\x{1F8FF}]|[\x{1F900}-\x{1F9FF}]|[\x{1FA00}-\x{1FA6F}]|[\x{1FA70}-\x{1FAFF}]|[\x{2600}-\x{26FF}]|[\x{2700}-\x{27BF}]`)
	urlRegex      = regexp.MustCompile(`https?://\S+`)
	htmlRegex     = regexp.MustCompile(`<[^>]*>`)
	markdownRegex = regexp.MustCompile("[*_~`#\\[\\]|]")
	sentenceEnd   = regexp.MustCompile(`[.!?]+\s*`)
)

// FilterText strips emoji, links, HTML and markdown markup from a model
// reply and collapses whitespace. URLs go before markdown so link
// brackets do not hide them.
func FilterText(text string) string {
	filtered := emojiRegex.ReplaceAllString(text, "")
	filtered = urlRegex.ReplaceAllString(filtered, "")
	filtered = htmlRegex.ReplaceAllString(filtered, "")
	filtered = markdownRegex.ReplaceAllString(filtered, "")
	return strings.Join(strings.Fields(filtered), " ")
}

// LimitSentences keeps the first max sentences.
func LimitSentences(text string, max int) string {
	parts := sentenceEnd.Split(text, -1)
	enders := sentenceEnd.FindAllString(text, -1)

	var sentences []string
	for i, part := range parts {
		if i < len(enders) {
			part += enders[i]
		}
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	if len(sentences) > max {
		sentences = sentences[:max]
	}
	return strings.Join(sentences, " ")
}
