package domain

const (
	ExcerptLength = 150
	excerptSuffix = "..."
)

// Truncate shortens s to limit runes, appending "..." only when something was cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + excerptSuffix
}

// Excerpt returns the first ExcerptLength runes of body followed by "...".
// The suffix is always appended, also for bodies shorter than the limit.
func Excerpt(body string) string {
	runes := []rune(body)
	if len(runes) > ExcerptLength {
		runes = runes[:ExcerptLength]
	}
	return string(runes) + excerptSuffix
}
