package prodscrape

import (
	"regexp"
	"strings"
	"unicode"
)

// fieldRule pairs a pattern with the submatch group returned on a match.
// Group 0 returns the full matched substring.
type fieldRule struct {
	re    *regexp.Regexp
	group int
}

// priceRules are tried in order; the first pattern that matches anywhere in
// the text wins and its full match is returned. Currency symbols first,
// trailing currency codes last.
var priceRules = []fieldRule{
	{re: regexp.MustCompile(`\$[\d,]+\.?\d*`)},
	{re: regexp.MustCompile(`₹[\d,]+\.?\d*`)},
	{re: regexp.MustCompile(`€[\d,]+\.?\d*`)},
	{re: regexp.MustCompile(`£[\d,]+\.?\d*`)},
	{re: regexp.MustCompile(`(?i)[\d,]+\.?\d*\s*(?:USD|EUR|GBP|INR)`)},
}

// ratingRules are tried in order; only the captured numeric group is
// returned. The generic N/5 form is kept last for robustness.
var ratingRules = []fieldRule{
	{re: regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:out of|/)\s*5`), group: 1},
	{re: regexp.MustCompile(`(?i)(\d+\.?\d*)\s*stars?`), group: 1},
	{re: regexp.MustCompile(`(?i)(\d+\.?\d*)/5`), group: 1},
}

// NormalizePrice converts raw buffered text into a canonical price label.
// If no price pattern matches, the trimmed input is returned as long as it
// contains at least one digit, otherwise the NA sentinel. Matched substrings
// are returned as-is, including currency symbols and separators.
func NormalizePrice(text string) string {
	return applyRules(priceRules, text)
}

// NormalizeRating converts raw buffered text into a canonical rating label.
// Fallback behavior is identical to NormalizePrice.
func NormalizeRating(text string) string {
	return applyRules(ratingRules, text)
}

func applyRules(rules []fieldRule, text string) string {
	if text == "" {
		return NA
	}

	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[rule.group])
		}
	}

	if containsDigit(text) {
		return strings.TrimSpace(text)
	}
	return NA
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
