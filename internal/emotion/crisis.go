package emotion

import "strings"

// ScanCrisis checks the text against the crisis keyword list and
// returns the matched keywords. The scan is substring-based on the
// lowercased text so it works before any punctuation stripping.
func ScanCrisis(text string) (bool, []string) {
	lower := strings.ToLower(text)

	var matched []string
	for _, keyword := range CrisisKeywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}

	return len(matched) > 0, matched
}
