package domain

import "strings"

// MaxTags is the maximum number of tags derived from a description
const MaxTags = 8

// TagSeparator joins tags for the clipboard
const TagSeparator = ", "

// Fallback tag collections returned by the generation client
var (
	EmptyResultTags = []string{"general"}
	FailedTags      = []string{"error"}
)

// ParseTags splits a comma-joined model response into tags: each part is
// trimmed, empties are dropped and the result is capped at MaxTags.
// Duplicates are kept; callers that need uniqueness use UniqueTags.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}

// UniqueTags drops empty strings and repeated tags, keeping the first
// occurrence of each. Matching is exact and case-sensitive.
func UniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		result = append(result, t)
	}
	return result
}

// NormalizeTags cleans a tag collection from an untrusted generator: tags are
// trimmed, empties and repeats dropped and the result capped at MaxTags.
// An empty result becomes EmptyResultTags.
func NormalizeTags(tags []string) []string {
	trimmed := make([]string, 0, len(tags))
	for _, t := range tags {
		trimmed = append(trimmed, strings.TrimSpace(t))
	}

	result := UniqueTags(trimmed)
	if len(result) > MaxTags {
		result = result[:MaxTags]
	}
	if len(result) == 0 {
		return append([]string(nil), EmptyResultTags...)
	}
	return result
}

// ContainsTag reports whether tags contains tag (exact match)
func ContainsTag(tags []string, tag string) bool {
	return IndexOfTag(tags, tag) != -1
}

// IndexOfTag returns the index of tag in tags, or -1
func IndexOfTag(tags []string, tag string) int {
	for i, t := range tags {
		if t == tag {
			return i
		}
	}
	return -1
}

// JoinTags renders tags the way they are copied to the clipboard
func JoinTags(tags []string) string {
	return strings.Join(tags, TagSeparator)
}
