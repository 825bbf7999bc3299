package prodscrape

import "strings"

// Role identifies the semantic field a markup region feeds.
type Role int

// Field roles. RoleNone means no field is being buffered.
const (
	RoleNone Role = iota
	RoleTitle
	RolePrice
	RoleRating
)

// String returns the role name for logging.
func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RolePrice:
		return "price"
	case RoleRating:
		return "rating"
	default:
		return "none"
	}
}

// Keyword lists for heuristic classification. Ordered and exported so the
// matching rules are auditable. Matching is case-insensitive substring
// matching against attribute values.
var (
	ContainerKeywords = []string{"product", "item", "listing", "card"}
	TitleKeywords     = []string{"title", "name"}
	PriceKeywords     = []string{"price", "cost", "amount", "currency"}
	RatingKeywords    = []string{"rating", "star", "score"}
)

// TitleTags are heading tag kinds that qualify as title candidates
// regardless of their attributes.
var TitleTags = []string{"h1", "h2", "h3", "h4"}

// IsContainer reports whether a tag's attributes mark it as a product
// container. The class and id attribute values are checked independently.
func IsContainer(attrs map[string]string) bool {
	class := strings.ToLower(attrs["class"])
	id := strings.ToLower(attrs["id"])
	for _, kw := range ContainerKeywords {
		if strings.Contains(class, kw) || strings.Contains(id, kw) {
			return true
		}
	}
	return false
}

// ClassifyField decides which field role a tag opens. Categories are
// evaluated in order Title, Price, Rating; a later match overwrites an
// earlier one, so exactly one role survives per tag.
func ClassifyField(tag string, attrs map[string]string) Role {
	class := strings.ToLower(attrs["class"])

	role := RoleNone
	if isTitleTag(tag) || containsAny(class, TitleKeywords) {
		role = RoleTitle
	}
	if containsAny(class, PriceKeywords) {
		role = RolePrice
	}
	if containsAny(class, RatingKeywords) {
		role = RoleRating
	}
	return role
}

func isTitleTag(tag string) bool {
	for _, t := range TitleTags {
		if tag == t {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
