package venues

import (
	"context"
	"regexp"
	"strings"

	"bling/db"

	"go.mongodb.org/mongo-driver/bson"
)

// Icelandic characters that would otherwise be stripped entirely.
var translit = strings.NewReplacer(
	"á", "a", "à", "a", "ä", "a", "â", "a",
	"é", "e", "è", "e", "ë", "e", "ê", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"ó", "o", "ò", "o", "ö", "o", "ô", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
	"ý", "y", "ÿ", "y",
	"ð", "d", "þ", "th", "æ", "ae",
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// GenerateSlug derives a URL-safe identifier from a venue name.
func GenerateSlug(name string) string {
	if name == "" {
		return ""
	}
	s := translit.Replace(strings.ToLower(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug checks length and character rules: 3-50 chars, lowercase
// alphanumerics and hyphens, no leading or trailing hyphen.
func IsValidSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 50 {
		return false
	}
	return slugPattern.MatchString(slug)
}

// isSlugAvailable reports whether no other venue uses the slug. When updating
// a venue, its own id is excluded from the check.
func isSlugAvailable(ctx context.Context, slug, excludeVenueID string) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeVenueID != "" {
		filter["venueid"] = bson.M{"$ne": excludeVenueID}
	}
	count, err := db.VenuesCollection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
