package utils

import "github.com/gosimple/slug"

// Slugify derives a URL-safe slug from an article title.
func Slugify(title string) string {
	return slug.Make(title)
}
