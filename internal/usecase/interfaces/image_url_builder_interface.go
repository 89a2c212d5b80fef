package interfaces

// IImageURLBuilder derives display images for external model listings.
// URLs are never fetched or validated server-side.
type IImageURLBuilder interface {
	// PlaceholderURL is a deterministic text placeholder.
	PlaceholderURL(title string) string
	// GeneratedURL points at an image-generation endpoint seeded randomly.
	GeneratedURL(title string) string
}
