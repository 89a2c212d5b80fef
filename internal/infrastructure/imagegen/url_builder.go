package imagegen

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"regexp"
	"strings"

	"agencia_maker/internal/usecase/interfaces"
)

const (
	PlaceholderBaseURL = "https://placehold.co/600x400/EEE/31343C"
	PollinationsURL    = "https://image.pollinations.ai/prompt/"
)

var titleNoise = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// URLBuilder templates listing images from their titles.
type URLBuilder struct {
	seed func() int
}

var _ interfaces.IImageURLBuilder = (*URLBuilder)(nil)

func NewURLBuilder() *URLBuilder {
	return &URLBuilder{seed: func() int { return rand.IntN(1_000_000) }}
}

// NewSeededURLBuilder fixes the seed source, for deterministic output.
func NewSeededURLBuilder(seed func() int) *URLBuilder {
	return &URLBuilder{seed: seed}
}

func (b *URLBuilder) PlaceholderURL(title string) string {
	return PlaceholderBaseURL + "?text=" + url.PathEscape(CleanTitle(title))
}

func (b *URLBuilder) GeneratedURL(title string) string {
	prompt := fmt.Sprintf("3D printed %s studio product photo", CleanTitle(title))
	return fmt.Sprintf("%s%s?width=600&height=400&seed=%d&nologo=true", PollinationsURL, url.PathEscape(prompt), b.seed())
}

// CleanTitle keeps ASCII letters, digits and spaces.
func CleanTitle(title string) string {
	return strings.TrimSpace(titleNoise.ReplaceAllString(title, ""))
}
