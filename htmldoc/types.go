// Package htmldoc converts HTML fragments into rich-text paragraphs.
package htmldoc

// NavigationExclusionMode controls how navigation, headers and footers are
// filtered before conversion.
type NavigationExclusionMode int

const (
	// NavigationExclusionNone converts everything.
	NavigationExclusionNone NavigationExclusionMode = iota

	// NavigationExclusionExplicit skips <nav>, <aside> and the ARIA roles
	// navigation and complementary. <header> and <footer> are skipped only
	// at the top of the body or of a single wrapper element.
	NavigationExclusionExplicit

	// NavigationExclusionStandard also skips elements whose class or id
	// looks like navigation or page chrome (nav, menu, footer, sidebar, ...).
	NavigationExclusionStandard

	// NavigationExclusionAggressive also skips link-heavy containers.
	NavigationExclusionAggressive
)

// DefaultBullet marks unordered list items.
const DefaultBullet = "•"

// Options controls conversion.
type Options struct {
	Navigation NavigationExclusionMode
	Bullet     string // marker for unordered list items; empty means DefaultBullet
}

// DefaultOptions returns the options used by Parse.
func DefaultOptions() Options {
	return Options{
		Navigation: NavigationExclusionStandard,
		Bullet:     DefaultBullet,
	}
}

func (o Options) bullet() string {
	if o.Bullet == "" {
		return DefaultBullet
	}
	return o.Bullet
}
