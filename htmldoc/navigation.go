package htmldoc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// chromePattern matches class and id values used for navigation and page
// chrome. Matches are whole words so "navy" or "menus-of-the-day" do not hit.
var chromePattern = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumbs?|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside)([^a-z]|$)`)

// Link-density thresholds for NavigationExclusionAggressive.
const (
	maxLinkDensity = 0.6
	minLinks       = 4
)

// exclusionChecker decides which elements are dropped for a mode.
type exclusionChecker struct {
	mode    NavigationExclusionMode
	body    *html.Node
	wrapper *html.Node // single top-level div or main, if any
	density map[*html.Node]float64
}

func newExclusionChecker(mode NavigationExclusionMode, doc *html.Node) *exclusionChecker {
	ec := &exclusionChecker{
		mode:    mode,
		density: make(map[*html.Node]float64),
	}
	ec.body = findElement(doc, "body")
	if ec.body == nil {
		ec.body = doc
	}
	ec.wrapper = topLevelWrapper(ec.body)
	return ec
}

// topLevelWrapper returns the only structural child of body, covering the
// common <body><div id="page">...</div></body> layout.
func topLevelWrapper(body *html.Node) *html.Node {
	var found *html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || shouldSkipElement(c.Data) {
			continue
		}
		if c.Data != "div" && c.Data != "main" {
			return nil
		}
		if found != nil {
			return nil
		}
		found = c
	}
	return found
}

func (ec *exclusionChecker) shouldExclude(n *html.Node) bool {
	if n.Type != html.ElementNode || ec.mode == NavigationExclusionNone {
		return false
	}
	if ec.explicit(n) {
		return true
	}
	if ec.mode >= NavigationExclusionStandard && ec.byPattern(n) {
		return true
	}
	return ec.mode >= NavigationExclusionAggressive && ec.byLinkDensity(n)
}

func (ec *exclusionChecker) explicit(n *html.Node) bool {
	switch n.Data {
	case "nav", "aside":
		return true
	case "header", "footer":
		return ec.isTopLevel(n)
	}
	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		return ec.isTopLevel(n)
	}
	return false
}

func (ec *exclusionChecker) isTopLevel(n *html.Node) bool {
	p := n.Parent
	return p != nil && (p == ec.body || (ec.wrapper != nil && p == ec.wrapper))
}

func (ec *exclusionChecker) byPattern(n *html.Node) bool {
	for _, key := range []string{"class", "id"} {
		if v := getAttr(n, key); v != "" && chromePattern.MatchString(v) {
			return true
		}
	}
	return false
}

func (ec *exclusionChecker) byLinkDensity(n *html.Node) bool {
	switch n.Data {
	case "div", "section", "ul", "ol":
	default:
		return false
	}
	return ec.linkDensity(n) > maxLinkDensity && countLinks(n) >= minLinks
}

// linkDensity is the share of n's text that sits inside links.
func (ec *exclusionChecker) linkDensity(n *html.Node) float64 {
	if d, ok := ec.density[n]; ok {
		return d
	}
	var d float64
	if total := textLength(n); total > 0 {
		d = float64(linkTextLength(n)) / float64(total)
	}
	ec.density[n] = d
	return d
}

func textLength(n *html.Node) int {
	if n.Type == html.TextNode {
		return len(strings.TrimSpace(n.Data))
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += textLength(c)
	}
	return total
}

func linkTextLength(n *html.Node) int {
	if n.Type == html.ElementNode && n.Data == "a" {
		return textLength(n)
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += linkTextLength(c)
	}
	return total
}

func countLinks(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode && n.Data == "a" {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countLinks(c)
	}
	return count
}

// getAttr returns the value of an attribute, or "" if it is absent.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
