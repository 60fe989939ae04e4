package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lyricbook"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultOrigin is the origin relative metadata links are resolved against.
const DefaultOrigin = "https://utaten.com"

// Region names reported by lyricbook.MissingRegionError.
const (
	RegionTitle    = "title"
	RegionMetadata = "metadata"
	RegionBody     = "body"
)

// Layout describes where the regions of a lyrics page live and which of
// their sub-regions are dropped.
type Layout struct {
	// Container is the element whose tag and attributes are reused for
	// the pruned document. A plain <article> is used if it is absent.
	Container string

	Title       string
	TitleSuffix string

	Metadata       string
	MetadataFooter string

	Body        string
	BodyReading string
}

// DefaultLayout returns the utaten.com page layout.
func DefaultLayout() Layout {
	return Layout{
		Container:      "article",
		Title:          ".newLyricTitle",
		TitleSuffix:    ".newLyricTitle_afterTxt",
		Metadata:       ".lyricData",
		MetadataFooter: ".newLyricWorkFooter",
		Body:           ".lyricBody",
		BodyReading:    ".romaji",
	}
}

var _ lyricbook.Extractor = (*Extractor)(nil)

// Extractor prunes lyrics pages using CSS selectors.
//
// Regions are deep-copied out of the parsed page before anything is removed,
// so the page itself is never mutated and each fragment is owned by the
// pruned document it ends up in.
type Extractor struct {
	layout    Layout
	origin    string
	pageBreak bool
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithLayout sets the page layout.
func WithLayout(l Layout) ExtractorOption {
	return func(e *Extractor) {
		e.layout = l
	}
}

// WithOrigin sets the origin relative metadata links are resolved against.
func WithOrigin(origin string) ExtractorOption {
	return func(e *Extractor) {
		e.origin = origin
	}
}

// WithPageBreak appends a page-break marker after the body so the
// document compiler starts each song on a new page.
func WithPageBreak(enabled bool) ExtractorOption {
	return func(e *Extractor) {
		e.pageBreak = enabled
	}
}

// NewExtractor creates a new Extractor for the default layout.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		layout: DefaultLayout(),
		origin: DefaultOrigin,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract locates the title, metadata and body regions, prunes them, and
// serializes them into a fresh container.
func (e *Extractor) Extract(rawHTML string) (*lyricbook.Lyric, error) {
	origin, err := url.Parse(e.origin)
	if err != nil || !origin.IsAbs() {
		return nil, lyricbook.Errorf(lyricbook.EINVALID, "invalid origin %q", e.origin)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, lyricbook.Errorf(lyricbook.EINVALID, "failed to parse HTML: %v", err)
	}

	l := e.layout
	title, err := extractRegion(doc, RegionTitle, l.Title, l.TitleSuffix, l.Metadata, l.Body)
	if err != nil {
		return nil, err
	}

	metadata, err := extractRegion(doc, RegionMetadata, l.Metadata, l.MetadataFooter, l.Title, l.Body)
	if err != nil {
		return nil, err
	}
	rewriteLinks(metadata, origin)

	body, err := extractRegion(doc, RegionBody, l.Body, l.BodyReading, l.Title, l.Metadata)
	if err != nil {
		return nil, err
	}

	container := newContainer(doc.Find(e.layout.Container).First())
	container.AppendChild(title.Get(0))
	container.AppendChild(metadata.Get(0))
	container.AppendChild(body.Get(0))
	if e.pageBreak {
		container.AppendChild(pageBreak())
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, container); err != nil {
		return nil, lyricbook.Errorf(lyricbook.EINTERNAL, "failed to serialize document: %v", err)
	}

	return &lyricbook.Lyric{
		Title: strings.TrimSpace(title.Text()),
		HTML:  buf.Bytes(),
	}, nil
}

// extractRegion returns a detached copy of the first element matching
// selector with every descendant matching one of drop removed. Other
// regions nested inside are dropped too, so each region appears once in
// the pruned document. A missing drop sub-region is not an error.
func extractRegion(doc *goquery.Document, name, selector string, drop ...string) (*goquery.Selection, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, &lyricbook.MissingRegionError{Region: name}
	}

	region := sel.Clone()
	for _, d := range drop {
		if d != "" {
			region.Find(d).Remove()
		}
	}
	return region, nil
}

// rewriteLinks makes every relative href in the selection absolute.
func rewriteLinks(sel *goquery.Selection, origin *url.URL) {
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		a.SetAttr("href", absoluteURL(origin, href))
	})
}

// newContainer returns an empty element that takes its tag and attributes
// from src, or a bare <article> if src is empty. Children are never copied.
func newContainer(src *goquery.Selection) *html.Node {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "article",
		DataAtom: atom.Article,
	}
	if src.Length() > 0 {
		n := src.Get(0)
		container.Data = n.Data
		container.DataAtom = n.DataAtom
		container.Namespace = n.Namespace
		container.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	return container
}

// pageBreak returns the boundary marker appended after the body.
func pageBreak() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr: []html.Attribute{
			{Key: "class", Val: "page-break"},
			{Key: "style", Val: "page-break-after: always"},
		},
	}
}
