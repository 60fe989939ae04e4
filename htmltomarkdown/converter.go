// Package htmltomarkdown renders extracted lyric fragments as Markdown for
// terminal previews.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lyricbook"
)

// Ensure Converter implements lyricbook.Converter at compile time.
var _ lyricbook.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert lyric HTML to Markdown.
type Converter struct {
	conv        *converter.Converter
	keepReading bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithoutReadings drops furigana readings instead of rendering them in
// parentheses after the annotated text.
func WithoutReadings() Option {
	return func(c *Converter) {
		c.keepReading = false
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	c := &Converter{conv: conv, keepReading: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms lyric HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", lyricbook.Errorf(lyricbook.EINVALID, "empty HTML input")
	}

	prepared, err := c.prepare(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(prepared)
	if err != nil {
		return "", err
	}

	return result, nil
}

// prepare flattens ruby annotations and drops page breaks, neither of
// which has a Markdown form.
func (c *Converter) prepare(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find(".page-break").Remove()
	doc.Find("rp").Remove()
	doc.Find("rt").Each(func(_ int, rt *goquery.Selection) {
		reading := strings.TrimSpace(rt.Text())
		if !c.keepReading || reading == "" {
			rt.Remove()
			return
		}
		rt.ReplaceWithHtml("(" + escapeText(reading) + ")")
	})
	doc.Find("ruby").Contents().Unwrap()

	return doc.Find("body").Html()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
