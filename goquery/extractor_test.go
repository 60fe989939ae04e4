package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lyricbook"
	"github.com/fwojciec/lyricbook/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lyricPage = `<!DOCTYPE html>
<html>
<head><title>夜に駆ける 歌詞</title></head>
<body>
<header><a href="/">utaten</a></header>
<article class="lyricPage" id="lyric">
	<div class="contentBox__title">
		<h2 class="newLyricTitle">夜に駆ける<span class="newLyricTitle_afterTxt">の歌詞</span></h2>
	</div>
	<div class="lyricData">
		<dl class="newLyricWork">
			<dt>歌手</dt><dd><a href="/artist/12345/">YOASOBI</a></dd>
			<dt>作詞</dt><dd><a href="/lyricist/678/">Ayase</a></dd>
			<dt>公式</dt><dd><a href="https://www.yoasobi-music.jp/">official</a></dd>
		</dl>
		<div class="newLyricWorkFooter">
			<ul class="tagList"><li><a href="/tag/1">タグ追加</a></li></ul>
			<button class="shareButton">シェアする</button>
		</div>
	</div>
	<div class="lyricBody">
		<div class="hiragana">沈むように溶けてゆくように</div>
		<div class="romaji">shizumu you ni tokete yuku you ni</div>
	</div>
	<aside class="related">関連する歌詞</aside>
</article>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("removes title suffix", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor().Extract(lyricPage)

		require.NoError(t, err)
		assert.Equal(t, "夜に駆ける", lyric.Title)
		assert.NotContains(t, string(lyric.HTML), "の歌詞")
		assert.NotContains(t, string(lyric.HTML), "newLyricTitle_afterTxt")
	})

	t.Run("removes metadata footer", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor().Extract(lyricPage)

		require.NoError(t, err)
		out := string(lyric.HTML)
		assert.Contains(t, out, "YOASOBI")
		assert.NotContains(t, out, "タグ追加")
		assert.NotContains(t, out, "シェアする")
		assert.NotContains(t, out, "newLyricWorkFooter")
	})

	t.Run("rewrites relative metadata links to absolute", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor().Extract(lyricPage)

		require.NoError(t, err)
		out := string(lyric.HTML)
		assert.Contains(t, out, `href="https://utaten.com/artist/12345/"`)
		assert.Contains(t, out, `href="https://utaten.com/lyricist/678/"`)
		assert.Contains(t, out, `href="https://www.yoasobi-music.jp/"`)
		assert.NotContains(t, out, `href="/`)
	})

	t.Run("removes romanized reading from body", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor().Extract(lyricPage)

		require.NoError(t, err)
		out := string(lyric.HTML)
		assert.Contains(t, out, "沈むように溶けてゆくように")
		assert.NotContains(t, out, "shizumu")
		assert.NotContains(t, out, "romaji")
	})

	t.Run("assembles regions in order inside container", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor().Extract(lyricPage)

		require.NoError(t, err)
		out := string(lyric.HTML)
		assert.True(t, strings.HasPrefix(out, `<article class="lyricPage" id="lyric">`), out)
		assert.True(t, strings.HasSuffix(out, "</article>"), out)

		titleIdx := strings.Index(out, "newLyricTitle")
		dataIdx := strings.Index(out, "lyricData")
		bodyIdx := strings.Index(out, "lyricBody")
		assert.Less(t, titleIdx, dataIdx)
		assert.Less(t, dataIdx, bodyIdx)

		// Siblings of the regions in the original container are dropped.
		assert.NotContains(t, out, "contentBox__title")
		assert.NotContains(t, out, "関連する歌詞")
		assert.NotContains(t, out, "<header>")
	})

	t.Run("omits page break by default", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor().Extract(lyricPage)

		require.NoError(t, err)
		assert.NotContains(t, string(lyric.HTML), "page-break")
	})

	t.Run("appends page break after body when enabled", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor(goquery.WithPageBreak(true)).Extract(lyricPage)

		require.NoError(t, err)
		out := string(lyric.HTML)
		assert.True(t, strings.HasSuffix(out,
			`<div class="page-break" style="page-break-after: always"></div></article>`), out)
		assert.Less(t, strings.Index(out, "lyricBody"), strings.Index(out, "page-break"))
	})

	t.Run("uses bare article when container is absent", func(t *testing.T) {
		t.Parallel()

		page := `<div class="newLyricTitle">Title</div>
<div class="lyricData">data</div>
<div class="lyricBody">body</div>`

		lyric, err := goquery.NewExtractor().Extract(page)

		require.NoError(t, err)
		assert.Equal(t,
			`<article><div class="newLyricTitle">Title</div><div class="lyricData">data</div><div class="lyricBody">body</div></article>`,
			string(lyric.HTML))
	})

	t.Run("tolerates missing unwanted sub-regions", func(t *testing.T) {
		t.Parallel()

		page := `<article>
<h2 class="newLyricTitle">Title</h2>
<div class="lyricData"><a href="/artist/1/">Artist</a></div>
<div class="lyricBody">body</div>
</article>`

		lyric, err := goquery.NewExtractor().Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Title", lyric.Title)
		assert.Contains(t, string(lyric.HTML), `href="https://utaten.com/artist/1/"`)
	})

	t.Run("does not mutate links twice when re-extracted", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewExtractor()
		first, err := extractor.Extract(lyricPage)
		require.NoError(t, err)

		second, err := extractor.Extract(string(first.HTML))
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(string(second.HTML), `href="https://utaten.com/artist/12345/"`))
		assert.NotContains(t, string(second.HTML), "https://utaten.comhttps://")
		assert.Equal(t, string(first.HTML), string(second.HTML))
	})

	t.Run("keeps the title once when nested in metadata", func(t *testing.T) {
		t.Parallel()

		page := `<article>
<div class="lyricData">
	<h2 class="newLyricTitle">T<span class="newLyricTitle_afterTxt">の歌詞</span></h2>
	<dl><dd><a href="/artist/1/">A</a></dd></dl>
</div>
<div class="lyricBody">body</div>
</article>`

		lyric, err := goquery.NewExtractor().Extract(page)

		require.NoError(t, err)
		out := string(lyric.HTML)
		assert.Equal(t, "T", lyric.Title)
		assert.Equal(t, 1, strings.Count(out, `class="newLyricTitle"`), out)
		assert.NotContains(t, out, "の歌詞")
		assert.True(t, strings.HasPrefix(out, `<article><h2 class="newLyricTitle">T</h2><div class="lyricData">`), out)
	})

	t.Run("keeps the metadata once when nested in body", func(t *testing.T) {
		t.Parallel()

		page := `<article>
<h2 class="newLyricTitle">T</h2>
<div class="lyricBody"><div class="lyricData">data</div>words</div>
</article>`

		lyric, err := goquery.NewExtractor().Extract(page)

		require.NoError(t, err)
		assert.Equal(t,
			`<article><h2 class="newLyricTitle">T</h2><div class="lyricData">data</div><div class="lyricBody">words</div></article>`,
			string(lyric.HTML))
	})

	t.Run("copies container attributes onto the pruned document", func(t *testing.T) {
		t.Parallel()

		page := `<section class="song" data-id="42" lang="ja">
<h2 class="newLyricTitle">T</h2>
<div class="lyricData">data</div>
<div class="lyricBody">body</div>
</section>`
		layout := goquery.DefaultLayout()
		layout.Container = "section"

		lyric, err := goquery.NewExtractor(goquery.WithLayout(layout)).Extract(page)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(lyric.HTML), `<section class="song" data-id="42" lang="ja"><h2`), string(lyric.HTML))
	})

	t.Run("resolves links against custom origin", func(t *testing.T) {
		t.Parallel()

		lyric, err := goquery.NewExtractor(goquery.WithOrigin("http://localhost:8080")).Extract(lyricPage)

		require.NoError(t, err)
		assert.Contains(t, string(lyric.HTML), `href="http://localhost:8080/artist/12345/"`)
	})

	t.Run("returns error for invalid origin", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor(goquery.WithOrigin("not a url")).Extract(lyricPage)

		require.Error(t, err)
		assert.Equal(t, lyricbook.EINVALID, lyricbook.ErrorCode(err))
	})

	t.Run("supports custom layout", func(t *testing.T) {
		t.Parallel()

		page := `<main>
<h1>Song<small>lyrics</small></h1>
<section class="meta"><a href="a/b">x</a><footer>share</footer></section>
<pre class="text">words<span class="ruby">reading</span></pre>
</main>`

		layout := goquery.Layout{
			Container:      "main",
			Title:          "h1",
			TitleSuffix:    "small",
			Metadata:       ".meta",
			MetadataFooter: "footer",
			Body:           ".text",
			BodyReading:    ".ruby",
		}

		lyric, err := goquery.NewExtractor(
			goquery.WithLayout(layout),
			goquery.WithOrigin("https://example.com/songs/"),
		).Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Song", lyric.Title)
		assert.Equal(t,
			`<main><h1>Song</h1><section class="meta"><a href="https://example.com/songs/a/b">x</a></section><pre class="text">words</pre></main>`,
			string(lyric.HTML))
	})
}

func TestExtractor_Extract_MissingRegion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remove string
		region string
	}{
		{"title", `<h2 class="newLyricTitle">夜に駆ける<span class="newLyricTitle_afterTxt">の歌詞</span></h2>`, goquery.RegionTitle},
		{"metadata", `<div class="lyricData">`, goquery.RegionMetadata},
		{"body", `<div class="lyricBody">`, goquery.RegionBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := strings.Replace(lyricPage, tt.remove, "<div>", 1)
			require.NotEqual(t, lyricPage, page)

			lyric, err := goquery.NewExtractor().Extract(page)

			require.Error(t, err)
			assert.Nil(t, lyric)
			var missing *lyricbook.MissingRegionError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.region, missing.Region)
		})
	}
}
