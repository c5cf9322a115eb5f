package emojitab

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nodakmesh/emojitab/bitmap"
	"github.com/nodakmesh/emojitab/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redPNG(t *testing.T) []byte {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, 72, 72))
	for y := 0; y < 72; y++ {
		for x := 0; x < 72; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, m))
	return b.Bytes()
}

func testSet() *Set {
	return &Set{
		Categories: []Category{
			{
				Name: "FACES",
				Glyphs: []Glyph{
					{Code: 0x1F600, Name: "grin"},
					{Code: 0x1F601, Name: "grin_sweat"},
				},
			},
			{
				Name:   "HEARTS",
				Glyphs: []Glyph{{Code: 0x2764, Name: "heart"}},
			},
		},
	}
}

// Serves a valid image for grin, a 404 for grin_sweat and an
// undecodable payload for heart.
func testServer(t *testing.T) *httptest.Server {
	data := redPNG(t)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/1f600.png":
			w.Write(data)
		case "/2764.png":
			w.Write([]byte("garbage"))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestGenerate(t *testing.T) {
	srv := testServer(t)
	defer srv.Close()

	f := NewFetcher(newCache(t), FetcherConfig{BaseURL: srv.URL})
	g := New(testSet(), f, nil)

	var buf bytes.Buffer
	stats, err := g.Generate(&buf)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Success)
	assert.Equal(t, 2, stats.Placeholder)

	out := buf.String()

	// One bitmap constant and one table row per configured glyph
	for _, name := range []string{"EMOJI_BMP_GRIN", "EMOJI_BMP_GRIN_SWEAT", "EMOJI_BMP_HEART"} {
		assert.Contains(t, out, fmt.Sprintf("static const uint16_t %s[144] PROGMEM = {", name))
	}
	assert.Contains(t, out, "const int EMOJI_COUNT = 3;")
	assert.Contains(t, out, `{ 0x1F600, "grin", EMOJI_BMP_GRIN, EmojiCategory::FACES },`)
	assert.Contains(t, out, `{ 0x1F601, "grin_sweat", EMOJI_BMP_GRIN_SWEAT, EmojiCategory::FACES },`)
	assert.Contains(t, out, `{ 0x02764, "heart", EMOJI_BMP_HEART, EmojiCategory::HEARTS },`)

	// Category sections in declaration order
	assert.Contains(t, out, "// ============ FACES (2 emoji) ============")
	assert.Contains(t, out, "// ============ HEARTS (1 emoji) ============")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("FACES (2")), bytes.Index(buf.Bytes(), []byte("HEARTS (1")))

	// The converted glyph is solid red, the failed ones carry the
	// placeholder's gold foreground
	assert.Contains(t, out, "0xF800")
	assert.Contains(t, out, fmt.Sprintf("0x%04X", bitmap.RGB565(255, 215, 0)))
}

func TestGenerateReproducible(t *testing.T) {
	srv := testServer(t)
	defer srv.Close()

	f := NewFetcher(newCache(t), FetcherConfig{BaseURL: srv.URL})
	g := New(testSet(), f, nil)

	var first, second bytes.Buffer

	_, err := g.Generate(&first)
	require.NoError(t, err)

	// Second run resolves from the warmed cache
	stats, err := g.Generate(&second)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Equal(t, 1, stats.Success)
	assert.Equal(t, 2, stats.Placeholder)
}

func TestGenerateAllFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	set := testSet()
	f := NewFetcher(newCache(t), FetcherConfig{BaseURL: srv.URL})
	g := New(set, f, nil)

	var buf bytes.Buffer
	stats, err := g.Generate(&buf)
	require.NoError(t, err)

	// No glyph is ever dropped
	assert.Equal(t, 0, stats.Success)
	assert.Equal(t, set.Len(), stats.Placeholder)
	assert.Contains(t, buf.String(), fmt.Sprintf("const int EMOJI_COUNT = %d;", set.Len()))
}

func TestGenerateCacheFailureFatal(t *testing.T) {
	srv := testServer(t)
	defer srv.Close()

	// A cache whose directory has gone away fails every write-through;
	// unlike fetch or decode failures this aborts the run instead of
	// degrading to the placeholder
	path := filepath.Join(t.TempDir(), "cache")
	d, err := cache.New(path)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(path))

	f := NewFetcher(d, FetcherConfig{BaseURL: srv.URL})
	g := New(testSet(), f, nil)

	var buf bytes.Buffer
	stats, err := g.Generate(&buf)
	require.Error(t, err)
	assert.False(t, substitutable(err))

	// Nothing was resolved or emitted
	assert.Equal(t, 0, stats.Success)
	assert.Equal(t, 0, stats.Placeholder)
	assert.Zero(t, buf.Len())
}

func TestGenerateBitmapShape(t *testing.T) {
	srv := testServer(t)
	defer srv.Close()

	f := NewFetcher(newCache(t), FetcherConfig{BaseURL: srv.URL})
	g := New(testSet(), f, nil)

	var buf bytes.Buffer
	_, err := g.Generate(&buf)
	require.NoError(t, err)

	// Every bitmap constant holds exactly Size rows of Size values
	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	rows := 0
	for _, line := range lines {
		if bytes.HasPrefix(line, []byte("    0x")) {
			assert.Equal(t, Size, bytes.Count(line, []byte("0x")))
			rows++
		}
	}
	assert.Equal(t, 3*Size, rows)
}
