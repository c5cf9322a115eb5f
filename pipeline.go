package emojitab

import (
	"errors"
	"fmt"
	"io"

	"github.com/nodakmesh/emojitab/bitmap"
)

// RasterError indicates a fetched payload could not be decoded into a
// bitmap; like *FetchError it degrades to the placeholder.
type RasterError struct {
	Code uint32
	Err  error
}

func (e *RasterError) Error() string {
	return fmt.Sprintf("rasterize U+%X: %v", e.Code, e.Err)
}

func (e *RasterError) Unwrap() error {
	return e.Err
}

// Stats counts how each glyph in a run was resolved.
type Stats struct {
	Success     int
	Placeholder int
}

type entry struct {
	Glyph
	category string
	bitmap   bitmap.Bitmap
}

func (g *Generator) resolve(glyph Glyph) (bitmap.Bitmap, error) {
	b, err := g.fetcher.Fetch(glyph.Code)
	if err != nil {
		return nil, err
	}

	m, err := bitmap.Render(b, g.size)
	if err != nil {
		return nil, &RasterError{Code: glyph.Code, Err: err}
	}

	return m, nil
}

// substitutable reports whether an error degrades to the placeholder
// rather than aborting the run.
func substitutable(err error) bool {
	var fe *FetchError
	var re *RasterError
	return errors.As(err, &fe) || errors.As(err, &re)
}

// Generate resolves every glyph in declaration order, one at a time,
// and writes the serialized table to w. Glyphs that fail to fetch or
// decode are emitted with the placeholder bitmap so the table always
// has one entry per configured glyph.
func (g *Generator) Generate(w io.Writer) (Stats, error) {
	var stats Stats

	entries := make([]entry, 0, g.set.Len())
	for _, category := range g.set.Categories {
		for _, glyph := range category.Glyphs {
			g.logger.Printf("Processing %s (U+%X)", glyph.Name, glyph.Code)

			m, err := g.resolve(glyph)
			switch {
			case err == nil:
				stats.Success++
			case substitutable(err):
				g.logger.Printf("Substituting placeholder: %v", err)
				m = bitmap.Placeholder(g.size)
				stats.Placeholder++
			default:
				return stats, err
			}

			entries = append(entries, entry{
				Glyph:    glyph,
				category: category.Name,
				bitmap:   m,
			})
		}
	}

	e := emitter{w: w}
	if err := e.emit(entries); err != nil {
		return stats, err
	}

	return stats, nil
}
