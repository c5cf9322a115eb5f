package emojitab

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
)

//go:embed emoji.xml
var defaultXML []byte

// Glyph is one emoji in the curated set; Code is the Unicode codepoint
// and Name the unique shortcode used to derive the bitmap constant name.
type Glyph struct {
	Code uint32
	Name string
}

type Category struct {
	Name   string
	Glyphs []Glyph
}

// Set is the full configuration, in declaration order. The order is
// preserved all the way into the emitted table.
type Set struct {
	Categories []Category
}

// Len returns the total number of glyphs across all categories.
func (s *Set) Len() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Glyphs)
	}
	return n
}

type xmlEmojiSet struct {
	XMLName    xml.Name      `xml:"EmojiSet"`
	Categories []xmlCategory `xml:"Category"`
}

type xmlCategory struct {
	XMLName xml.Name   `xml:"Category"`
	Name    string     `xml:"Name,attr"`
	Emoji   []xmlEmoji `xml:"Emoji"`
}

type xmlEmoji struct {
	XMLName xml.Name `xml:"Emoji"`
	Code    string   `xml:"Code,attr"`
	Name    string   `xml:"Name,attr"`
}

// LoadSet parses an XML emoji set and validates the configuration
// invariants: codepoints and names are unique across the whole set and
// every category name belongs to the firmware enumeration.
func LoadSet(r io.Reader) (*Set, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var xmlSet xmlEmojiSet
	if err := xml.Unmarshal(b, &xmlSet); err != nil {
		return nil, err
	}

	codes := make(map[uint32]struct{})
	names := make(map[string]struct{})

	set := &Set{}
	for _, c := range xmlSet.Categories {
		if !validCategory(c.Name) {
			return nil, fmt.Errorf("unknown category %q", c.Name)
		}

		category := Category{Name: c.Name}
		for _, e := range c.Emoji {
			code, err := strconv.ParseUint(e.Code, 16, 32)
			if err != nil {
				return nil, fmt.Errorf("bad codepoint %q: %v", e.Code, err)
			}
			if e.Name == "" {
				return nil, fmt.Errorf("missing name for codepoint %s", e.Code)
			}
			if _, ok := codes[uint32(code)]; ok {
				return nil, fmt.Errorf("duplicate codepoint U+%X", code)
			}
			if _, ok := names[e.Name]; ok {
				return nil, fmt.Errorf("duplicate name %q", e.Name)
			}
			codes[uint32(code)] = struct{}{}
			names[e.Name] = struct{}{}

			category.Glyphs = append(category.Glyphs, Glyph{
				Code: uint32(code),
				Name: e.Name,
			})
		}
		set.Categories = append(set.Categories, category)
	}

	return set, nil
}

// DefaultSet returns the curated set embedded in the binary.
func DefaultSet() (*Set, error) {
	return LoadSet(bytes.NewReader(defaultXML))
}
