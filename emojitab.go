/*
Package emojitab generates the emoji bitmap table compiled into the
device firmware.

Each emoji in the curated set is downloaded from the Twemoji assets,
rasterized to a fixed-size RGB565 bitmap and written out as a C header
containing one bitmap constant per emoji plus a combined lookup table.
Emoji that cannot be fetched or decoded are substituted with a fixed
placeholder glyph so the table always contains every configured entry.
*/
package emojitab

import (
	"io/ioutil"
	"log"
)

// Size is the edge length in pixels of every generated bitmap.
const Size = 12

type Generator struct {
	set     *Set
	fetcher *Fetcher
	size    int
	logger  *log.Logger
}

func New(set *Set, fetcher *Fetcher, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Generator{
		set:     set,
		fetcher: fetcher,
		size:    Size,
		logger:  logger,
	}
}
