/*
Package cache implements the durable store for fetched glyph images.

Each image is one file in a local directory, named by the lowercase
hexadecimal form of its codepoint. The glyph set is small and finite so
the directory only ever grows; nothing is evicted. A single pipeline
instance is assumed to own the directory, no locking is performed.
*/
package cache

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

type Dir struct {
	path string
}

// New creates the cache directory if necessary. This is the only fatal
// failure point in the pipeline; without a cache every run would re-fetch
// the whole set.
func New(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	return &Dir{path: path}, nil
}

func (d *Dir) file(code uint32) string {
	return filepath.Join(d.path, fmt.Sprintf("%x.png", code))
}

// Get returns the stored bytes for a codepoint, or nil without an error
// if the codepoint has never been stored.
func (d *Dir) Get(code uint32) ([]byte, error) {
	b, err := ioutil.ReadFile(d.file(code))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Put stores the bytes for a codepoint, replacing any previous content.
func (d *Dir) Put(code uint32, b []byte) error {
	return ioutil.WriteFile(d.file(code), b, 0644)
}
