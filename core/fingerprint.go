package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/oreops/haulstat/schema"
)

// Fingerprint produces a single comparable value from the identity of a set
// of source files. Entries are sorted before hashing, so the value is
// independent of enumeration order. Two fingerprints are equal iff the same
// paths with the same sizes and modification times were observed; a file
// rewritten in place with identical size and mtime within the filesystem's
// timestamp resolution is not detected, which is an accepted limitation of
// the size+mtime scheme rather than a bug.
func Fingerprint(files []schema.SourceFile) string {
	entries := make([]string, 0, len(files))
	for _, f := range files {
		entries = append(entries, fmt.Sprintf("%s:%d:%d", f.Path, f.Size, f.ModTime.UnixNano()))
	}
	sort.Strings(entries)

	sum := sha256.Sum256([]byte(strings.Join(entries, "\n")))
	return hex.EncodeToString(sum[:])
}
