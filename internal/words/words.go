// internal/words/words.go
//
// Word list loading for the hangman engine.
//
// Responsibilities:
//   - Read newline-delimited words from a reader or a file (Load, LoadFile).
//   - Pick the configured source or fall back to the embedded default list (Source).
//   - Offer order-preserving deduplication for callers that want it (Dedupe).
//
// Format:
//   - Plain UTF-8 text, one word per line, "\n", "\r\n" or "\r" separators.
//   - A leading UTF-8 byte-order mark is dropped.
//   - Lines have no length limit.
//   - No header, comments or escaping. Blank lines become blank entries.
//   - Entries are returned exactly as read: no trimming, no case changes,
//     no filtering, no deduplication.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

//go:embed default_words.txt
var embeddedWords string

// ErrRead is wrapped around every failure to read a word list.
// The underlying cause (e.g. fs.ErrNotExist) is wrapped as well.
var ErrRead = errors.New("words: read failed")

// Load reads one entry per line from r, preserving order.
// A trailing line break does not produce an extra empty entry.
func Load(r io.Reader) ([]string, error) {
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	out := []string{}
	for {
		chunk, err := br.ReadString('\n')
		if chunk != "" {
			out = append(out, splitLine(chunk)...)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
}

// splitLine turns one chunk read up to '\n' into its entries.
// "\r\n" counts as a single break; any other '\r' separates entries.
func splitLine(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	return strings.Split(chunk, "\r")
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	list, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Source returns the list stored at path, or the embedded default list when
// path is empty.
func Source(path string) ([]string, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Load(strings.NewReader(embeddedWords))
}

// Dedupe returns list without repeated entries, keeping first occurrences
// in their original order.
func Dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
