package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1 << 20

// LoadReader builds a Corpus from newline-delimited words.
func LoadReader(r io.Reader) (*Corpus, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	corpus, err := Load(scanLines(scanner))
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("%w: failed to read word list: %w", ErrCorpusLoad, scanErr)
	}
	return corpus, err
}

func scanLines(scanner *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}

// LoadFile reads a plain text word list, one word per line.
func LoadFile(filename string) (*Corpus, error) {
	start := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open word list %s: %w", ErrCorpusLoad, filename, err)
	}
	defer file.Close()

	corpus, err := LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("Loaded %d words from %s in %v", corpus.WordCount(), filename, time.Since(start))
	return corpus, nil
}

// Open loads a dictionary in whichever format the file is in.
func Open(filename string) (*Corpus, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
	}
	switch format {
	case FormatSorted:
		return LoadSorted(filename)
	default:
		return LoadFile(filename)
	}
}

// OpenCached loads the word list at filename, preferring the sorted cache at
// cachePath when it was built from this exact file: same absolute path, size
// and modification time. Otherwise the list is loaded and the cache
// rewritten; failing to write it is logged, not returned.
func OpenCached(filename, cachePath string) (*Corpus, error) {
	if cachePath == "" {
		return Open(filename)
	}
	src, err := statSource(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat word list %s: %w", ErrCorpusLoad, filename, err)
	}

	if utils.FileExists(cachePath) {
		corpus, header, err := loadSorted(cachePath)
		switch {
		case err != nil:
			log.Warnf("Ignoring unreadable index cache %s: %v", cachePath, err)
		case header.Source != src:
			log.Debugf("Index cache %s was built from %s, rebuilding for %s", cachePath, header.Source.Path, src.Path)
		default:
			return corpus, nil
		}
	}

	corpus, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if err := corpus.saveSorted(cachePath, src); err != nil {
		log.Warnf("Failed to write index cache %s: %v", cachePath, err)
	}
	return corpus, nil
}
