package dictionary

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	cacheMagic   = "wordfind-index"
	cacheVersion = 2
)

// sourceInfo identifies the word list a cache was built from.
type sourceInfo struct {
	Path    string `msgpack:"p"`
	Size    int64  `msgpack:"s"`
	ModTime int64  `msgpack:"m"`
}

// statSource describes filename as it is on disk now.
func statSource(filename string) (sourceInfo, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return sourceInfo{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return sourceInfo{}, err
	}
	return sourceInfo{Path: abs, Size: info.Size(), ModTime: info.ModTime().UnixNano()}, nil
}

// sortedHeader precedes the word array in a cache file. Source is empty for
// an index written without a word list to check against.
type sortedHeader struct {
	Magic   string     `msgpack:"magic"`
	Version int        `msgpack:"v"`
	Count   int        `msgpack:"c"`
	Largest string     `msgpack:"l"`
	Source  sourceInfo `msgpack:"src"`
}

// SaveSorted writes the index as msgpack: a header followed by the sorted
// word array. Loading it skips normalization and sorting.
func (c *Corpus) SaveSorted(filename string) error {
	return c.saveSorted(filename, sourceInfo{})
}

func (c *Corpus) saveSorted(filename string, src sourceInfo) (err error) {
	file, err := utils.CreateFile(filename)
	if err != nil {
		return fmt.Errorf("failed to create index cache %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close index cache %s: %w", filename, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	enc := msgpack.NewEncoder(w)
	header := sortedHeader{
		Magic:   cacheMagic,
		Version: cacheVersion,
		Count:   len(c.words),
		Largest: c.largest,
		Source:  src,
	}
	if err := enc.Encode(&header); err != nil {
		return fmt.Errorf("failed to write index header: %w", err)
	}
	if err := enc.Encode(c.words); err != nil {
		return fmt.Errorf("failed to write index words: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush index cache %s: %w", filename, err)
	}
	log.Debugf("Wrote index cache %s with %d words", filename, len(c.words))
	return nil
}

// LoadSorted reads a cache written by SaveSorted.
func LoadSorted(filename string) (*Corpus, error) {
	corpus, _, err := loadSorted(filename)
	return corpus, err
}

func loadSorted(filename string) (*Corpus, sortedHeader, error) {
	start := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, sortedHeader{}, fmt.Errorf("%w: failed to open index cache %s: %w", ErrCorpusLoad, filename, err)
	}
	defer file.Close()

	dec := msgpack.NewDecoder(bufio.NewReader(file))
	header, err := decodeHeader(dec)
	if err != nil {
		return nil, header, fmt.Errorf("%w: %s: %w", ErrCorpusLoad, filename, err)
	}

	var words []string
	if err := dec.Decode(&words); err != nil {
		return nil, header, fmt.Errorf("%w: failed to read index words from %s: %w", ErrCorpusLoad, filename, err)
	}
	if err := checkSorted(header, words); err != nil {
		return nil, header, fmt.Errorf("%w: %s: %w", ErrCorpusLoad, filename, err)
	}

	log.Debugf("Loaded %d words from index cache %s in %v", len(words), filename, time.Since(start))
	return newCorpus(words, header.Largest), header, nil
}

// CacheName is a cache file name unique to the word list at filename, so
// lists with the same base name in different directories don't collide.
func CacheName(filename string) string {
	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}
	h := fnv.New64a()
	h.Write([]byte(abs))
	base := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	return fmt.Sprintf("%s-%016x.msgpack", base, h.Sum64())
}

func readSortedHeader(filename string) (sortedHeader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return sortedHeader{}, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()
	return decodeHeader(msgpack.NewDecoder(bufio.NewReader(file)))
}

func decodeHeader(dec *msgpack.Decoder) (sortedHeader, error) {
	var header sortedHeader
	if err := dec.Decode(&header); err != nil {
		return header, fmt.Errorf("failed to read index header: %w", err)
	}
	if header.Magic != cacheMagic {
		return header, fmt.Errorf("not an index cache (magic %q)", header.Magic)
	}
	if header.Version != cacheVersion {
		return header, fmt.Errorf("unsupported index cache version %d", header.Version)
	}
	return header, nil
}

// checkSorted guards the invariants newCorpus relies on.
func checkSorted(header sortedHeader, words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("index cache contains no words")
	}
	if len(words) != header.Count {
		return fmt.Errorf("index cache is truncated: header says %d words, found %d", header.Count, len(words))
	}
	for i := 1; i < len(words); i++ {
		if compareWords(words[i-1], words[i]) >= 0 {
			return fmt.Errorf("index cache is not sorted at %q", words[i])
		}
	}
	if !slices.Contains(words, header.Largest) || utils.RuneLen(header.Largest) != utils.RuneLen(words[len(words)-1]) {
		return fmt.Errorf("index cache has an invalid longest word %q", header.Largest)
	}
	return nil
}
