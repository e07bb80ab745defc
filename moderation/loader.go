package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"sharemyshows-live/errors"
)

//go:embed censored/*.txt
var censoredFolder embed.FS

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// CensoredLoader reads blacklisted words, one dictionary file per language.
type CensoredLoader struct {
	fs fs.FS
}

func NewCensoredLoader(f fs.FS) *CensoredLoader {
	return &CensoredLoader{fs: f}
}

// LoadAll parses every .txt file of dir into a sorted list of unique words.
func (l *CensoredLoader) LoadAll(dir string) (*CensoredData, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		// "fr.txt" -> "fr"
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// ⚠️ A scanner copes with \r\n, strings.Split does not
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				uniqueWords[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	slices.Sort(words)

	return &CensoredData{Words: words, Languages: languages}, nil
}

// NewDefaultModerator builds a moderator from the dictionaries shipped with the binary.
func NewDefaultModerator(log *slog.Logger, censoredChar rune) (*Moderator, error) {
	data, err := NewCensoredLoader(censoredFolder).LoadAll("censored")
	if err != nil {
		return nil, err
	}
	log.Info("Censored dictionaries loaded", "languages", strings.Join(data.Languages, ","), "words", len(data.Words))
	return NewModerator(data.Words, censoredChar, log)
}
