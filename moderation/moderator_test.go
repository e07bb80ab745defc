package moderation

import (
	"log/slog"
	"testing"
	"testing/fstest"

	"sharemyshows-live/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"badger", "snake", "mushroom"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "S-N-A-K-E is a B.A.D.G.E.R",
			expected: "********* is a ***********",
			words:    []string{"snake", "badger"},
		},
		{
			name:     "Accents and special characters (UTF-8)",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "I love badger!",
			expected: "I love ******!",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to censor",
			input:    "Phish at MSG was amazing",
			expected: "Phish at MSG was amazing",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			content, words := mod.CensorWords(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
			req.Equal(tt.expected, mod.Censor(tt.input))
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "badger"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then the sentence is censored
	content, words := mod.CensorWords("The badger is safe")
	req.Equal("The ****** is safe", content)
	req.Equal([]string{"badger"}, words)

	// Then real noise is uncensored
	content, words = mod.CensorWords("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestCensoredLoader_LoadAll(t *testing.T) {
	req := require.New(t)

	// Given two dictionaries sharing a word and using both line endings
	fsys := fstest.MapFS{
		"censored/en.txt":    {Data: []byte("badger\r\nsnake\n\n")},
		"censored/fr.txt":    {Data: []byte("blaireau\nbadger\n")},
		"censored/README.md": {Data: []byte("not a dictionary")},
	}

	// When loading the folder
	data, err := NewCensoredLoader(fsys).LoadAll("censored")

	// Then words are unique and sorted, languages come from file names
	req.NoError(err)
	req.Equal([]string{"badger", "blaireau", "snake"}, data.Words)
	req.Equal([]string{"en", "fr"}, data.Languages)
}

func TestCensoredLoader_EmptyDictionaries(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"censored/en.txt": {Data: []byte("\n  \n")}}

	_, err := NewCensoredLoader(fsys).LoadAll("censored")

	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestNewDefaultModerator(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given the dictionaries embedded in the binary
	mod, err := NewDefaultModerator(log, replacementChar)
	req.NoError(err)

	// Then an English and a French word are both caught
	req.Equal("what a **** show", mod.Censor("what a shit show"))
	req.Equal("****** de pluie", mod.Censor("putain de pluie"))
}

func TestLanguageDetector_Detect(t *testing.T) {
	req := require.New(t)
	detector := LanguageDetector{}

	req.Equal("en", detector.Detect("The band played every song from the new album and the crowd kept singing along all night long"))
	req.Empty(detector.Detect("   "))
}
