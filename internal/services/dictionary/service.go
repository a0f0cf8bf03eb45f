package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mcoot/upwords-go/internal/model"
	"github.com/mcoot/upwords-go/internal/storage"
)

// MinWordLength is the shortest word the dictionary will hold
const MinWordLength = 2

// Service provides dictionary/word validation functionality
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  *Trie
	loaded bool
}

// New creates a new DictionaryService. storage may be nil, in which case
// words loaded from files are not persisted.
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   NewTrie(),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	if s.storage == nil {
		return model.ErrDictionaryNotLoaded
	}
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer file.Close()

	words, err := ReadWords(file)
	if err != nil {
		return fmt.Errorf("read dictionary %s: %w", path, err)
	}

	// Save to storage for future use
	if s.storage != nil {
		if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
			return err
		}
	}

	s.logger.Info("dictionary file read",
		slog.String("path", path),
		slog.Int("lines", len(words)),
	)
	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	trie := NewTrie()
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		w := strings.ToLower(strings.TrimSpace(word))
		if utf8.RuneCountInString(w) < MinWordLength {
			continue
		}
		trie.Insert(w)
	}

	s.mu.Lock()
	s.words = trie
	s.loaded = true
	s.mu.Unlock()

	s.logger.Debug("dictionary loaded", slog.Int("word_count", trie.Len()))
	return nil
}

// IsValidWord checks if a word exists in the dictionary
// Words must be at least 2 characters
func (s *Service) IsValidWord(word string) bool {
	if utf8.RuneCountInString(word) < MinWordLength {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}
	return s.words.Contains(strings.ToLower(word))
}

// HasPrefix returns true if some dictionary word starts with prefix
func (s *Service) HasPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded && s.words.HasPrefix(strings.ToLower(prefix))
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.Len()
}

// ReadWords reads one word per line, skipping blank lines
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	HasPrefix(prefix string) bool
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
