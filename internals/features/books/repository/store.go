package repository

import (
	"strconv"
	"sync"

	model "bookstore_backend/internals/features/books/model"
)

// Store owns the book collection for the lifetime of the process. It keeps
// insertion order and every lookup is a linear scan; a single mutex
// serialises the five operations because fiber serves requests concurrently.
type Store struct {
	mu    sync.Mutex
	books []model.Book
}

func NewStore(seed []model.Book) *Store {
	s := &Store{books: make([]model.Book, 0, len(seed))}
	for _, b := range seed {
		s.books = append(s.books, b.Clone())
	}
	return s
}

// List returns the full collection in insertion order.
func (s *Store) List() []model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b.Clone())
	}
	return out
}

// Get looks up a book by exact id match.
func (s *Store) Get(id string) (model.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ID() == id {
			return b.Clone(), true
		}
	}
	return nil, false
}

// Create assigns the next id (any client-supplied id was discarded by the
// controller) and appends the record.
func (s *Store) Create(fields model.Book) model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := fields.Clone()
	b.SetID(s.nextIDLocked())
	s.books = append(s.books, b)
	return b.Clone()
}

// Update shallow-merges the supplied fields over the stored record and
// forces the id back to the given one, whatever the body contained.
func (s *Store) Update(id string, fields model.Book) (model.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID() == id {
			merged := b.Merge(fields)
			merged.SetID(id)
			s.books[i] = merged
			return merged.Clone(), true
		}
	}
	return nil, false
}

// Delete removes the single record with the given id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID() == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the current collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books)
}

// nextIDLocked computes max(integer-parseable ids) + 1. Ids that do not
// parse are skipped; an empty collection yields "1".
func (s *Store) nextIDLocked() string {
	max := 0
	for _, b := range s.books {
		if n, err := strconv.Atoi(b.ID()); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
