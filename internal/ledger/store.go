package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store is the append-only in-memory ledger. It carries no lock of its
// own: the owning workspace serializes every mutation.
type Store struct {
	entries []JournalEntry
	docs    []Document
	byID    map[uuid.UUID]int
}

// NewStore returns an empty ledger store.
func NewStore() *Store {
	return &Store{byID: make(map[uuid.UUID]int)}
}

// Append commits an entry and its document. Entries are immutable once
// appended.
func (s *Store) Append(entry JournalEntry, doc Document) {
	s.byID[entry.ID] = len(s.entries)
	s.entries = append(s.entries, entry)
	s.docs = append(s.docs, doc)
}

// Len reports the number of committed entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of all committed entries in posting order.
func (s *Store) Entries() []JournalEntry {
	out := make([]JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Documents returns a copy of all documents in posting order.
func (s *Store) Documents() []Document {
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Entry looks up a committed entry by id.
func (s *Store) Entry(id uuid.UUID) (JournalEntry, error) {
	idx, ok := s.byID[id]
	if !ok {
		return JournalEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return s.entries[idx], nil
}

// Restore replaces store contents from a snapshot.
func (s *Store) Restore(entries []JournalEntry, docs []Document) {
	s.entries = append([]JournalEntry(nil), entries...)
	s.docs = append([]Document(nil), docs...)
	s.byID = make(map[uuid.UUID]int, len(entries))
	for idx, e := range s.entries {
		s.byID[e.ID] = idx
	}
}

// Activity holds the debit and credit totals of one account over some
// range of entries. Always recomputed, never cached across posts.
type Activity struct {
	Debit  float64
	Credit float64
}

// AccountTotals sums all activity for an account dated at or before the
// given cutoff. A zero cutoff means the whole ledger.
func (s *Store) AccountTotals(code string, until time.Time) Activity {
	var act Activity
	for _, e := range s.entries {
		if !until.IsZero() && e.Date.After(until) {
			continue
		}
		for _, l := range e.Lines {
			if l.Account != code {
				continue
			}
			act.Debit += l.Debit
			act.Credit += l.Credit
		}
	}
	return act
}

// ActivityByAccount aggregates debit/credit movement per account over a
// date window. Zero bounds are open-ended.
func (s *Store) ActivityByAccount(from, to time.Time) map[string]Activity {
	out := make(map[string]Activity)
	for _, e := range s.entries {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		for _, l := range e.Lines {
			act := out[l.Account]
			act.Debit += l.Debit
			act.Credit += l.Credit
			out[l.Account] = act
		}
	}
	return out
}
