// Package journal persists one entry per calendar day: a short note and a
// serialized drawing blob.
//
// Storage is a single bbolt file with one bucket per field, keyed by the
// day in "2006-01-02" form. Key order is therefore chronological, which
// makes the year-at-a-glance query a simple prefix scan.
package journal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/text/unicode/norm"

	"github.com/joodle/doodle"
)

// DayLayout is the key format for entry days.
const DayLayout = "2006-01-02"

// Bucket names.
var (
	bucketNotes    = []byte("notes")
	bucketDrawings = []byte("drawings")
)

// ErrNoEntry is returned by Get when no entry exists for the day.
var ErrNoEntry = errors.New("journal: no entry for day")

// Entry is one day's journal content. Either field may be empty, but an
// entry with both empty is never stored.
type Entry struct {
	// Day is the entry date in DayLayout form.
	Day string

	// Note is the short note text, NFC-normalized on write.
	Note string

	// Drawing is the serialized drawing blob, or nil.
	Drawing []byte
}

// Store is a bbolt-backed journal.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) a journal store at the given path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, nil)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketNotes, bucketDrawings} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal buckets: %w", err)
	}
	doodle.Logger().Debug("journal opened", "path", path)
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores an entry, replacing any existing entry for the same day.
// The note is normalized to NFC. An entry with no note and no drawing is
// equivalent to Delete.
func (s *Store) Put(e Entry) error {
	day, err := parseDay(e.Day)
	if err != nil {
		return err
	}
	note := norm.NFC.String(e.Note)
	if note == "" && len(e.Drawing) == 0 {
		return s.Delete(day)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		key := []byte(day)
		notes := tx.Bucket(bucketNotes)
		drawings := tx.Bucket(bucketDrawings)

		if note == "" {
			if err := notes.Delete(key); err != nil {
				return err
			}
		} else if err := notes.Put(key, []byte(note)); err != nil {
			return err
		}

		if len(e.Drawing) == 0 {
			return drawings.Delete(key)
		}
		return drawings.Put(key, e.Drawing)
	})
}

// Get returns the entry for the given day.
// Returns ErrNoEntry if neither a note nor a drawing is stored.
func (s *Store) Get(day string) (Entry, error) {
	day, err := parseDay(day)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{Day: day}
	err = s.db.View(func(tx *bolt.Tx) error {
		key := []byte(day)
		if v := tx.Bucket(bucketNotes).Get(key); v != nil {
			entry.Note = string(v)
		}
		if v := tx.Bucket(bucketDrawings).Get(key); v != nil {
			entry.Drawing = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	if entry.Note == "" && entry.Drawing == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrNoEntry, day)
	}
	return entry, nil
}

// Delete removes the entry for the given day, if any.
func (s *Store) Delete(day string) error {
	day, err := parseDay(day)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		key := []byte(day)
		if err := tx.Bucket(bucketNotes).Delete(key); err != nil {
			return err
		}
		return tx.Bucket(bucketDrawings).Delete(key)
	})
}

// Days returns the days of a year that have an entry, in chronological
// order. This backs the year-at-a-glance view.
func (s *Store) Days(year int) ([]string, error) {
	prefix := fmt.Sprintf("%04d-", year)
	seen := make(map[string]struct{})

	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketNotes, bucketDrawings} {
			c := tx.Bucket(name).Cursor()
			for k, _ := c.Seek([]byte(prefix)); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
				seen[string(k)] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

// parseDay validates a day string and returns its canonical form.
func parseDay(day string) (string, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", day, err)
	}
	return t.Format(DayLayout), nil
}
