// Package store persists the family profile document as a human-readable
// JSON file. The store is single-writer; concurrent processes writing the
// same file are not supported.
package store

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// DefaultFileName is the family document file name under the data directory.
const DefaultFileName = "family_data.json"

// Store provides access to the persisted family document.
type Store struct {
	path string

	mu  sync.Mutex
	doc *FamilyDocument
}

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the family document from disk. If the file does not exist yet,
// the default document is seeded, saved and returned.
func (s *Store) Load() (*FamilyDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads or seeds the document. Caller must hold s.mu.
func (s *Store) load() (*FamilyDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := DefaultDocument()
		if err := s.write(doc); err != nil {
			return nil, err
		}
		slog.Info("seeded family document", "path", s.path, "members", len(doc.Members))
		s.doc = doc
		return doc.Clone(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read family document %s", s.path)
	}

	doc := &FamilyDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrapf(ErrValidation, "parse family document %s: %v", s.path, err)
	}
	s.doc = doc
	return doc.Clone(), nil
}

// Save atomically persists the document. The JSON encoding keeps non-ASCII
// characters verbatim and uses two-space indentation.
func (s *Store) Save(doc *FamilyDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(doc); err != nil {
		return err
	}
	s.doc = doc.Clone()
	return nil
}

// write encodes the document to a sibling temp file and renames it into
// place so a crash mid-write never leaves a half-valid file.
func (s *Store) write(doc *FamilyDocument) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "encode family document")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return errors.Wrapf(err, "create data directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "write temp file %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "close temp file %s", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "rename %s to %s", tmpName, s.path)
	}
	return nil
}

// document returns the in-memory document, loading it lazily.
// Caller must hold s.mu.
func (s *Store) document() (*FamilyDocument, error) {
	if s.doc != nil {
		return s.doc, nil
	}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

// AddMember adds a new member and persists the document. The interests input
// is newline-delimited. Fails with ErrValidation on an empty name and
// ErrDuplicateName when the name is already taken.
func (s *Store) AddMember(name, interestsInput, dob, notes string) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(ErrValidation, "member name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	if doc.FindMember(name) != nil {
		return nil, errors.Wrapf(ErrDuplicateName, "member %q", name)
	}

	member := Member{
		Name:      name,
		Interests: SplitInterests(interestsInput),
		DOB:       dob,
		Notes:     notes,
	}
	doc.Members = append(doc.Members, member)
	if err := s.write(doc); err != nil {
		doc.Members = doc.Members[:len(doc.Members)-1]
		return nil, err
	}
	return &member, nil
}

// UpdateMember rewrites the interests and notes of an existing member,
// preserving other fields, and persists the document.
func (s *Store) UpdateMember(name, interestsInput, notes string) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.document()
	if err != nil {
		return nil, err
	}

	member := doc.FindMember(name)
	if member == nil {
		return nil, errors.Wrapf(ErrNotFound, "member %q", name)
	}

	previousInterests, previousNotes := member.Interests, member.Notes
	member.Interests = SplitInterests(interestsInput)
	member.Notes = notes
	if err := s.write(doc); err != nil {
		member.Interests, member.Notes = previousInterests, previousNotes
		return nil, err
	}
	updated := *member
	return &updated, nil
}

// DeleteMember removes the named member and persists the document.
// Deleting an absent member is a no-op.
func (s *Store) DeleteMember(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.document()
	if err != nil {
		return err
	}

	index := -1
	for i := range doc.Members {
		if doc.Members[i].Name == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	original := append([]Member(nil), doc.Members...)
	doc.Members = append(doc.Members[:index:index], doc.Members[index+1:]...)
	if err := s.write(doc); err != nil {
		doc.Members = original
		return err
	}
	return nil
}

// UpdateFamilyInfo replaces the shared family information and persists the
// document.
func (s *Store) UpdateFamilyInfo(info FamilyInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.document()
	if err != nil {
		return err
	}

	previous := doc.FamilyInfo
	doc.FamilyInfo = info
	if err := s.write(doc); err != nil {
		doc.FamilyInfo = previous
		return err
	}
	return nil
}

// Document returns a copy of the current document, loading it lazily.
func (s *Store) Document() (*FamilyDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}
