// Package store provides the durable backends for the book collection.
// The CSV store is the single source of truth for the backing file; every
// mutation rewrites the file in full.
package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shelfctl/shelf/pkg/books"
	"github.com/shelfctl/shelf/pkg/constants"
	"github.com/shelfctl/shelf/pkg/errors"
	"github.com/shelfctl/shelf/pkg/logging"
)

// Header is the mandatory first row of the backing file. Load fails when
// the file's header does not match it.
var Header = []string{"title", "author", "genre", "year", "status"}

// CSV persists the full record set to one comma-delimited UTF-8 file.
type CSV struct {
	Path   string
	logger *zerolog.Logger
}

// NewCSV creates a CSV store for the given path. The file does not need
// to exist yet.
func NewCSV(path string) *CSV {
	return &CSV{Path: path, logger: logging.Default()}
}

// WithLogger replaces the store's logger. Mainly for tests.
func (s *CSV) WithLogger(logger *zerolog.Logger) *CSV {
	s.logger = logger
	return s
}

// Load reads the backing file and returns the ordered record sequence.
// An absent file yields an empty sequence, not an error. Malformed rows
// are skipped with a logged warning; a missing or mismatched header row
// is fatal for the whole load.
func (s *CSV) Load(_ context.Context) ([]books.Book, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapIO("open", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", s.Path, "missing header row", nil)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", s.Path, err)
	}
	if !headerMatches(header) {
		return nil, errors.NewParseError("csv", s.Path,
			fmt.Sprintf("unexpected header %v, want %v", header, Header), nil)
	}

	var out []books.Book
	row := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			s.logger.Warn().Err(err).Str("file", s.Path).Int("row", row).
				Msg("skipping malformed row")
			continue
		}
		b, err := decodeRow(record)
		if err != nil {
			s.logger.Warn().Err(err).Str("file", s.Path).Int("row", row).
				Msg("skipping invalid row")
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Save serializes the given sequence to the backing file, overwriting it
// entirely. The rewrite goes through a temp file in the same directory and
// an atomic rename, so a crash mid-write never leaves a truncated file.
func (s *CSV) Save(_ context.Context, list []books.Book) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", s.Path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		cleanup()
		return errors.WrapIO("write", s.Path, err)
	}
	for i := range list {
		if err := w.Write(encodeRow(&list[i])); err != nil {
			cleanup()
			return errors.WrapIO("write", s.Path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		cleanup()
		return errors.WrapIO("write", s.Path, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", s.Path, err)
	}
	// CreateTemp makes the file 0600; match normal file permissions.
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", s.Path, err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", s.Path, err)
	}
	return nil
}

// headerMatches compares a header row against Header, ignoring case and
// surrounding whitespace.
func headerMatches(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), Header[i]) {
			return false
		}
	}
	return true
}

// decodeRow turns one CSV row into a Book. Rows missing required fields or
// carrying an unparseable year are rejected.
func decodeRow(record []string) (books.Book, error) {
	if len(record) < 2 {
		return books.Book{}, errors.NewValidationError("", record, "too few columns")
	}

	b := books.Book{
		Title:  strings.TrimSpace(field(record, 0)),
		Author: strings.TrimSpace(field(record, 1)),
		Genre:  strings.TrimSpace(field(record, 2)),
	}

	if yearStr := strings.TrimSpace(field(record, 3)); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return books.Book{}, errors.NewValidationError("year", yearStr, "not a number")
		}
		b.Year = year
	}

	// Free-text statuses in an existing file are kept, lowercased.
	b.Status = books.Status(strings.ToLower(strings.TrimSpace(field(record, 4))))
	if b.Status == "" {
		b.Status = books.StatusUnread
	}

	if err := b.Validate(); err != nil {
		return books.Book{}, err
	}
	return b, nil
}

// encodeRow turns one Book into a CSV row in Header order.
func encodeRow(b *books.Book) []string {
	year := ""
	if b.Year != 0 {
		year = strconv.Itoa(b.Year)
	}
	return []string{b.Title, b.Author, b.Genre, year, string(b.Status)}
}

// field returns record[i] or "" when the row is short.
func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
