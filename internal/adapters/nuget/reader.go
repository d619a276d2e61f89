// Package nuget reads the project assets files NuGet generates on restore.
package nuget

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockFileReader = (*Reader)(nil)

// Reader implements ports.LockFileReader for project.assets.json files.
type Reader struct {
	fs ports.FileSystem
}

// NewReader creates a new assets file reader.
func NewReader(fs ports.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read parses the assets file at path.
func (r *Reader) Read(path string) (*domain.LockFile, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileReadFailed.Error()), "path", path)
	}

	lock, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileParseFailed.Error()), "path", path)
	}
	return lock, nil
}

type libraryEntry struct {
	Type string `json:"type"`
}

// Decode parses an assets document. Libraries are returned in the order they
// appear in the "libraries" object; every other top-level member except
// "version" is skipped.
func Decode(r io.Reader) (*domain.LockFile, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	lock := &domain.LockFile{}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}

		switch key {
		case "version":
			if err := dec.Decode(&lock.Version); err != nil {
				return nil, zerr.Wrap(err, "invalid version")
			}
		case "libraries":
			libs, err := decodeLibraries(dec)
			if err != nil {
				return nil, err
			}
			lock.Libraries = libs
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid member"), "member", key)
			}
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return lock, nil
}

func decodeLibraries(dec *json.Decoder) ([]domain.Library, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, zerr.With(err, "member", "libraries")
	}

	var libs []domain.Library
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}

		var entry libraryEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid library"), "library", key)
		}

		name, version := splitLibraryKey(key)
		libs = append(libs, domain.Library{
			Name:    name,
			Version: domain.NewPackageVersion(version),
			Type:    entry.Type,
		})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return libs, nil
}

// splitLibraryKey splits a "Name/Version" library key.
func splitLibraryKey(key string) (string, string) {
	i := strings.LastIndexByte(key, '/')
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", zerr.Wrap(err, "unexpected end of document")
	}
	key, ok := tok.(string)
	if !ok {
		return "", zerr.With(zerr.New("expected object key"), "token", fmt.Sprint(tok))
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return zerr.Wrap(err, "unexpected end of document")
	}
	if got, ok := tok.(json.Delim); !ok || got != want {
		return zerr.With(zerr.New("unexpected token"), "want", want.String())
	}
	return nil
}
