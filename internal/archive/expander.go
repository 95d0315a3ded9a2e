package archive

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/wxgate/emwintg/internal/models"
)

// MaxMemberSize bounds how much memory a single archive member may occupy.
// Members declaring a larger size are rejected rather than truncated.
const MaxMemberSize = 8 << 20 // 8 MiB

// nestedSuffix marks members that are themselves archives and must be
// expanded recursively. Checked after uppercasing the member name.
const nestedSuffix = ".ZIP"

// FormatError indicates the fetched bytes could not be opened as an archive
// at all.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("archive format error: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// MemberError indicates a specific archive member could not be processed:
// either it could not be read, or it is a nested archive that does not
// contain exactly one member. Name is the uppercased name of the outer
// member.
type MemberError struct {
	Name string
	Err  error
}

func (e *MemberError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("inner archive format error in %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("inner archive format error in %q", e.Name)
}

func (e *MemberError) Unwrap() error {
	return e.Err
}

// Archive is one opened batch. It supports listing member names in
// deterministic order and extracting individual members into products.
type Archive struct {
	files  []*zip.File
	byName map[string]*zip.File
}

// Open parses data as a ZIP container. It returns a FormatError if the bytes
// cannot be parsed.
func Open(data []byte) (*Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &FormatError{Err: err}
	}

	byName := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		byName[f.Name] = f
	}
	return &Archive{files: reader.File, byName: byName}, nil
}

// Len returns the number of members in the archive.
func (a *Archive) Len() int {
	return len(a.files)
}

// MemberNames lists all member names sorted bytewise ascending. This is the
// only ordering guarantee made for products originating from one batch.
func (a *Archive) MemberNames() []string {
	names := make([]string, 0, len(a.files))
	for _, f := range a.files {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Extract reads the named member into a product. The member name is
// normalized to uppercase. A member named *.ZIP is itself opened as an
// archive and must contain exactly one member, recursively; anything else is
// a MemberError naming the outer member.
func (a *Archive) Extract(name string) (*models.Product, error) {
	f, ok := a.byName[name]
	if !ok {
		return nil, &MemberError{Name: strings.ToUpper(name), Err: fmt.Errorf("no such member")}
	}
	return extractFile(f)
}

func extractFile(f *zip.File) (*models.Product, error) {
	filename := strings.ToUpper(f.Name)

	if f.UncompressedSize64 > MaxMemberSize {
		return nil, &MemberError{Name: filename, Err: fmt.Errorf("member size %d exceeds %d byte limit", f.UncompressedSize64, MaxMemberSize)}
	}

	rc, err := f.Open()
	if err != nil {
		return nil, &MemberError{Name: filename, Err: err}
	}
	defer rc.Close()

	contents := make([]byte, f.UncompressedSize64)
	if _, err := io.ReadFull(rc, contents); err != nil {
		return nil, &MemberError{Name: filename, Err: err}
	}

	if strings.HasSuffix(filename, nestedSuffix) {
		inner, err := Open(contents)
		if err != nil {
			return nil, &MemberError{Name: filename, Err: err}
		}
		if inner.Len() != 1 {
			return nil, &MemberError{Name: filename}
		}
		return extractFile(inner.files[0])
	}

	return &models.Product{Filename: filename, Contents: contents}, nil
}
