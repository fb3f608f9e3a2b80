package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/cespare/xxhash/v2"
)

// FileSet owns the loaded source files for one compilation and resolves
// spans back to line/column positions.
type FileSet struct {
	files []File
	index map[string]FileID // normalized path -> latest id
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0, 16),
		index: make(map[string]FileID, 16),
	}
}

// Add stores already-normalized content under path and returns its
// FileID. If path was already added with byte-identical content and
// flags, Add is a no-op that returns the existing id rather than
// growing the set — the xxhash identity key in File.Hash is what makes
// this a cheap comparison instead of a full content re-scan. Re-adding
// path with content that actually differs creates a new id and updates
// the lookup index to point at it; older ids already handed out stay
// valid.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	normalized := normalizePath(path)
	hash := xxhash.Sum64(content)
	if existing, ok := fs.GetByPath(normalized); ok && existing.Hash == hash && existing.Flags == flags {
		return existing.ID
	}

	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: too many files: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normalized,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    hash,
		Flags:   flags,
	})
	fs.index[normalized] = id
	return id
}

// Load reads path from disk, normalizes BOM/CRLF, and adds it.
func (fs *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the loader's directory walk
	if err != nil {
		return 0, err
	}
	return fs.AddNormalized(path, content), nil
}

// AddNormalized normalizes BOM/CRLF in already-read content and adds it
// under path. Used by the module loader, whose file reads go through a
// mockable FS rather than os directly.
func (fs *FileSet) AddNormalized(path string, content []byte) FileID {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	var flags FileFlags
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags)
}

// AddVirtual adds an in-memory file (tests, stdin) under name.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file metadata for id.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// Len returns the number of files added so far.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// GetByPath returns the most recently added file at path, if any.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fs.index[normalizePath(path)]; ok {
		return &fs.files[id], true
	}
	return nil, false
}

// Resolve converts a span into start/end line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine returns the 1-based line of text from f, or "" if out of range.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("source: line index overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}
