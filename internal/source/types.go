package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a file was obtained.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (tests) rather than disk.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the normalized content and line index for one source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n', 0-based
	Hash    uint64   // xxhash of Content, an identity/dedupe key
	Flags   FileFlags
}

// LineCol is a human-readable, 1-based line/column position.
type LineCol struct {
	Line uint32
	Col  uint32
}
