package loader

import (
	"encoding/json"
	"path/filepath"

	"lumen/internal/diag"
	"lumen/internal/source"
)

const manifestName = "module.json"

// manifest is the decoded `module.json` shape: a map from the name
// importers use (`import <name>;`) to the filesystem path of the
// dependency module, relative to this manifest's own directory unless
// absolute.
type manifest struct {
	Dependencies map[string]string `json:"dependencies"`
}

func readManifest(fsys FS, dir string) (*manifest, *diag.Error) {
	raw, err := fsys.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, diag.Wrap(diag.ModuleFileError, "failed to read "+manifestName, source.Span{}, err)
	}
	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, diag.Wrap(diag.ModuleFileError, "failed to parse "+manifestName, source.Span{}, err)
	}
	return &m, nil
}

// hasManifest reports whether dir contains a module.json, without
// treating its absence as an error.
func hasManifest(fsys FS, dir string) bool {
	_, err := fsys.ReadFile(filepath.Join(dir, manifestName))
	return err == nil
}
