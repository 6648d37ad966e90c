package frames

import (
	"io/fs"
	"path"
)

// Store looks up icon images by frame name.
type Store interface {
	// Icon returns the PNG bytes for a frame name, or false if absent.
	Icon(name string) ([]byte, bool)
}

// FSStore serves icons from "<dir>/<name>.png" inside an fs.FS.
type FSStore struct {
	fsys fs.FS
	dir  string
}

// NewFSStore creates a store over fsys rooted at dir.
func NewFSStore(fsys fs.FS, dir string) *FSStore {
	return &FSStore{fsys: fsys, dir: dir}
}

// Icon implements Store.
func (s *FSStore) Icon(name string) ([]byte, bool) {
	data, err := fs.ReadFile(s.fsys, path.Join(s.dir, name+".png"))
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
