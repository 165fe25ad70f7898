// Package repo reads precomputed dataset files from the export root
package repo

import (
	"os"
	"path/filepath"
	"strings"

	perr "analyses/internal/platform/errors"
)

// Storage is the read-only view the service binds against
type Storage interface {
	Read(name string) ([]byte, error)
}

// Disk serves datasets from a directory of exported JSON files. Names are
// slash-separated relative paths without extension ("faillissementen/yearly")
type Disk struct {
	root string
}

// NewDisk constructs a disk storage rooted at root
func NewDisk(root string) *Disk { return &Disk{root: root} }

// Read returns the raw bytes of one dataset. Unknown names are not-found;
// names that try to escape the root are rejected outright
func (d *Disk) Read(name string) ([]byte, error) {
	path, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.NotFoundf("Onbekende dataset %q", name)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "dataset %q", name)
	}
	return b, nil
}

// resolve maps a dataset name onto a file path under the root. The cleaned
// path must stay inside the root; ".." and absolute names never do
func (d *Disk) resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return "", perr.InvalidArgf("Ongeldige datasetnaam %q", name)
	}
	rel := filepath.Clean(filepath.FromSlash(name) + ".json")
	if rel == "." || strings.HasPrefix(rel, "..") {
		return "", perr.InvalidArgf("Ongeldige datasetnaam %q", name)
	}
	return filepath.Join(d.root, rel), nil
}
