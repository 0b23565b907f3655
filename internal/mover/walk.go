package mover

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cacack/photoarchivist/internal/container"
)

// walkSource returns every movable-extension file under srcDir, in a
// stable pre-order traversal (fs.WalkDir already visits each directory's
// entries in lexical order, giving deterministic collision tie-breaking).
// Any path under destDir is ignored, so a destination nested inside the
// source tree is never rescanned as a source.
func walkSource(srcDir, destDir string) ([]string, error) {
	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		absPath, aerr := filepath.Abs(path)
		if aerr != nil {
			return aerr
		}

		if d.IsDir() {
			if absPath == absDest {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(absPath, absDest+string(filepath.Separator)) {
			return nil
		}

		ext := filepath.Ext(path)
		if container.IsMovable(ext) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
