package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile writes data to dst creating missing directories.
func WriteFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// CopyFile copies a file from src to dst creating missing directories.
func CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()
	return copyReader(srcFile, dst)
}

func copyReader(src io.Reader, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, src); err != nil {
		return err
	}
	return dstFile.Sync()
}

// CopyTree copies an entire directory tree to destination preserving structure.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}
	return CopyFS(os.DirFS(src), dst, nil)
}

// Transform rewrites a file's contents on its way to disk. Returning the
// input unchanged is allowed.
type Transform func(name string, data []byte) ([]byte, error)

// CopyFS writes every regular file in fsys below dst. A nil transform copies
// bytes as they are.
func CopyFS(fsys fs.FS, dst string, transform Transform) error {
	return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			if name == "." {
				return os.MkdirAll(dst, 0o755)
			}
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if transform == nil {
			f, err := fsys.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()
			return copyReader(f, target)
		}
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		out, err := transform(name, raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return WriteFile(target, out)
	})
}
