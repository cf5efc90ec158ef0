package filesystem

import (
	"errors"
	"io/fs"
)

// FS is the set of filesystem operations the installer performs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error
}

// Exists reports whether name can be stat'ed. Any stat error counts as absent.
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// MakeExecutable adds execute permission for user, group and other,
// like `chmod +x`.
func MakeExecutable(fsys FS, name string) error {
	info, err := fsys.Stat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "chmod", Path: name, Err: errors.New("is a directory")}
	}
	return fsys.Chmod(name, info.Mode().Perm()|0o111)
}
