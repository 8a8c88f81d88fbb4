package image

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// CreateFS defines a file system interface that supports creating and
// removing output files.
type CreateFS interface {
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
	// Remove removes a file.
	Remove(name string) (err error)
	// Stat returns the file info of a file.
	Stat(name string) (info fs.FileInfo, err error)
}

// DirFS is a CreateFS rooted at an operating system directory.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) path(name string) string {
	return filepath.Join(string(dir), name)
}

func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	osfile, err := os.Create(dir.path(name))
	if err != nil {
		return
	}
	file = osfile
	return
}

func (dir DirFS) Remove(name string) (err error) {
	return os.Remove(dir.path(name))
}

func (dir DirFS) Stat(name string) (info fs.FileInfo, err error) {
	return os.Stat(dir.path(name))
}

// Output names the machine code and data images of an assembly.
type Output struct {
	FS   CreateFS
	Code string // Name of the text segment image.
	Data string // Name of the data segment image.
}

// Names returns the names of the output images.
func (out *Output) Names() []string {
	return []string{out.Code, out.Data}
}

// Exists reports whether any output image is already present.
func (out *Output) Exists() (exists bool, err error) {
	for _, name := range out.Names() {
		_, err = out.FS.Stat(name)
		if err == nil {
			exists = true
			return
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return
		}
	}

	err = nil
	return
}

// Create creates both output images. If the data image cannot be created, the
// code image is closed and removed.
func (out *Output) Create() (code, data io.WriteCloser, err error) {
	code, err = out.FS.Create(out.Code)
	if err != nil {
		return
	}

	data, err = out.FS.Create(out.Data)
	if err != nil {
		var result *multierror.Error
		result = multierror.Append(result, err, code.Close(), out.FS.Remove(out.Code))
		err = result.ErrorOrNil()
		code = nil
		data = nil
		return
	}

	return
}

// Remove removes any partially written output images.
func (out *Output) Remove() error {
	var result *multierror.Error

	for _, name := range out.Names() {
		err := out.FS.Remove(name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
