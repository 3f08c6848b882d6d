package source

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

// Stdin is the name that selects standard input in Read.
const Stdin = "-"

// File is an open subject file, memory-mapped when possible.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the file into memory when supported; otherwise it falls back to
// os.Open.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// Text returns the whole content of the file. The result does not alias the
// mapping, so it stays valid after Close.
func (f *File) Text() (string, error) {
	if f.mm != nil {
		return string(f.mm.Bytes()), nil
	}

	b, err := io.ReadAll(f.os)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Mapped reports whether the file is served from a memory map.
func (f *File) Mapped() bool {
	return f.mm != nil
}

// Name returns the original file name.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Close releases resources held by the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Read returns the content of the named file, or of stdin when name is
// [Stdin].
func Read(name string, stdin io.Reader) (string, error) {
	if name == Stdin {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	f, err := Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return f.Text()
}
