package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface used to load state files
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}
