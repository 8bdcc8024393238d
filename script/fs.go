package script

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileSystem is the file system scripts are loaded from. The default os file
// system can be replaced by other implementations, e.g. afero.NewMemMapFs in
// tests.
type FileSystem = afero.Fs

// Load reads and parses the script stored in filename.
func Load(fs FileSystem, filename string) ([]Command, error) {
	fd, err := fs.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open script failed")
	}
	defer func() { _ = fd.Close() }()

	cmds, err := Parse(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "parse script %s", filename)
	}

	return cmds, nil
}
