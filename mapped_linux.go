//go:build linux && !tinygo

package stdpins

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// MappedFile is a register file backed by a memory mapped file. Other
// processes mapping the same file see register changes as they happen, and
// the contents survive between runs.
type MappedFile struct {
	log  zerolog.Logger
	mmap []byte
}

// OpenMappedFile maps size bytes of the file at path, starting at offset.
// The file is created and grown as needed.
func OpenMappedFile(path string, offset int64, size int, log zerolog.Logger) (*MappedFile, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, maskAny(err)
	}
	defer file.Close()

	st, err := file.Stat()
	if err != nil {
		return nil, maskAny(err)
	}
	if st.Size() < offset+int64(size) {
		if err := file.Truncate(offset + int64(size)); err != nil {
			return nil, errors.Wrapf(err, "growing %s", path)
		}
	}
	mmap, err := unix.Mmap(int(file.Fd()), offset, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", path)
	}
	log.Debug().Str("path", path).Int64("offset", offset).Int("size", size).Msg("mapped register file")
	return &MappedFile{log: log, mmap: mmap}, nil
}

func (m *MappedFile) Read(addr uint16) uint8 {
	if int(addr) >= len(m.mmap) {
		return 0
	}
	return m.mmap[addr]
}

func (m *MappedFile) Write(addr uint16, value uint8) {
	if int(addr) >= len(m.mmap) {
		return
	}
	m.mmap[addr] = value
}

// Close unmaps the file. The register file must not be used afterwards.
func (m *MappedFile) Close() error {
	if m.mmap == nil {
		return nil
	}
	err := unix.Munmap(m.mmap)
	m.mmap = nil
	if err != nil {
		return maskAny(err)
	}
	m.log.Debug().Msg("unmapped register file")
	return nil
}
