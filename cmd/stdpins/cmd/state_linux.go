//go:build linux

package cmd

import (
	"github.com/requireiot/stdpins"
)

// openState maps a register state file shared between runs.
func openState(path string) (stdpins.RegisterFile, func() error, error) {
	m, err := stdpins.OpenMappedFile(path, 0, stdpins.MemorySize, log)
	if err != nil {
		return nil, nil, err
	}
	return m, m.Close, nil
}
