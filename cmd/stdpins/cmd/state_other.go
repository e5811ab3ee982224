//go:build !linux

package cmd

import (
	"github.com/pkg/errors"

	"github.com/requireiot/stdpins"
)

func openState(path string) (stdpins.RegisterFile, func() error, error) {
	return nil, nil, errors.Errorf("--state %s: register state files are only supported on linux", path)
}
