// Package filesystem provides the filesystem seam used by the installer.
//
// The installer only needs to stat, create directories, change modes and
// write the Windows shim. NewOS backs those calls with the real filesystem,
// NewAferoFS with any afero.Fs (a MemMapFs in tests).
package filesystem
