// Package config loads the installer configuration.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. asis-install.toml in the package root, if present
//  3. an explicit config file (--config)
//  4. ASIS_INSTALL_* environment variables, e.g. ASIS_INSTALL_SETUP_TIMEOUT=5m
//  5. command-line flag overrides
package config
