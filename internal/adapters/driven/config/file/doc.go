// Package file stores haste settings in a TOML file under the user's
// config directory and reports edits made outside the process.
package file
