// Package logstore owns the append-only development log file.
//
// It resolves where the log lives, creates it with a header on first use,
// appends timestamped entries, and serves tail and substring-search views with
// bounded memory usage. The file is plain UTF-8 text: once created it is only
// ever appended to, and read operations never mutate it.
//
// The store assumes a single writer process; the daemon enforces that with its
// instance lock, so no file locking happens here.
package logstore
