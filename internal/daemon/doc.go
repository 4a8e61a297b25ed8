// Package daemon coordinates the long-running devlog process.
//
// It wires configuration, the log store, and the HTTP API into a single
// lifecycle with flock-based locking so at most one daemon instance ever owns
// the log file. Request validation and error classification for both
// transports happen here: invalid input fails the call before any file
// access, while read/write failures surface as in-band error payloads.
package daemon
