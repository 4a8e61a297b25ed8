// Package ipc exposes the daemon's log operations via JSON-RPC over a Unix
// domain socket. This is the request/response protocol the local CLI speaks.
//
// Validation failures are returned as RPC errors; file-level read and write
// failures travel in-band inside the response payloads so callers are not
// disconnected by a transient I/O problem.
package ipc
