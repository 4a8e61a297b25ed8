// Package api defines the transport-neutral request and response payloads
// shared by the HTTP API, the IPC layer, and their clients, plus the input
// validation that runs before any file access.
package api
