// Package protocol owns the ANT serial wire contract.
//
// Ownership boundary:
// - ant: type codes and protocol constants
// - frame: sync/length/type/payload/checksum framing and validation
// - message: typed message kinds, the type registry and resolve
//
// Buffering across reads and recovery from bad frames belong to callers
// (see internal/transport).
package protocol
