// Package api
// Author: momentics <momentics@gmail.com>
//
// Shared type declarations and interfaces for the splice library.
// Defines the edit model (positional Insert/Remove operations against an
// immutable original byte sequence), the Applier contract implemented by
// the executors and the facade, and pooling/stats DTOs.
package api
