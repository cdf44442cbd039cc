// Package entities holds the shapes exchanged with the reading-log API.
// Values are decoded verbatim; the client adds no authoritative state.
package entities
