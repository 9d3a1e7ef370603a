// Package memory provides in-memory implementations of driven ports.
// They back the service and adapter tests and hold no state across runs.
package memory
