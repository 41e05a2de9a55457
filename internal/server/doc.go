// Package server runs the development stub API's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown around a plain
// net/http server.
package server
