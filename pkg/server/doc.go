// Package server implements the development preview server. It serves
// rendered documents over HTTP, exposes Prometheus metrics, and pushes
// live reload events to connected browsers over a websocket.
package server
