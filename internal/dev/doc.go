// Package dev provides the development loop for the preview server: a
// recursive file watcher over the document directories and a WebSocket hub
// that tells connected browsers to reload when a document changes.
package dev
