// Package config loads and validates blueprint.yaml project configuration.
//
// A minimal blueprint.yaml looks like:
//
//	name: mysite
//	documents: site
//	output: dist
//	server:
//	  port: 3000
//	publish:
//	  backend: disk
//
// Missing fields fall back to defaults, so an empty file is a valid
// configuration.
package config
