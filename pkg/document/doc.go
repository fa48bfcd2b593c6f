// Package document loads YAML page descriptions and turns them into
// blueprint trees.
//
// A document names a body element and optional page metadata:
//
//	title: Home
//	lang: en
//	head:
//	  - '<link rel="stylesheet" href="/app.css">'
//	body:
//	  tag: main
//	  attributes:
//	    id: app
//	  children:
//	    hero:
//	      tag: h1
//	      text: Welcome
//	    intro:
//	      tag: p
//	      text: Built from a document.
//
// Child order follows the order keys appear in the file.
package document
