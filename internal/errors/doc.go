// Package errors provides structured, actionable error messages for the
// blueprint toolchain.
//
// Errors carry a stable code, a category, an optional document location,
// a fix suggestion, and a documentation link, so that a CLI user sees
// where in their document something went wrong and what to do about it.
//
// # Error Categories
//
// Errors are organized into categories:
//   - document: YAML document loading and shape errors
//   - blueprint: element construction and produce errors
//   - render: HTML serialization errors
//   - publish: artifact storage errors (disk, S3)
//   - server: preview server and file watcher errors
//   - config: blueprint.yaml errors
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New("E002").
//	    WithLocation("site/index.yaml", 12, 3).
//	    WithSuggestion("Add a 'tag' field naming the element, e.g. tag: div")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E002: Element is missing a tag
//	//
//	//   site/index.yaml:12:3
//	//
//	//     11 │   children:
//	//   → 12 │     hero:
//	//        │   ^
//	//     13 │       text: Welcome
//	//
//	//   Hint: Add a 'tag' field naming the element, e.g. tag: div
//	//
//	//   Learn more: https://blueprint.dev/docs/errors/E002
package errors
