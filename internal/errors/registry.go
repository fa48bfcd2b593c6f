package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Document Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryDocument,
		Message:  "Document is not valid YAML",
		Detail:   "The document file could not be parsed as YAML. Check indentation and quoting.",
		DocURL:   "https://blueprint.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryDocument,
		Message:  "Element is missing a tag",
		Detail:   "Every element node needs a non-empty 'tag' field naming the HTML element to create.",
		DocURL:   "https://blueprint.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryDocument,
		Message:  "Element node must be a mapping",
		Detail:   "Element nodes are YAML mappings with fields like 'tag', 'options', 'text', and 'children'.",
		DocURL:   "https://blueprint.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryDocument,
		Message:  "Children must be a mapping of keys to elements",
		Detail:   "The 'children' field maps child keys to element nodes. Keys identify children for later updates and removal.",
		DocURL:   "https://blueprint.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryDocument,
		Message:  "Unknown element field",
		Detail:   "An element node contains a field the loader does not understand.",
		DocURL:   "https://blueprint.dev/docs/errors/E005",
	},
	"E006": {
		Category: CategoryDocument,
		Message:  "Invalid element options",
		Detail:   "The 'options' field did not decode to the expected shape.",
		DocURL:   "https://blueprint.dev/docs/errors/E006",
	},
	"E007": {
		Category: CategoryDocument,
		Message:  "Document has no body",
		Detail:   "The document must define a 'body' element to render.",
		DocURL:   "https://blueprint.dev/docs/errors/E007",
	},

	// ============================================
	// Blueprint Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryBlueprint,
		Message:  "Blueprint construction failed",
		Detail:   "The element description could not be turned into a blueprint.",
		DocURL:   "https://blueprint.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryBlueprint,
		Message:  "Blueprint produce failed",
		Detail:   "The blueprint could not be materialized into an element.",
		DocURL:   "https://blueprint.dev/docs/errors/E021",
	},

	// ============================================
	// Render Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The element tree could not be serialized to HTML.",
		DocURL:   "https://blueprint.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryRender,
		Message:  "Output write failed",
		Detail:   "The rendered output could not be written to its destination.",
		DocURL:   "https://blueprint.dev/docs/errors/E041",
	},

	// ============================================
	// Publish Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryPublish,
		Message:  "Publish destination unavailable",
		Detail:   "The configured publish backend could not be reached.",
		DocURL:   "https://blueprint.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryPublish,
		Message:  "Artifact upload failed",
		Detail:   "The rendered artifact could not be stored at the publish destination.",
		DocURL:   "https://blueprint.dev/docs/errors/E061",
	},
	"E062": {
		Category: CategoryPublish,
		Message:  "Unknown publish backend",
		Detail:   "The configured publish backend is not one of the supported kinds.",
		DocURL:   "https://blueprint.dev/docs/errors/E062",
	},

	// ============================================
	// Server Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryServer,
		Message:  "Preview server failed to start",
		Detail:   "The preview server could not bind to the configured address.",
		DocURL:   "https://blueprint.dev/docs/errors/E080",
	},
	"E081": {
		Category: CategoryServer,
		Message:  "Reload socket upgrade failed",
		Detail:   "The reload endpoint could not upgrade the connection to a WebSocket.",
		DocURL:   "https://blueprint.dev/docs/errors/E081",
	},
	"E082": {
		Category: CategoryServer,
		Message:  "File watcher failed",
		Detail:   "The file watcher could not observe the configured paths.",
		DocURL:   "https://blueprint.dev/docs/errors/E082",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Configuration error",
		Detail:   "blueprint.yaml could not be read or parsed.",
		DocURL:   "https://blueprint.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value outside its allowed range.",
		DocURL:   "https://blueprint.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The configured port must be between 0 and 65535.",
		DocURL:   "https://blueprint.dev/docs/errors/E122",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Directory already exists",
		Detail:   "The target directory for the new project already exists.",
		DocURL:   "https://blueprint.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Project not found",
		Detail:   "No blueprint.yaml was found in the current directory or any parent.",
		DocURL:   "https://blueprint.dev/docs/errors/E141",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Document not found",
		Detail:   "The requested document file does not exist.",
		DocURL:   "https://blueprint.dev/docs/errors/E142",
	},
}

// Lookup returns the template for an error code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
