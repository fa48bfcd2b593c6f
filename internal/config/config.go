package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/blueprint-dev/blueprint/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "blueprint.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultDocuments is the default documents directory.
	DefaultDocuments = "site"

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"

	// DefaultAssets is the default static assets directory.
	DefaultAssets = "assets"
)

// Config represents the complete blueprint.yaml configuration.
type Config struct {
	// Name is the project name.
	Name string `mapstructure:"name"`

	// Documents is the directory containing YAML page documents.
	Documents string `mapstructure:"documents"`

	// Output is the directory rendered pages are written to.
	Output string `mapstructure:"output"`

	// Assets is the directory of static files served and published as-is.
	Assets string `mapstructure:"assets"`

	// Server contains preview server configuration.
	Server ServerConfig `mapstructure:"server"`

	// Watch contains file watcher configuration.
	Watch WatchConfig `mapstructure:"watch"`

	// Render contains HTML serialization configuration.
	Render RenderConfig `mapstructure:"render"`

	// Page contains document scaffolding defaults.
	Page PageConfig `mapstructure:"page"`

	// Publish contains artifact publishing configuration.
	Publish PublishConfig `mapstructure:"publish"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `mapstructure:"host"`

	// Port is the port to run the preview server on.
	Port int `mapstructure:"port"`

	// HotReload enables live reload over WebSocket.
	HotReload bool `mapstructure:"hotReload"`
}

// WatchConfig contains file watcher settings.
type WatchConfig struct {
	// Paths are directories watched for changes.
	Paths []string `mapstructure:"paths"`

	// Ignore contains path substrings excluded from watching.
	Ignore []string `mapstructure:"ignore"`

	// DebounceMillis is the quiet period before a change is reported.
	DebounceMillis int `mapstructure:"debounceMillis"`
}

// RenderConfig contains HTML serialization settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `mapstructure:"pretty"`

	// Indent is the string used per indentation level.
	Indent string `mapstructure:"indent"`
}

// PageConfig contains document scaffolding defaults.
type PageConfig struct {
	// Lang is the html element's lang attribute.
	Lang string `mapstructure:"lang"`

	// Head holds raw markup fragments added to every page's head.
	Head []string `mapstructure:"head"`
}

// PublishConfig contains artifact publishing settings.
type PublishConfig struct {
	// Backend selects the publish destination: "disk" or "s3".
	Backend string `mapstructure:"backend"`

	// Disk configures the disk backend.
	Disk DiskConfig `mapstructure:"disk"`

	// S3 configures the S3 backend.
	S3 S3Config `mapstructure:"s3"`
}

// DiskConfig contains disk publishing settings.
type DiskConfig struct {
	// Dir is the directory artifacts are written to.
	Dir string `mapstructure:"dir"`
}

// S3Config contains S3 publishing settings.
type S3Config struct {
	// Bucket is the destination bucket name.
	Bucket string `mapstructure:"bucket"`

	// Region is the bucket's AWS region.
	Region string `mapstructure:"region"`

	// Prefix is prepended to every object key.
	Prefix string `mapstructure:"prefix"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Documents: DefaultDocuments,
		Output:    DefaultOutput,
		Assets:    DefaultAssets,
		Server: ServerConfig{
			Host:      DefaultHost,
			Port:      DefaultPort,
			HotReload: true,
		},
		Watch: WatchConfig{
			Paths:          []string{DefaultDocuments},
			DebounceMillis: 100,
		},
		Render: RenderConfig{
			Pretty: true,
			Indent: "  ",
		},
		Page: PageConfig{
			Lang: "en",
		},
		Publish: PublishConfig{
			Backend: "disk",
			Disk:    DiskConfig{Dir: DefaultOutput},
		},
	}
}

// Load reads configuration from blueprint.yaml in the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No blueprint.yaml found in " + filepath.Dir(path)).
				WithSuggestion("Create a blueprint.yaml in your project root")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	cfg.configPath = path
	return cfg, nil
}

// Parse decodes configuration from raw YAML and applies defaults.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse blueprint.yaml: " + err.Error()).
			WithSuggestion("Check that blueprint.yaml is valid YAML")
	}

	cfg := New()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.New("E120").
			WithDetail("Invalid blueprint.yaml: " + err.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Documents == "" {
		c.Documents = DefaultDocuments
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Assets == "" {
		c.Assets = DefaultAssets
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if len(c.Watch.Paths) == 0 {
		c.Watch.Paths = []string{c.Documents}
	}
	if c.Watch.DebounceMillis <= 0 {
		c.Watch.DebounceMillis = 100
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Page.Lang == "" {
		c.Page.Lang = "en"
	}
	if c.Publish.Backend == "" {
		c.Publish.Backend = "disk"
	}
	if c.Publish.Disk.Dir == "" {
		c.Publish.Disk.Dir = c.Output
	}
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535")
	}
	switch c.Publish.Backend {
	case "disk", "s3":
	default:
		return errors.New("E062").
			WithDetail("Backend must be \"disk\" or \"s3\", got " + c.Publish.Backend)
	}
	if c.Publish.Backend == "s3" && c.Publish.S3.Bucket == "" {
		return errors.New("E121").
			WithDetail("publish.s3.bucket is required when the s3 backend is selected")
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// ServerAddress returns the address string for the preview server.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerURL returns the full URL for the preview server.
func (c *Config) ServerURL() string {
	return "http://" + c.ServerAddress()
}

// DocumentsPath returns the absolute path to the documents directory.
func (c *Config) DocumentsPath() string {
	return c.resolve(c.Documents)
}

// OutputPath returns the absolute path to the output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// AssetsPath returns the absolute path to the assets directory.
func (c *Config) AssetsPath() string {
	return c.resolve(c.Assets)
}

// WatchPaths returns the absolute paths of the watched directories.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Watch.Paths))
	for _, p := range c.Watch.Paths {
		paths = append(paths, c.resolve(p))
	}
	return paths
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists reports whether blueprint.yaml exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing blueprint.yaml, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No blueprint.yaml found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
