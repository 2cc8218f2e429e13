// Package config loads snippet.Generator settings from JSON or YAML files
// and applies an environment-variable overlay on top, mirroring the
// file-plus-env layering idiom used throughout the rest of the stack.
//
// # JSON
//
//	{
//	  "pre_match": "<em>",
//	  "post_match": "</em>",
//	  "inter_snippet": " ... ",
//	  "context_length": 8,
//	  "cjk_mode": "ngram",
//	  "use_stemmer": true
//	}
//
// # YAML
//
//	pre_match: "<em>"
//	post_match: "</em>"
//	inter_snippet: " ... "
//	context_length: 8
//	cjk_mode: ngram
//	use_stemmer: true
//
// # Environment overlay
//
// Any field may be overridden at load time by setting
// SNIPPETGEN_<FIELD_NAME> (e.g. SNIPPETGEN_CONTEXT_LENGTH=3,
// SNIPPETGEN_CJK_MODE=word). The overlay is read via Viper, so nested
// future fields would follow the same SNIPPETGEN_ prefix and
// underscore-delimited path convention.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/adalundhe/snippetgen/internal/cjk"
	"github.com/adalundhe/snippetgen/snippet"
)

// EnvPrefix is the prefix consulted for the environment-variable overlay.
const EnvPrefix = "SNIPPETGEN"

// Config mirrors the constructor options exposed by snippet.Option. Zero
// values are never written over a default: Loader always starts from
// Default() and only overwrites fields the source actually set.
type Config struct {
	PreMatch      string `json:"pre_match,omitempty" yaml:"pre_match,omitempty"`
	PostMatch     string `json:"post_match,omitempty" yaml:"post_match,omitempty"`
	InterSnippet  string `json:"inter_snippet,omitempty" yaml:"inter_snippet,omitempty"`
	ContextLength *int   `json:"context_length,omitempty" yaml:"context_length,omitempty"`
	CJKMode       string `json:"cjk_mode,omitempty" yaml:"cjk_mode,omitempty"`
	UseStemmer    *bool  `json:"use_stemmer,omitempty" yaml:"use_stemmer,omitempty"`
}

// Default returns the configuration matching the snippet package's own
// defaults, so that a loader with no file and no environment overrides
// produces a Generator indistinguishable from snippet.New().
func Default() *Config {
	length := snippet.DefaultContextLength()
	useStemmer := true
	return &Config{
		PreMatch:      snippet.DefaultPreMatch(),
		PostMatch:     snippet.DefaultPostMatch(),
		InterSnippet:  snippet.DefaultInterSnippet(),
		ContextLength: &length,
		CJKMode:       cjk.Disabled.String(),
		UseStemmer:    &useStemmer,
	}
}

// Validate checks field-level constraints that cannot be expressed in the
// struct tags alone.
func (c *Config) Validate() error {
	if c.ContextLength != nil && *c.ContextLength < 0 {
		return fmt.Errorf("%w: context_length must be non-negative, got %d", ErrInvalidValue, *c.ContextLength)
	}
	if c.CJKMode != "" {
		if _, err := cjk.ParseMode(c.CJKMode); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	}
	return nil
}

// Options converts the configuration into snippet.Option values, to be
// passed to snippet.New. The stemmer itself (stemmer.Porter) is wired in
// by the caller when UseStemmer is true, since config intentionally has
// no dependency on the stemmer package.
func (c *Config) Options() ([]snippet.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var opts []snippet.Option
	if c.PreMatch != "" {
		opts = append(opts, snippet.WithPreMatch(c.PreMatch))
	}
	if c.PostMatch != "" {
		opts = append(opts, snippet.WithPostMatch(c.PostMatch))
	}
	if c.InterSnippet != "" {
		opts = append(opts, snippet.WithInterSnippet(c.InterSnippet))
	}
	if c.ContextLength != nil {
		opts = append(opts, snippet.WithContextLength(*c.ContextLength))
	}
	if c.CJKMode != "" {
		mode, err := cjk.ParseMode(c.CJKMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, snippet.WithCJKMode(mode))
	}
	return opts, nil
}

// ErrInvalidValue wraps every validation failure raised by Validate.
var ErrInvalidValue = fmt.Errorf("config: invalid value")

// Loader loads a Config from a file or byte slice, merges it over the
// package defaults, and applies the SNIPPETGEN_ environment overlay. A
// Loader is safe for concurrent reads of Current after a Load call, but
// Load itself is not safe to call concurrently with other Load calls.
type Loader struct {
	mu     sync.RWMutex
	config *Config
	v      *viper.Viper
}

// NewLoader returns a Loader holding the package defaults.
func NewLoader() *Loader {
	return &Loader{
		config: Default(),
		v:      newViper(),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadFromFile loads configuration from a JSON or YAML file, selected by
// extension (.yaml/.yml for YAML, anything else as JSON). A missing file
// is not an error: the loader falls back to defaults plus any
// environment overlay.
func (l *Loader) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l.apply(Default())
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	format := "json"
	if ext := strings.ToLower(path[strings.LastIndex(path, ".")+1:]); ext == "yaml" || ext == "yml" {
		format = "yaml"
	}
	return l.LoadFromBytes(data, format)
}

// LoadFromBytes loads configuration from raw JSON or YAML bytes. format
// must be "json" or "yaml".
func (l *Loader) LoadFromBytes(data []byte, format string) error {
	cfg := Default()
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse yaml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse json: %w", err)
		}
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidValue, format)
	}
	return l.apply(cfg)
}

func (l *Loader) apply(cfg *Config) error {
	merged := mergeWithDefaults(cfg)
	applyEnvOverlay(l.v, merged)
	if err := merged.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	l.config = merged
	l.mu.Unlock()
	return nil
}

// mergeWithDefaults fills any field left unset in cfg with the package
// default, so a partial file never disables fields it never mentioned.
func mergeWithDefaults(cfg *Config) *Config {
	d := Default()
	if cfg.PreMatch == "" {
		cfg.PreMatch = d.PreMatch
	}
	if cfg.PostMatch == "" {
		cfg.PostMatch = d.PostMatch
	}
	if cfg.InterSnippet == "" {
		cfg.InterSnippet = d.InterSnippet
	}
	if cfg.ContextLength == nil {
		cfg.ContextLength = d.ContextLength
	}
	if cfg.CJKMode == "" {
		cfg.CJKMode = d.CJKMode
	}
	if cfg.UseStemmer == nil {
		cfg.UseStemmer = d.UseStemmer
	}
	return cfg
}

// applyEnvOverlay overwrites any field whose corresponding
// SNIPPETGEN_<FIELD> variable is set in the environment.
func applyEnvOverlay(v *viper.Viper, cfg *Config) {
	bind := []string{"pre_match", "post_match", "inter_snippet", "context_length", "cjk_mode", "use_stemmer"}
	for _, key := range bind {
		_ = v.BindEnv(key)
	}
	if v.IsSet("pre_match") {
		cfg.PreMatch = v.GetString("pre_match")
	}
	if v.IsSet("post_match") {
		cfg.PostMatch = v.GetString("post_match")
	}
	if v.IsSet("inter_snippet") {
		cfg.InterSnippet = v.GetString("inter_snippet")
	}
	if v.IsSet("context_length") {
		n := v.GetInt("context_length")
		cfg.ContextLength = &n
	}
	if v.IsSet("cjk_mode") {
		cfg.CJKMode = v.GetString("cjk_mode")
	}
	if v.IsSet("use_stemmer") {
		b := v.GetBool("use_stemmer")
		cfg.UseStemmer = &b
	}
}

// Current returns the most recently loaded configuration.
func (l *Loader) Current() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// Reset discards any loaded configuration, returning the loader to
// defaults plus the current environment overlay.
func (l *Loader) Reset() error {
	return l.apply(Default())
}
