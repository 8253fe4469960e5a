// Package config loads the optional YAML configuration file.
//
// The file is found through the --config flag or the RESAVIOR_CONFIG
// environment variable. Every key is optional and command line flags win
// over file values.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"re-savior/rsave/rcollection"
	"re-savior/rsave/rcrypt"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rhash"
)

const EnvConfig = "RESAVIOR_CONFIG"

type (
	Config struct {
		// NamesFile is an extra name catalog, one name per line, merged
		// with the embedded one.
		NamesFile string `yaml:"names_file"`
		Lenient   bool   `yaml:"lenient"`
		// LogLevel is a zap level name: debug, info, warn, error.
		LogLevel string `yaml:"log_level"`
		// Key replaces the default encryption key.
		Key     string                  `yaml:"key"`
		Schemas map[string]SchemaConfig `yaml:"schemas"`
	}
	// SchemaConfig names the struct type and field types used by the insert
	// command.
	SchemaConfig struct {
		Type   string        `yaml:"type"`
		Fields []FieldConfig `yaml:"fields"`
	}
	FieldConfig struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}
)

func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Key:      rcrypt.Key,
		Schemas:  map[string]SchemaConfig{},
	}
}

// LoadFile reads path over the defaults. An empty path gives the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config.LoadFile error")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, `config.LoadFile error: parse "%s"`, path)
	}
	if cfg.Key == "" {
		return nil, errors.Errorf(`config.LoadFile error: "%s" sets an empty key`, path)
	}
	return cfg, nil
}

// Registry builds the name registry from the embedded catalog and, when
// set, NamesFile.
func (c *Config) Registry() (*rhash.Registry, error) {
	catalog := rhash.DefaultCatalog()
	if c.NamesFile == "" {
		return rhash.NewRegistry(catalog), nil
	}
	file, err := os.Open(c.NamesFile)
	if err != nil {
		return nil, errors.Wrap(err, "Config.Registry error")
	}
	defer file.Close()
	extra, err := rhash.ParseCatalog(file)
	if err != nil {
		return nil, errors.Wrapf(err, `Config.Registry error: read "%s"`, c.NamesFile)
	}
	return rhash.NewRegistry(append(catalog, extra...)), nil
}

func (c *Config) Framer() (*rcrypt.Framer, error) {
	return rcrypt.NewFramer([]byte(c.Key))
}

// Schema converts the named schema into its codec form.
func (c *Config) Schema(name string) (*rcollection.Schema, error) {
	schemaConfig, ok := c.Schemas[name]
	if !ok {
		return nil, errors.Errorf(`Config.Schema: no schema "%s"`, name)
	}
	schema := rcollection.Schema{
		TypeHash: rhash.HashString(schemaConfig.Type),
		Fields:   make([]rcollection.FieldSpec, 0, len(schemaConfig.Fields)),
	}
	for _, field := range schemaConfig.Fields {
		objectType, err := rentry.ParseObjectType(field.Type)
		if err != nil {
			return nil, errors.Wrapf(err, `Config.Schema error: schema "%s" field "%s"`, name, field.Name)
		}
		schema.Fields = append(schema.Fields, rcollection.FieldSpec{Name: field.Name, Type: objectType})
	}
	return &schema, nil
}
