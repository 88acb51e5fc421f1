// Package config holds the user-tunable defaults of textutils, loaded from an
// optional YAML file and overridden by command-line flags.
package config
