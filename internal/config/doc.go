// Package config manages user-level settings stored at ~/.sampler/config.yaml.
// It loads the file and SAMPLER_* environment overrides through Viper and
// exposes the keys that drive provider discovery and logging.
package config
