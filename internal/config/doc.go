// Package config manages user-level settings stored at ~/.leetkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default scaffold root and the default layout file.
package config
