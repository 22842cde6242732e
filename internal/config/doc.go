// Package config loads the vmsg application configuration using viper.
//
// The configuration file is config.yaml, searched in the working directory
// and then in the vmsg config directory (see package paths):
//
//	version: 1
//	output: text          # text, json or yaml
//	catalogs:             # composed in order, first wins
//	  - ./catalogs/app.yaml
//	  - ~/shared/messages.toml
//
// Every key can be set from the environment with a VMSG_ prefix, for
// example VMSG_OUTPUT=json or VMSG_CATALOGS=a.yaml,b.yaml.
//
// Relative catalog paths are resolved against the directory of the config
// file that listed them.
package config
