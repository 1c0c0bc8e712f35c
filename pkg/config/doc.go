// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each configuration type is parsed exactly once per process and cached, so
// repeated Load calls for the same type are cheap and consistent.
package config
