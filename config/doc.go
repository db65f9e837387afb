// Package config resolves the sat subcommand's command-line flags
// into a single immutable RunConfig, the same
// way core.NewGraph resolves a GraphOption slice into a Graph: zero
// value defaults plus functional options, applied once at startup.
package config
