// Package config loads the shortpath command configuration.
//
// Sources, lowest priority first: built-in Defaults, an optional YAML file
// (--config or $SHORTPATH_CONFIG) and SHORTPATH_* environment variables such
// as SHORTPATH_SOLVER_ALGORITHM=worklist. Command-line flags are applied on
// top by the caller.
package config
