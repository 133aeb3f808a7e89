// Package config loads runtime settings for the GophDrive CLI.
//
// Sources are applied in order, later ones winning: built-in defaults, a
// JSON file named via -c/-config, then command-line flags. The auth
// transport is a deployment-time decision validated at load; "bearer" and
// "cookie" are the only accepted values and they are never combined.
package config
