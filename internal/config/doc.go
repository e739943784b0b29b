// Package config resolves a worker's startup configuration from CLI flags,
// environment variables, and an optional YAML file, in that precedence
// order (flags win, then env, then file, then built-in defaults).
//
// # Overview
//
// The original worker takes only --host/--port/--node-id on argparse and
// derives everything else (data directory, log path) from node_id by
// convention. This expands that into Load/Validate around a Config struct
// the way the teacher's CLI config helpers (getenv/mustGetenv) do for node
// startup, plus the file+env layering shape from the same lineage's
// 50-mini-service config loader, since the worker now also needs a
// configurable partition count and log level the original hardcodes.
package config
