// Package plan builds collection trees from declarative plan files.
//
// A plan node with children (or without a kind) becomes a
// collection.Collection; a node with a kind becomes a leaf task created by the
// factory registered for that kind. Plans are written in YAML (JSON is
// accepted as YAML) or TOML and validated against an embedded JSON schema
// before anything is built.
package plan
