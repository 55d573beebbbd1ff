// Package cli wires the veitch command line: cobra commands on top of a
// koanf configuration layer.
//
// Configuration merges, lowest priority first: built-in defaults, an
// optional veitch.yaml in the working directory, VEITCH_-prefixed
// environment variables, then command-line flags. Keys: marker,
// no_color.
//
// Groups are always supplied by the caller (--group flags): the
// minimizer is an external collaborator and the CLI renders whatever
// groupings it is handed, exactly like the library core.
package cli
