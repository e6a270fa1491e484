// Package cli wires together the Cobra command tree for the stdguard binary.
//
// It defines the root command and all subcommands (serve, extract, push,
// rules, version), binds flags, reads configuration, and returns
// deterministic exit codes for scripting.
package cli
