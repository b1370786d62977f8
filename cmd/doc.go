// Package cmd defines the Cobra command tree for the application.
// Each lifecycle action is a subcommand with a thin RunE delegating to the
// lifecycle service; invocation without a recognized command prints usage to
// stderr and exits non-zero.
package cmd
