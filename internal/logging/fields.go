// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Render fields.
	FieldFormat   = "format"
	FieldJobs     = "jobs"
	FieldBlocks   = "blocks"
	FieldBytes    = "bytes"
	FieldLanguage = "language"
	FieldWidth    = "width"
	FieldStyle    = "style"

	// Parse failure fields.
	FieldRule   = "rule"
	FieldLine   = "line"
	FieldColumn = "column"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesRendered   = "files_rendered"
	FieldFilesFailed     = "files_failed"
	FieldFilesChanged    = "files_changed"
	FieldFilesWritten    = "files_written"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
