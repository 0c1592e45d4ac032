// Package types defines the Task record, field validation, configuration,
// and the standard error values shared by the taskman store, session,
// and CLI.
package types
