package main

// Exit codes shared by all bibsort commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (bad arguments, I/O failure)
	ExitConfigError = 2 // Configuration error (unreadable or invalid config file)
	ExitDataError   = 3 // Data error (parse failure, duplicate keys or DOIs)
)
