package mapfs

// Exit codes returned by the mapfs CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unclassified failure.
	ExitGeneralError = 1

	// ExitUsageError indicates invalid arguments or flags.
	ExitUsageError = 2

	// ExitPanic indicates a panic or unexpected system error.
	ExitPanic = 3

	// ExitConfigError indicates invalid configuration.
	ExitConfigError = 10

	// ExitConnectionError indicates a backing store connection failure.
	ExitConnectionError = 11

	// ExitFlushError indicates the store could not commit pending changes.
	ExitFlushError = 12

	// ExitStoreCorrupt indicates an undecodable entry in the backing store.
	ExitStoreCorrupt = 13
)
