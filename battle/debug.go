package battle

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

// SetInternalLogger routes engine logging into logger. The engine is silent until this is called.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("battle")
}

func damageLogger() logr.Logger {
	return internalLogger.WithName("damage")
}

func resolveLogger() logr.Logger {
	return internalLogger.WithName("resolve")
}

func endOfTurnLogger() logr.Logger {
	return internalLogger.WithName("end_of_turn")
}

// Logger returns the engine logger with the given name appended, for packages built on top of battle.
func Logger(name string) logr.Logger {
	return internalLogger.WithName(name)
}
