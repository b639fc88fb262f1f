package Utils

import (
	"os"
	"os/signal"
	"syscall"
)

func Hang() {

	SignalChan := make(chan os.Signal, 1)

	signal.Notify(SignalChan, syscall.SIGINT, syscall.SIGTERM) // Listens for termination signals

	<-SignalChan // Blocks until a signal is received

}

// GetNestedValue walks a decoded JSON structure by successive map keys, returning the value and whether the full path exists.
func GetNestedValue(Input any, Keys ...string) (any, bool) {

	Current := Input

	for _, Key := range Keys {

		CurrentMap, CurrentMapOK := Current.(map[string]interface{})

		if !CurrentMapOK {

			return nil, false

		}

		Value, ValueExists := CurrentMap[Key]

		if !ValueExists {

			return nil, false

		}

		Current = Value

	}

	return Current, true

}
