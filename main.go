// Actual Alarm - a wake-up alarm that makes you prove you are awake.
package main

import (
	"os"

	"github.com/loganlabb-arch/Actual-alarm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
