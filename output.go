package subtxt

import "fmt"

// OutputLevel determines how much console output an operation produces.
type OutputLevel int

const (
	OutputNothing OutputLevel = iota // Print nothing at all.
	OutputSteps                      // Print the broad steps of the operation.
	OutputInfo                       // Print additional info about the image and data.
	OutputDebug                      // Print everything - mostly for development.
)

func printlnLvl(level, required OutputLevel, a ...interface{}) {
	if level >= required {
		fmt.Println(a...)
	}
}
