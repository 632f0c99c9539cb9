package subtxt

import (
	"fmt"
	"os"
)

// Config stores the configuration options for a full processing run.
type Config struct {
	// ImagePath is the path on disk to a supported image.
	ImagePath string
	// InputTextPath is the path on disk to a text file to hide, or empty.
	InputTextPath string
	// OutputTextPath is the path on disk to write extracted text to, or empty.
	OutputTextPath string
	// OutputImagePath is the path on disk to write the resulting image to, or empty.
	OutputImagePath string
	// PrintText is whether to print the hidden text to the console.
	PrintText bool
	// ReportCapacity is whether to report how many bytes the image can hold.
	ReportCapacity bool
	// MaxAlpha is whether to force every pixel opaque before saving.
	MaxAlpha bool
	// IgnoreOverflow is whether to truncate silently when the text does not fit.
	IgnoreOverflow bool
}

// Process runs the full pipeline over one image. The stage order is a hard
// contract: capacity is reported on the untouched buffer, extraction runs
// before MaxAlpha erases the carrier markers, and the image is saved last.
// The first error halts the run; later stages do not execute.
func Process(config *Config, outputLevel OutputLevel) error {
	// Input validation
	if len(config.ImagePath) <= 0 {
		return &InvalidFormatError{"ImagePath is empty."}
	}

	printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Loading the image from '%v'...", config.ImagePath))
	buf, err := LoadImage(config.ImagePath, outputLevel)
	if err != nil {
		printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Unable to load the image at '%v'!", config.ImagePath))
		return err
	}

	printlnLvl(outputLevel, OutputInfo,
		fmt.Sprintf("Image info:\n\tDimensions: %dx%d px\n\tColour model: %v", buf.W, buf.H, buf.Model))

	if config.ReportCapacity {
		if n, ok := buf.AvailableBytes(); ok {
			fmt.Printf("%d bytes available in the image\n", n)
		} else {
			fmt.Println("there are no available bytes in the image")
		}
	}

	if len(config.InputTextPath) > 0 {
		printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Hiding the text from '%v' in the image...", config.InputTextPath))
		text, err := os.ReadFile(config.InputTextPath)
		if err != nil {
			printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Unable to read the file at '%v'.", config.InputTextPath))
			return err
		}
		if err = buf.Hide(text, config.IgnoreOverflow); err != nil {
			return err
		}
	}

	if config.PrintText {
		text, err := buf.DigText()
		if err != nil {
			return err
		}
		fmt.Printf("%v\n\n", text)
	}

	if len(config.OutputTextPath) > 0 {
		printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Writing the hidden text to '%v'...", config.OutputTextPath))
		text, err := buf.DigText()
		if err != nil {
			return err
		}
		if err = os.WriteFile(config.OutputTextPath, []byte(text), 0644); err != nil {
			return err
		}
	}

	if config.MaxAlpha {
		printlnLvl(outputLevel, OutputSteps, "Forcing every pixel opaque...")
		buf.MaxAlpha()
	}

	if len(config.OutputImagePath) > 0 {
		printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Writing the image to '%v' now...", config.OutputImagePath))
		if err = WriteImage(buf, config.OutputImagePath, len(config.InputTextPath) > 0, outputLevel); err != nil {
			printlnLvl(outputLevel, OutputSteps, "An error occurred while writing to the final image.")
			return err
		}
	}

	printlnLvl(outputLevel, OutputSteps, "All done! c:")

	return nil
}
