package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zedseven/subtxt"
)

var rootCmd = &cobra.Command{
	Use:           "subtxt [flags] <image>",
	Short:         "Hide text in the transparent pixels of an image",
	Long:          "subtxt hides text files in the fully-transparent pixels of an image, and digs them back out later.",
	Version:       subtxt.Version(),
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolP("bytes", "b", false, "Report the available bytes in the image")
	rootCmd.Flags().StringP("input-text", "i", "", "Path to a text file to hide in the image")
	rootCmd.Flags().BoolP("print", "p", false, "Print the hidden text")
	rootCmd.Flags().StringP("output-text", "O", "", "Path to write the hidden text to")
	rootCmd.Flags().BoolP("all", "a", false, "Make all pixels visible")
	rootCmd.Flags().BoolP("ignore", "I", false, "Ignore the text length, truncating it if it does not fit")
	rootCmd.Flags().StringP("output", "o", "", "Path to write the output image to")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress step output")
	rootCmd.MarkFlagsMutuallyExclusive("ignore", "output-text")
}

func run(cmd *cobra.Command, args []string) error {
	reportCapacity, _ := cmd.Flags().GetBool("bytes")
	inputTextPath, _ := cmd.Flags().GetString("input-text")
	printText, _ := cmd.Flags().GetBool("print")
	outputTextPath, _ := cmd.Flags().GetString("output-text")
	maxAlpha, _ := cmd.Flags().GetBool("all")
	ignoreOverflow, _ := cmd.Flags().GetBool("ignore")
	outputImagePath, _ := cmd.Flags().GetString("output")
	quiet, _ := cmd.Flags().GetBool("quiet")

	outputLevel := subtxt.OutputSteps
	if quiet {
		outputLevel = subtxt.OutputNothing
	}

	config := &subtxt.Config{
		ImagePath:       args[0],
		InputTextPath:   inputTextPath,
		OutputTextPath:  outputTextPath,
		OutputImagePath: outputImagePath,
		PrintText:       printText,
		ReportCapacity:  reportCapacity,
		MaxAlpha:        maxAlpha,
		IgnoreOverflow:  ignoreOverflow,
	}

	return subtxt.Process(config, outputLevel)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
