package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"chordsheet/internal/parser"
	"chordsheet/internal/song"
	"chordsheet/internal/theory"
)

var (
	TransposeCmd = &cobra.Command{
		Use:   "transpose [chart-file] [semitones]",
		Short: "transpose a chart and print it as chordpro text",
		Args:  cobra.ExactArgs(2),
		RunE:  transposeCmd,
	}

	NumbersCmd = &cobra.Command{
		Use:   "numbers [chart-file]",
		Short: "rewrite a chart in nashville number notation",
		Args:  cobra.ExactArgs(1),
		RunE:  numbersCmd,
	}

	LettersCmd = &cobra.Command{
		Use:   "letters [chart-file]",
		Short: "rewrite a nashville number chart in letter notation",
		Args:  cobra.ExactArgs(1),
		RunE:  lettersCmd,
	}

	DetectCmd = &cobra.Command{
		Use:   "detect [chart-file]",
		Short: "print the detected chart dialect",
		Args:  cobra.ExactArgs(1),
		RunE:  detectCmd,
	}
)

func init() {
	RootCmd.AddCommand(TransposeCmd)
	RootCmd.AddCommand(NumbersCmd)
	RootCmd.AddCommand(LettersCmd)
	RootCmd.AddCommand(DetectCmd)
}

func transposeCmd(cmd *cobra.Command, args []string) error {
	semitones, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("semitones must be an integer: %w", err)
	}

	s, err := parseChartFile(args[0])
	if err != nil {
		return err
	}
	fmt.Print(parser.FormatChordProText(theory.TransposeSong(s, semitones)))
	return nil
}

func numbersCmd(cmd *cobra.Command, args []string) error {
	s, err := parseChartFile(args[0])
	if err != nil {
		return err
	}
	fmt.Print(parser.FormatChordProText(theory.SongToNumbers(s)))
	return nil
}

func lettersCmd(cmd *cobra.Command, args []string) error {
	s, err := parseChartFile(args[0])
	if err != nil {
		return err
	}
	fmt.Print(parser.FormatChordProText(theory.SongToLetters(s)))
	return nil
}

func detectCmd(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	fmt.Println(string(parser.DetectFormat(string(content))))
	return nil
}

func parseChartFile(path string) (*song.Song, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseChart(string(content), loadConfig())
}
