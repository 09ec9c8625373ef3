package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rigelrozanski/thranch/quac"
	"github.com/spf13/cobra"

	"chordsheet/config"
	"chordsheet/internal/layout"
	"chordsheet/internal/parser"
	"chordsheet/internal/render"
	"chordsheet/internal/song"
	"chordsheet/internal/theory"
)

var (
	GenCmd = &cobra.Command{
		Use:   "gen [chart-file]",
		Short: "generate the pdf of a chord chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  genCmd,
	}

	quIDFlag      uint32
	columnsFlag   uint16
	modeFlag      string
	formatFlag    string
	transposeFlag int
	numbersFlag   bool
	outFlag       string
)

func init() {
	GenCmd.Flags().Uint32Var(
		&quIDFlag, "qu", 0,
		"load the chart from quac storage by id instead of a file")
	GenCmd.Flags().Uint16Var(
		&columnsFlag, "columns", 0,
		"number of columns to print song into (overrides config)")
	GenCmd.Flags().StringVar(
		&modeFlag, "mode", "",
		"display mode: full, chords, lyrics")
	GenCmd.Flags().StringVar(
		&formatFlag, "format", "",
		"force input dialect: chordpro or simple (default autodetect)")
	GenCmd.Flags().IntVar(
		&transposeFlag, "transpose", 0,
		"transpose by this many semitones before printing")
	GenCmd.Flags().BoolVar(
		&numbersFlag, "numbers", false,
		"print chords in nashville number notation")
	GenCmd.Flags().StringVarP(
		&outFlag, "out", "o", "",
		"output pdf path")
	RootCmd.AddCommand(GenCmd)
}

func genCmd(cmd *cobra.Command, args []string) error {
	text, err := loadChartText(args)
	if err != nil {
		return err
	}
	cfg := loadConfig()

	s, err := parseChart(text, cfg)
	if err != nil {
		return err
	}
	if transposeFlag != 0 {
		s = theory.TransposeSong(s, transposeFlag)
	}
	if numbersFlag {
		s = theory.SongToNumbers(s)
	}

	st := styleFromConfig(cfg)
	columns := cfg.Page.Columns
	if columnsFlag > 0 {
		columns = int(columnsFlag)
	}

	geo := render.PageGeometry(st, columns)
	flowed := layout.Flow(s, geo, render.Measurer(s, st))

	out := outFlag
	if out == "" {
		out = fmt.Sprintf("songsheet_%v.pdf", sanitizeFilename(s.Title))
	}
	if err := render.WritePDF(s, flowed, st, out); err != nil {
		return err
	}
	log.WithField("out", out).WithField("pages", flowed.PageCount).Info("PDF written")
	return nil
}

// loadChartText reads the chart source from a file argument or, with
// --qu, from quac storage by id.
func loadChartText(args []string) (string, error) {
	if quIDFlag > 0 {
		quac.Initialize(os.ExpandEnv("$HOME/.thranch_config"))
		content, found := quac.GetContentByID(quIDFlag)
		if !found {
			return "", fmt.Errorf("could not find anything under id: %v", quIDFlag)
		}
		return string(content), nil
	}
	if len(args) < 1 {
		return "", errors.New("provide a chart file or --qu id")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// parseChart runs the dispatch parser with config defaults, surfacing
// warnings in the log and the single parse error as a command error.
func parseChart(text string, cfg *config.Config) (*song.Song, error) {
	opts := parser.Options{
		DefaultKey:           cfg.Defaults.Key,
		DefaultTempo:         cfg.Defaults.Tempo,
		DefaultTimeSignature: cfg.Defaults.TimeSignature,
	}

	var res song.ParseResult
	if formatFlag != "" {
		res = parser.ParseAs(text, parser.Format(formatFlag), opts)
	} else {
		res = parser.Parse(text, opts)
	}
	if !res.Success {
		return nil, errors.New(res.Errors[0])
	}
	for _, w := range res.Warnings {
		log.Warn(w)
	}
	return res.Song, nil
}

func styleFromConfig(cfg *config.Config) render.Style {
	st := render.DefaultStyle()
	if cfg.Page.LyricFontPt > 0 {
		st.LyricFontPt = cfg.Page.LyricFontPt
	}
	if cfg.Page.ChordFontPt > 0 {
		st.ChordFontPt = cfg.Page.ChordFontPt
	}
	mode := cfg.Page.Mode
	if modeFlag != "" {
		mode = modeFlag
	}
	switch mode {
	case "chords":
		st.Mode = render.ModeChordsOnly
	case "lyrics":
		st.Mode = render.ModeLyricsOnly
	default:
		st.Mode = render.ModeFull
	}
	return st
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "untitled"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}
