package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chordsheet/internal/pdfimport"
)

var (
	ImportCmd = &cobra.Command{
		Use:   "import [pdf-file]",
		Short: "extract chart text from a pdf via pdftotext",
		Args:  cobra.ExactArgs(1),
		RunE:  importCmd,
	}

	importSaveFlag bool
)

func init() {
	ImportCmd.Flags().BoolVar(
		&importSaveFlag, "save", false,
		"save the extracted text straight into the library")
	RootCmd.AddCommand(ImportCmd)
}

func importCmd(cmd *cobra.Command, args []string) error {
	text, err := pdfimport.Convert(cmd.Context(), args[0], log)
	if err != nil {
		return err
	}

	if importSaveFlag {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		entry, err := lib.Save(text)
		if err != nil {
			return err
		}
		fmt.Println(entry.ID)
		return nil
	}

	fmt.Print(text)
	return nil
}
