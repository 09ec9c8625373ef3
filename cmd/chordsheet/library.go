package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chordsheet/internal/library"
)

var (
	LibraryCmd = &cobra.Command{
		Use:   "library",
		Short: "manage the stored song library",
	}

	librarySaveCmd = &cobra.Command{
		Use:   "save [chart-file]",
		Short: "save a chart into the library",
		Args:  cobra.ExactArgs(1),
		RunE:  libSave,
	}

	libraryListCmd = &cobra.Command{
		Use:   "list",
		Short: "list stored songs",
		Args:  cobra.NoArgs,
		RunE:  libList,
	}

	libraryShowCmd = &cobra.Command{
		Use:   "show [id]",
		Short: "print the stored source text of a song",
		Args:  cobra.ExactArgs(1),
		RunE:  libShow,
	}

	libraryUpdateCmd = &cobra.Command{
		Use:   "update [id] [chart-file]",
		Short: "replace the source text of a stored song",
		Args:  cobra.ExactArgs(2),
		RunE:  libUpdate,
	}

	libraryTrashCmd = &cobra.Command{
		Use:   "trash [id]",
		Short: "move a stored song to the trash",
		Args:  cobra.ExactArgs(1),
		RunE:  libTrash,
	}
)

func init() {
	LibraryCmd.AddCommand(librarySaveCmd)
	LibraryCmd.AddCommand(libraryListCmd)
	LibraryCmd.AddCommand(libraryShowCmd)
	LibraryCmd.AddCommand(libraryUpdateCmd)
	LibraryCmd.AddCommand(libraryTrashCmd)
	RootCmd.AddCommand(LibraryCmd)
}

func openLibrary() (*library.Library, error) {
	return library.New(loadConfig().Library.Dir, log)
}

func libSave(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	entry, err := lib.Save(string(content))
	if err != nil {
		return err
	}
	fmt.Println(entry.ID)
	return nil
}

func libList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	entries, err := lib.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s  %-30s %s\n", e.ID, e.Title, e.Artist)
	}
	return nil
}

func libShow(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	source, err := lib.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Print(source)
	return nil
}

func libUpdate(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	return lib.Update(args[0], string(content))
}

func libTrash(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	return lib.Trash(args[0])
}
