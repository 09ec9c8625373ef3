package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var WatchCmd = &cobra.Command{
	Use:   "watch [chart-file]",
	Short: "regenerate the pdf whenever the chart file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  watchCmd,
}

func init() {
	WatchCmd.Flags().StringVarP(
		&outFlag, "out", "o", "",
		"output pdf path")
	RootCmd.AddCommand(WatchCmd)
}

func watchCmd(cmd *cobra.Command, args []string) error {
	path := args[0]

	// generate once up front so the pdf exists before the first edit
	if err := genCmd(cmd, args); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	log.WithField("path", path).Info("Watching for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			time.Sleep(100 * time.Millisecond) // let the editor finish writing
			if err := genCmd(cmd, args); err != nil {
				log.WithError(err).Error("Regeneration failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Error("Watcher error")

		case <-stop:
			return nil
		}
	}
}
