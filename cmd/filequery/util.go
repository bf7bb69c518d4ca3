package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/ivoronin/filequery"
)

// setupLogger applies level and format to l. Logs go to stderr so stdout
// stays a clean path list.
func setupLogger(l *logrus.Logger, level string, json bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)
	l.SetOutput(os.Stderr)

	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// printPaths writes one path per line. In long mode each line is prefixed
// with the humanized size; base is joined to relative paths for the stat.
func printPaths(w io.Writer, paths []string, base string, long bool) error {
	for _, p := range paths {
		if !long {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
			continue
		}

		size := "-"
		if info, err := os.Stat(filepath.Join(base, p)); err == nil && !info.IsDir() {
			size = humanize.IBytes(uint64(info.Size()))
		}
		if _, err := fmt.Fprintf(w, "%10s  %s\n", size, p); err != nil {
			return err
		}
	}
	return nil
}

// printTypes writes "name: ext, ext, ..." lines in name order.
func printTypes(w io.Writer, table filequery.FileTypes) error {
	for _, name := range table.Names() {
		exts, _ := table.Extensions(name)
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, strings.Join(exts, ", ")); err != nil {
			return err
		}
	}
	return nil
}
