package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ivoronin/filequery"
)

// queryOptions holds CLI flags for the query command.
type queryOptions struct {
	recursive bool
	fileType  string
	extension string
	size      string
	folders   bool
	relative  bool
	long      bool
	parallel  bool
}

// newQueryCmd creates the query subcommand.
func newQueryCmd(a *app) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query DIRECTORY",
		Short: "List files matching the given criteria",
		Long: `Lists paths under DIRECTORY, optionally recursing, filtered by file type
or extension and by size.

Size expressions have the form "<operator> <amount> <unit>":
  operators: $gt, $eq, $lt
  units:     $BYTE, $KB, $MB, $GB (1024-based)

Examples:
  filequery query /media/movies -r -t video -s '$lt 1 $GB'
  filequery query . -e .go --relative`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := buildRequest(cmd.Flags(), args[0], opts)
			return runQuery(cmd.Context(), a, req, opts, cmd.OutOrStdout())
		},
	}

	// Bind flags to options
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().StringVarP(&opts.fileType, "type", "t", filequery.All, "File type category (see 'filequery types')")
	cmd.Flags().StringVarP(&opts.extension, "ext", "e", filequery.All, "Literal suffix or glob fragment, e.g. .txt or .{go,mod}")
	cmd.Flags().StringVarP(&opts.size, "size", "s", filequery.DefaultSizeQuery, "Size expression")
	cmd.Flags().BoolVar(&opts.folders, "folders", false, "Include directories in the output")
	cmd.Flags().BoolVar(&opts.relative, "relative", false, "Print paths relative to DIRECTORY")
	cmd.Flags().BoolVarP(&opts.long, "long", "l", false, "Print sizes next to paths")
	cmd.Flags().BoolVar(&opts.parallel, "parallel-walk", false, "Walk directories with parallel workers instead of a sequential glob")

	return cmd
}

// buildRequest sets only the fields whose flags were given, so unset flags
// fall back to the library defaults.
func buildRequest(flags *pflag.FlagSet, dir string, opts *queryOptions) filequery.Request {
	req := filequery.Request{Directory: filequery.Some(dir)}
	if flags.Changed("recursive") {
		req.IsRecursive = filequery.Some(opts.recursive)
	}
	if flags.Changed("type") {
		req.FileType = filequery.Some(opts.fileType)
	}
	if flags.Changed("ext") {
		req.Extension = filequery.Some(opts.extension)
	}
	if flags.Changed("size") {
		req.SizeQuery = filequery.Some(opts.size)
	}
	if flags.Changed("folders") {
		req.ReturnFolders = filequery.Some(opts.folders)
	}
	if flags.Changed("relative") {
		req.IncludeBaseDirectoryOnReturn = filequery.Some(!opts.relative)
	}
	return req
}

// runQuery executes the query and prints one path per line.
func runQuery(ctx context.Context, a *app, req filequery.Request, opts *queryOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	svcOpts := []filequery.Option{
		filequery.WithRegistry(filequery.DefaultFileTypes().Merge(a.cfg.FileTypes)),
		filequery.WithWorkers(a.cfg.Workers),
		filequery.WithProgress(a.cfg.Progress && !a.noProgress),
		filequery.WithLogger(a.logger),
	}
	if opts.parallel {
		svcOpts = append(svcOpts, filequery.WithGlobber(filequery.ParallelWalker(a.cfg.Workers)))
	}
	svc := filequery.New(svcOpts...)

	paths, err := svc.Query(ctx, req)
	if err != nil {
		return err
	}
	a.logger.WithField("count", len(paths)).Info("query complete")

	base := ""
	if opts.relative {
		base = req.Directory.Value()
	}
	return printPaths(out, paths, base, opts.long)
}

// newTypesCmd creates the types subcommand listing file-type categories.
func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List file type categories and their extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTypes(cmd.OutOrStdout(), filequery.DefaultFileTypes().Merge(a.cfg.FileTypes))
		},
	}
}

// reportError prints a command error to w.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
