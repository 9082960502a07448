package cli

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/fstree/tree"
)

func newCopyCommand(state *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "copy SOURCE DESTINATION",
		Short: "Recursively copy a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return tree.Copy(args[0], args[1], state.opts...)
		},
	}
}

func newArchiveCommand(state *runtimeState) *cobra.Command {
	var (
		dir     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "archive SOURCE DESTINATION",
		Short: "Archive a file or directory with the platform archiver",
		Long: `Archive SOURCE into DESTINATION.

On Windows this runs "tar.exe -a -c -f DESTINATION SOURCE", elsewhere
"zip -r DESTINATION SOURCE". The command fails if the tool is not installed.
An existing DESTINATION is replaced once the tool succeeds.

With -C the tool runs in DIR, so SOURCE is resolved against DIR and stored
under that relative name. DESTINATION is still relative to the current
directory.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := slices.Clone(state.opts)
			if dir != "" {
				opts = append(opts, tree.WithWorkDir(dir))
			}
			if verbose {
				opts = append(opts, tree.WithToolOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
			}
			return tree.Archive(cmd.Context(), args[0], args[1], opts...)
		},
	}

	cmd.Flags().StringVarP(&dir, "directory", "C", "", "run the archiving tool in `DIR`")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the archiving tool's output")

	return cmd
}

func newHashCommand(state *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "hash PATH...",
		Short: "Print the content fingerprint of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher := tree.NewHasher(state.opts...)
			fingerprints := make([]tree.Fingerprint, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					fp, err := hasher.Hash(path)
					if err != nil {
						return err
					}
					fingerprints[i] = fp
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, path := range args {
				if _, err := fmt.Fprintf(out, "%s  %s\n", fingerprints[i], path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
