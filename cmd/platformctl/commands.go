package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/platformfs/pkg/platform"
)

func newResolveCommand(flags *globalFlags) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Print the path a data file is read from",
		Long: `Search the roots named by --scope in order and print the first existing path.
Scope tokens: w (writable), r (resources), s (settings), f (file as given).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range scope {
				if token != 'w' && token != 'r' && token != 's' && token != 'f' {
					return fmt.Errorf("unsupported scope token %q in %q", token, scope)
				}
			}

			p, err := loadPlatform(cmd, flags)
			if err != nil {
				return err
			}
			path, err := p.ReadPathForFile(args[0], scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", platform.DefaultSearchScope, "search scope")

	return cmd
}

func newListCommand(flags *globalFlags) *cobra.Command {
	var (
		ext       string
		glob      string
		recursive bool
		parallel  bool
	)

	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "List files in a directory",
		Long:  "List the entries of a directory, optionally filtered by extension or glob, or all regular files below it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			selected := 0
			for _, set := range []bool{ext != "", glob != "", recursive, parallel} {
				if set {
					selected++
				}
			}
			if selected > 1 {
				return errors.New("--ext, --glob, --recursive and --parallel are mutually exclusive")
			}
			if ext != "" && ext[0] != '.' {
				return fmt.Errorf("extension %q must start with a dot", ext)
			}

			p, err := loadPlatform(cmd, flags)
			if err != nil {
				return err
			}

			var files []string
			switch {
			case ext != "":
				files = p.GetFilesByExt(dir, ext)
			case glob != "":
				files, err = p.GetFilesByGlob(dir, glob)
			case recursive:
				files = p.GetFilesRecursively(dir)
			case parallel:
				files, err = p.WalkFilesParallel(cmd.Context(), dir)
			default:
				for _, f := range p.GetFilesByType(dir, platform.FileTypeRegular|platform.FileTypeDirectory) {
					name := f.Name
					if f.Type == platform.FileTypeDirectory {
						name += "/"
					}
					files = append(files, name)
				}
			}
			if err != nil {
				return err
			}

			sort.Strings(files)
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ext, "ext", "", "only entries with this extension, e.g. .mwm")
	cmd.Flags().StringVar(&glob, "glob", "", "only paths matching a glob, e.g. '**/*.mwm'")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "list regular files below the directory")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "like --recursive, walking with several goroutines")

	return cmd
}

func newRmTreeCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rmtree [directory]",
		Short: "Delete a directory tree",
		Long:  "Delete a directory and everything below it, continuing past failures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlatform(cmd, flags)
			if err != nil {
				return err
			}
			if !p.RmDirRecursively(args[0]) {
				return fmt.Errorf("failed to remove %s completely", args[0])
			}
			return nil
		},
	}
	return cmd
}

func newMkdirCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir [directory]",
		Short: "Create a directory unless it already exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlatform(cmd, flags)
			if err != nil {
				return err
			}
			if !p.MkDirChecked(args[0]) {
				return fmt.Errorf("failed to create directory %s", args[0])
			}
			return nil
		},
	}
	return cmd
}

func newDirsCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirs",
		Short: "Print the root directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlatform(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "writable:  %s\n", p.WritableDir())
			fmt.Fprintf(out, "resources: %s\n", p.ResourcesDir())
			fmt.Fprintf(out, "settings:  %s\n", p.SettingsDir())
			return nil
		},
	}
	return cmd
}

func newFontsCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Print the font files to load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlatform(cmd, flags)
			if err != nil {
				return err
			}
			for _, font := range p.FontNames() {
				fmt.Fprintln(cmd.OutOrStdout(), font)
			}
			return nil
		},
	}
	return cmd
}
