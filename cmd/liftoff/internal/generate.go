package internal

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goplus/liftoff/internal/config"
	"github.com/goplus/liftoff/internal/files"
	"github.com/goplus/liftoff/internal/generate"
	"github.com/goplus/liftoff/internal/tasks"
	"github.com/goplus/liftoff/mod/module"
	"github.com/goplus/liftoff/mod/versions"
	"github.com/goplus/liftoff/platform"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	config      string
	output      string
	lock        string
	platforms   []string
	parallelism int
	dryRun      bool
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the build files of the selected platforms",
	Long: `Generate resolves the latest versions of every platform dependency and writes
the build descriptors, templated files and settings of the selected platforms.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), genOpts, cmd.OutOrStdout())
	},
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVarP(&genOpts.config, "config", "c", config.DefaultFile, "Configuration file")
	flags.StringVarP(&genOpts.output, "output", "o", "", "Output path (directory or .zip file); defaults to the project destination")
	flags.StringVar(&genOpts.lock, "lock", "", "Versions file to seed resolution from and update")
	flags.StringSliceVarP(&genOpts.platforms, "platforms", "p", nil, "Platforms to generate, overriding the configuration")
	flags.IntVarP(&genOpts.parallelism, "parallelism", "j", 0, "Number of platforms generated at once")
	flags.BoolVar(&genOpts.dryRun, "dry-run", false, "Render everything without writing files")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(ctx context.Context, opts generateOptions, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if len(opts.platforms) > 0 {
		cfg.Platforms = opts.platforms
	}
	if opts.parallelism > 0 {
		cfg.Generation.Parallelism = opts.parallelism
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	descriptors, err := platform.Builtin().Select(cfg.Platforms...)
	if err != nil {
		return err
	}

	seed, err := readLock(opts.lock)
	if err != nil {
		return err
	}
	resolvers, err := generate.NewResolvers(cfg.Endpoints(), seed)
	if err != nil {
		return err
	}

	dest := opts.output
	if dest == "" {
		dest = cfg.Project.Destination
	}
	if dest == "" {
		dest = "."
	}
	// Zip output is generated into a temp workspace first
	dir := dest
	if isZip(dest) {
		tmpDir, err := os.MkdirTemp("", "liftoff-*")
		if err != nil {
			return fmt.Errorf("failed to create temp workspace: %w", err)
		}
		defer os.RemoveAll(tmpDir)
		dir = tmpDir
	}

	agg := tasks.NewAggregator()
	c := &generate.Context{
		Project: generate.Project{
			Name:        cfg.Project.Name,
			Package:     cfg.Project.Package,
			Destination: strings.TrimSuffix(dest, ".zip"),
			Reflective:  cfg.Project.Reflective,
		},
		Resolvers:   resolvers,
		Tasks:       agg,
		Emitter:     files.NewEmitter(platform.Assets(), dir),
		Parallelism: cfg.Generation.Parallelism,
		DryRun:      opts.dryRun,
	}
	result, err := generate.Run(ctx, c, descriptors)
	if err != nil {
		return err
	}

	if opts.dryRun {
		printDryRun(w, result)
	} else {
		if isZip(dest) {
			if err := zipDir(dir, dest); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}
		}
		fmt.Fprintf(w, "Generated %d platforms in %s\n", len(result.Platforms), dest)
	}
	if opts.lock != "" && !opts.dryRun {
		if err := writeLock(opts.lock, c.Versions()); err != nil {
			return err
		}
	}
	printTasks(w, descriptors, agg)
	return nil
}

func isZip(path string) bool {
	return strings.HasSuffix(path, ".zip")
}

// readLock returns the versions recorded in path. An empty path or a
// missing file seeds nothing.
func readLock(path string) (map[module.Coordinate]string, error) {
	if path == "" {
		return nil, nil
	}
	snap, err := versions.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read lock: %w", err)
	}
	return snap.Map()
}

func writeLock(path string, resolved map[module.Coordinate]string) error {
	data, err := versions.FromMap(resolved).Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func printDryRun(w io.Writer, result *generate.Result) {
	for _, out := range result.Platforms {
		fmt.Fprintf(w, "%s/build.gradle\n", out.ID)
		for _, f := range out.Files {
			fmt.Fprintf(w, "%s\n", f)
		}
	}
	fmt.Fprintf(w, "gradle.properties:\n%s", result.Properties.Render())
}

// printTasks writes the task descriptions of every platform in generation order.
func printTasks(w io.Writer, descriptors []platform.Descriptor, agg *tasks.Aggregator) {
	for _, d := range descriptors {
		descs := agg.AllFor(d.ID)
		if len(descs) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", d.ID)
		for _, desc := range descs {
			fmt.Fprintf(w, "  %s: %s\n", desc.Task, desc.Text)
		}
	}
}

// zipDir creates a zip archive at dest from the contents of srcDir.
func zipDir(srcDir, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	w := zip.NewWriter(f)
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		return addZipFile(w, path, filepath.ToSlash(rel))
	})
	if err == nil {
		err = w.Close()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func addZipFile(w *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	writer, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = io.Copy(writer, file)
	return err
}
