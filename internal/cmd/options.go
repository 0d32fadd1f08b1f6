package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dendrascience/fsaudit/config"
	"github.com/dendrascience/fsaudit/fstree"
	"github.com/dendrascience/fsaudit/report"
)

// options is shared by the root command and all subcommands.
type options struct {
	cfg        config.Config
	configPath string
}

func newOptions() *options {
	return &options{cfg: config.Default()}
}

func (o *options) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.cfg.Path, "path", "p", o.cfg.Path, "File or directory to audit (default: working directory)")
	flags.StringVarP(&o.cfg.Algorithm, "algorithm", "a", o.cfg.Algorithm, "Digest algorithm, see 'algorithms'")
	flags.BoolVarP(&o.cfg.FollowSymlinks, "follow-symlinks", "L", o.cfg.FollowSymlinks, "Traverse symbolic links as their targets")
	flags.BoolVar(&o.cfg.FoldCase, "fold-case", o.cfg.FoldCase, "With --follow-symlinks, treat paths differing only in case as the same location")
	flags.StringVarP(&o.cfg.Format, "format", "f", o.cfg.Format, "Output format: "+report.FormatNames(", "))
	flags.StringVar(&o.cfg.Template, "template", o.cfg.Template, "Line template for text output, e.g. '{path} {size}'")
	flags.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file")
	flags.BoolVarP(&o.cfg.Verbose, "verbose", "v", o.cfg.Verbose, "Enable debug logging on stderr")
}

// resolve merges the config file under the flags the user set, validates
// the result and installs the logger.
func (o *options) resolve(cmd *cobra.Command, args []string) error {
	if o.configPath != "" {
		fileCfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("path") {
			o.cfg.Path = fileCfg.Path
		}
		if !flags.Changed("algorithm") {
			o.cfg.Algorithm = fileCfg.Algorithm
		}
		if !flags.Changed("follow-symlinks") {
			o.cfg.FollowSymlinks = fileCfg.FollowSymlinks
		}
		if !flags.Changed("fold-case") {
			o.cfg.FoldCase = fileCfg.FoldCase
		}
		if !flags.Changed("format") {
			o.cfg.Format = fileCfg.Format
		}
		if !flags.Changed("template") {
			o.cfg.Template = fileCfg.Template
		}
		if !flags.Changed("verbose") {
			o.cfg.Verbose = fileCfg.Verbose
		}
	}
	if len(args) > 0 {
		o.cfg.Path = args[0]
	}

	level := slog.LevelInfo
	if o.cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	return o.cfg.Validate()
}

// buildTree resolves the root and builds the tree with the configured
// symlink policy.
func (o *options) buildTree() (fstree.Node, error) {
	root, err := o.cfg.RootPath()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	tree, err := fstree.NewBuilder(o.cfg.FollowSymlinks, o.cfg.FoldCase).Build(root)
	if err != nil {
		return nil, err
	}
	slog.Debug("tree built",
		"root", root,
		"size", tree.Size(),
		"follow_symlinks", o.cfg.FollowSymlinks,
	)
	return tree, nil
}
