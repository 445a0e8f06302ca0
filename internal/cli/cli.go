// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/dtree/internal/commands"
	"github.com/temirov/dtree/internal/config"
	"github.com/temirov/dtree/internal/output"
	"github.com/temirov/dtree/internal/render"
	"github.com/temirov/dtree/internal/scan"
	"github.com/temirov/dtree/internal/services/clipboard"
	"github.com/temirov/dtree/internal/types"
	"github.com/temirov/dtree/internal/utils"
)

const (
	allFlagName        = "all"
	allFlagShorthand   = "a"
	dirsOnlyFlagName   = "dirs-only"
	dirsOnlyShorthand  = "d"
	fullPathFlagName   = "full-path"
	fullPathShorthand  = "f"
	noGuidesFlagName   = "no-guides"
	noGuidesShorthand  = "i"
	maxEntriesFlagName = "max-entries"
	maxEntriesShort    = "n"
	formatFlagName     = "format"
	colorFlagName      = "color"
	copyFlagName       = "copy"
	configFlagName     = "config"
	logLevelFlagName   = "log-level"
	versionFlagName    = "version"
	versionTemplate    = "dtree version: %s\n"
	defaultPath        = "."
	defaultLogLevel    = "warn"

	rootUse              = "dtree [directory]"
	rootShortDescription = "display a directory tree"
	rootLongDescription  = `dtree scans a directory and draws its entries as a tree.
Hidden entries are skipped unless --all is set, and at most --max-entries entries are shown.
Use --format to select raw, json, xml, or yaml output.`
	rootUsageExample = `  # Show the current directory
  dtree

  # Directories only, including hidden ones
  dtree -a -d ./src

  # Full relative paths without connectors, as YAML
  dtree -f -i --format yaml .`

	allFlagDescription        = "include hidden entries"
	dirsOnlyFlagDescription   = "list directories only"
	fullPathFlagDescription   = "label entries with their full relative path"
	noGuidesFlagDescription   = "do not draw connectors"
	maxEntriesFlagDescription = "maximum number of entries to show (0 for no limit)"
	formatFlagDescription     = "output format"
	colorFlagDescription      = "color mode: auto, always, never"
	copyFlagDescription       = "copy the output to the clipboard"
	configFlagDescription     = "configuration file"
	logLevelFlagDescription   = "log level: debug, info, warn, error"
	versionFlagDescription    = "display application version"

	invalidFormatMessage        = "Invalid format value '%s'"
	invalidMaxEntriesMessage    = "Invalid max entries value %d"
	invalidLogLevelFormat       = "invalid log level '%s': %w"
	loadConfigurationFormat     = "load configuration: %w"
	warningCopyFailedMessage    = "failed to copy output to the clipboard"
	warningCopyUnavailable      = "clipboard is not available on this system"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// dependencies carries the collaborators of the command tree.
type dependencies struct {
	stdout           io.Writer
	stderr           io.Writer
	logger           *zap.Logger
	logLevel         *zap.AtomicLevel
	copier           clipboard.Copier
	workingDirectory string
}

// Execute runs the dtree application.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	rootCommand := createRootCommand(dependencies{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   logger,
		logLevel: &logLevel,
		copier:   clipboard.NewService(),
	})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:], ""))
	return rootCommand.ExecuteContext(context.Background())
}

// treeOptions stores the tree flags after configuration defaults were applied.
type treeOptions struct {
	showHidden bool
	dirsOnly   bool
	fullPath   bool
	noGuides   bool
	maxEntries int
	format     string
	color      string
	copy       bool
	configPath string
	logLevel   string
}

// applyConfiguration fills every option whose flag was not set explicitly.
func (options *treeOptions) applyConfiguration(flags *pflag.FlagSet, configuration config.TreeConfiguration) {
	applyBool := func(flagName string, value *bool, target *bool) {
		if value != nil && !flags.Changed(flagName) {
			*target = *value
		}
	}
	applyBool(allFlagName, configuration.All, &options.showHidden)
	applyBool(dirsOnlyFlagName, configuration.DirsOnly, &options.dirsOnly)
	applyBool(fullPathFlagName, configuration.FullPath, &options.fullPath)
	applyBool(copyFlagName, configuration.Copy, &options.copy)
	if configuration.Guides != nil && !flags.Changed(noGuidesFlagName) {
		options.noGuides = !*configuration.Guides
	}
	if configuration.MaxEntries != nil && !flags.Changed(maxEntriesFlagName) {
		options.maxEntries = *configuration.MaxEntries
	}
	if configuration.Format != "" && !flags.Changed(formatFlagName) {
		options.format = configuration.Format
	}
	if configuration.Color != "" && !flags.Changed(colorFlagName) {
		options.color = configuration.Color
	}
	if configuration.LogLevel != "" && !flags.Changed(logLevelFlagName) {
		options.logLevel = configuration.LogLevel
	}
}

// createRootCommand builds the root Cobra command, which renders the tree itself.
func createRootCommand(deps dependencies) *cobra.Command {
	if deps.logger == nil {
		deps.logger = zap.NewNop()
	}
	var showVersion bool
	options := treeOptions{
		maxEntries: scan.DefaultMaxEntries,
		format:     types.FormatRaw,
		color:      render.ColorAuto,
		logLevel:   defaultLogLevel,
	}

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(deps.stdout, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			directory := defaultPath
			if len(arguments) == 1 {
				directory = arguments[0]
			}
			if err := prepareOptions(command, deps, &options); err != nil {
				return err
			}
			return runTree(command.Context(), deps, directory, options)
		},
	}
	rootCommand.SetOut(deps.stdout)
	rootCommand.SetErr(deps.stderr)

	flags := rootCommand.Flags()
	registerBooleanFlag(flags, &options.showHidden, allFlagName, allFlagShorthand, false, allFlagDescription)
	registerBooleanFlag(flags, &options.dirsOnly, dirsOnlyFlagName, dirsOnlyShorthand, false, dirsOnlyFlagDescription)
	registerBooleanFlag(flags, &options.fullPath, fullPathFlagName, fullPathShorthand, false, fullPathFlagDescription)
	registerBooleanFlag(flags, &options.noGuides, noGuidesFlagName, noGuidesShorthand, false, noGuidesFlagDescription)
	registerBooleanFlag(flags, &options.copy, copyFlagName, "", false, copyFlagDescription)
	flags.IntVarP(&options.maxEntries, maxEntriesFlagName, maxEntriesShort, scan.DefaultMaxEntries, maxEntriesFlagDescription)
	flags.StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	flags.StringVar(&options.color, colorFlagName, render.ColorAuto, colorFlagDescription)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flags.StringVar(&options.logLevel, logLevelFlagName, defaultLogLevel, logLevelFlagDescription)
	flags.BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(deps))
	rootCommand.InitDefaultHelpCmd()
	return rootCommand
}

// prepareOptions overlays configuration defaults and validates the result.
func prepareOptions(command *cobra.Command, deps dependencies, options *treeOptions) error {
	workingDirectory := deps.workingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}
	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return fmt.Errorf(loadConfigurationFormat, loadError)
	}
	options.applyConfiguration(command.Flags(), configuration.Tree)

	parsedLevel, levelError := zapcore.ParseLevel(options.logLevel)
	if levelError != nil {
		return fmt.Errorf(invalidLogLevelFormat, options.logLevel, levelError)
	}
	if deps.logLevel != nil {
		deps.logLevel.SetLevel(parsedLevel)
	}
	options.format = strings.ToLower(strings.TrimSpace(options.format))
	if !output.IsSupportedFormat(options.format) {
		return fmt.Errorf(invalidFormatMessage, options.format)
	}
	if options.maxEntries < 0 {
		return fmt.Errorf(invalidMaxEntriesMessage, options.maxEntries)
	}
	return nil
}

// runTree scans directory, renders the result to stdout, and optionally copies it.
func runTree(ctx context.Context, deps dependencies, directory string, options treeOptions) error {
	builder := commands.TreeBuilder{
		ShowHidden: options.showHidden,
		DirsOnly:   options.dirsOnly,
		MaxEntries: options.maxEntries,
		Logger:     deps.logger,
	}
	result, treeError := builder.GetTreeData(ctx, directory)
	if treeError != nil {
		return treeError
	}

	styles := render.PlainStyles()
	if options.format == types.FormatRaw {
		resolvedStyles, stylesError := render.StylesFor(deps.stdout, options.color)
		if stylesError != nil {
			return stylesError
		}
		styles = resolvedStyles
	}
	rendererOptions := output.RendererOptions{
		Format: options.format,
		Tree: render.Options{
			ShowGuides:     !options.noGuides,
			FullPathLabels: options.fullPath,
		},
		Styles: styles,
	}
	if err := renderTo(deps.stdout, rendererOptions, result); err != nil {
		return err
	}
	if options.copy {
		copyOutput(deps, rendererOptions, result)
	}
	return nil
}

func renderTo(writer io.Writer, rendererOptions output.RendererOptions, result *commands.TreeResult) error {
	renderer, rendererError := output.NewRenderer(writer, rendererOptions)
	if rendererError != nil {
		return rendererError
	}
	return renderer.Render(result.Root, result.Summary)
}

// copyOutput renders the result again without color and places it on the clipboard.
func copyOutput(deps dependencies, rendererOptions output.RendererOptions, result *commands.TreeResult) {
	if deps.copier == nil {
		return
	}
	if service, isService := deps.copier.(*clipboard.Service); isService && !service.Available() {
		deps.logger.Warn(warningCopyUnavailable)
		return
	}
	rendererOptions.Styles = render.PlainStyles()
	var buffer strings.Builder
	if err := renderTo(&buffer, rendererOptions, result); err != nil {
		deps.logger.Warn(warningCopyFailedMessage, zap.Error(err))
		return
	}
	if err := deps.copier.Copy(buffer.String()); err != nil {
		deps.logger.Warn(warningCopyFailedMessage, zap.Error(err))
	}
}
