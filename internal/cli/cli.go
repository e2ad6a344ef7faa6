// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/treepick/internal/commands"
	"github.com/temirov/treepick/internal/config"
	"github.com/temirov/treepick/internal/output"
	"github.com/temirov/treepick/internal/picker"
	"github.com/temirov/treepick/internal/services/clipboard"
	"github.com/temirov/treepick/internal/tokenizer"
	"github.com/temirov/treepick/internal/types"
	"github.com/temirov/treepick/internal/utils"
)

const (
	exclusionFlagName    = "e"
	outputFlagName       = "output"
	outputFlagShorthand  = "o"
	copyFlagName         = "copy"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	versionFlagName      = "version"
	versionTemplate      = "treepick version: %s\n"
	defaultPath          = "."
	rootUse              = "treepick"
	rootShortDescription = "treepick command line interface"
	rootLongDescription  = `treepick renders filtered directory trees and interactively selects files.
The tree command prints a box-drawing view of a directory honoring .treeignore.
The pick command labels files with single-key tokens, lets you toggle a
selection, and concatenates the chosen files into one artifact.`
	versionFlagDescription = "display application version"

	treeUse              = "tree [directory]"
	treeAlias            = "t"
	treeShortDescription = "render a directory tree (" + treeAlias + ")"
	treeLongDescription  = `Render the filtered structure of a directory as text.
Entries matching built-in defaults, -e patterns, or .treeignore lines are
excluded. Without --output the rendering goes to standard output.`
	treeUsageExample = `  # Print the tree of the current directory
  treepick tree

  # Write the tree to a snapshot file and copy it to the clipboard
  treepick tree ./project -o tree.txt --copy`

	pickUse              = "pick <directory>"
	pickAlias            = "p"
	pickShortDescription = "interactively select and concatenate files (" + pickAlias + ")"
	pickLongDescription  = `Browse the filtered file listing of a directory, toggle selections with the
assigned single-key tokens, and press enter to concatenate the selected files
into one output artifact mirrored to the clipboard. Patterns from .gitignore
and .selectignore are honored.`
	pickUsageExample = `  # Pick files beneath the current project
  treepick pick .

  # Pick while excluding vendored code
  treepick pick ./project -e vendor/`

	exclusionFlagDescription = "exclude path pattern"
	outputFlagDescription    = "write rendered tree to the given file instead of stdout"
	copyFlagDescription      = "copy the rendered tree to the clipboard"
	tokensFlagDescription    = "report the token count of the concatenated artifact"
	modelFlagDescription     = "tokenizer model used for token counting"
	defaultTokenizerModel    = "gpt-4o"

	messageTreeWritten      = "folder structure written"
	messageNoFiles          = "no files to select"
	messageSelectionAborted = "selection aborted, nothing concatenated"
	messageSelectedFiles    = "selected files"
	messageArtifactWritten  = "files concatenated"
	messageArtifactTokens   = "artifact token count"
	warningOverflowFormat   = "too many files: only the first %d receive keys; the rest are unreachable this session"
	warningClipboardFormat  = "failed to copy rendered tree to clipboard: %v"

	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing directory.
	errorPathMissingFormat = "directory '%s' does not exist"
	// errorNotDirectoryFormat reports a path that is not a directory.
	errorNotDirectoryFormat = "'%s' is not a directory"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorWriteTreeFormat reports failure to write the rendered tree.
	errorWriteTreeFormat = "writing tree to %s: %w"
	// errorLoadConfigurationFormat reports an application configuration failure.
	errorLoadConfigurationFormat = "loading application configuration: %w"
)

// Execute runs the treepick application with the provided logger.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(logger)
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(logger *zap.Logger) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createTreeCommand(logger),
		createPickCommand(logger),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand(logger *zap.Logger) *cobra.Command {
	var exclusionPatterns []string
	var outputPath string
	var copyEnabled bool

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			directoryArgument := defaultPath
			if len(arguments) > 0 {
				directoryArgument = arguments[0]
			}
			return runTree(logger, directoryArgument, outputPath, copyEnabled, exclusionPatterns)
		},
	}

	treeCommand.Flags().StringArrayVarP(&exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	treeCommand.Flags().StringVarP(&outputPath, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	registerCopyFlag(treeCommand.Flags(), &copyEnabled)
	return treeCommand
}

// createPickCommand returns the pick subcommand.
func createPickCommand(logger *zap.Logger) *cobra.Command {
	var exclusionPatterns []string
	var tokensEnabled bool
	var tokenizerModel string

	pickCommand := &cobra.Command{
		Use:     pickUse,
		Aliases: []string{pickAlias},
		Short:   pickShortDescription,
		Long:    pickLongDescription,
		Example: pickUsageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return runPick(logger, arguments[0], exclusionPatterns, tokensEnabled, tokenizerModel)
		},
	}

	pickCommand.Flags().StringArrayVarP(&exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	pickCommand.Flags().BoolVar(&tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	pickCommand.Flags().StringVar(&tokenizerModel, modelFlagName, defaultTokenizerModel, modelFlagDescription)
	return pickCommand
}

// runTree renders the directory tree and delivers it to stdout, a file, or
// the clipboard according to the flags.
func runTree(logger *zap.Logger, directoryArgument string, outputPath string, copyEnabled bool, exclusionPatterns []string) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
	}

	validatedDirectory, validationError := resolveAndValidateDirectory(directoryArgument)
	if validationError != nil {
		return validationError
	}

	ignorePatterns, loadError := config.LoadIgnorePatterns(validatedDirectory.AbsolutePath, config.IgnoreConfiguration{
		DefaultPatterns: applicationConfiguration.EffectiveIgnoreDefaults(),
		ExtraPatterns:   exclusionPatterns,
		IgnoreFileNames: []string{utils.TreeIgnoreFileName},
	})
	if loadError != nil {
		return loadError
	}

	matcher := utils.NewMatcher(ignorePatterns, []string{utils.TreeIgnoreFileName}, utils.MatchEntryName)
	treeBuilder := &commands.TreeBuilder{
		Matcher: matcher,
		Warn:    func(message string) { logger.Warn(message) },
	}

	rootNode, buildError := treeBuilder.GetTreeData(validatedDirectory.AbsolutePath)
	if buildError != nil {
		return buildError
	}
	renderedTree := output.RenderTreeText(rootNode)

	if outputPath == "" {
		fmt.Print(renderedTree)
	} else {
		if writeError := os.WriteFile(outputPath, []byte(renderedTree), 0o644); writeError != nil {
			return fmt.Errorf(errorWriteTreeFormat, outputPath, writeError)
		}
		logger.Info(messageTreeWritten, zap.String("path", outputPath))
	}

	if copyEnabled {
		if copyError := clipboard.NewService().Copy(renderedTree); copyError != nil {
			logger.Warn(fmt.Sprintf(warningClipboardFormat, copyError))
		}
	}
	return nil
}

// runPick drives the interactive selection session and concatenates the
// committed selection into the output artifact.
func runPick(logger *zap.Logger, directoryArgument string, exclusionPatterns []string, tokensEnabled bool, tokenizerModel string) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
	}

	validatedDirectory, validationError := resolveAndValidateDirectory(directoryArgument)
	if validationError != nil {
		return validationError
	}

	pickIgnoreFileNames := []string{utils.GitIgnoreFileName, utils.SelectIgnoreFileName}
	ignorePatterns, loadError := config.LoadIgnorePatterns(validatedDirectory.AbsolutePath, config.IgnoreConfiguration{
		DefaultPatterns: applicationConfiguration.EffectiveIgnoreDefaults(),
		ExtraPatterns:   exclusionPatterns,
		IgnoreFileNames: pickIgnoreFileNames,
	})
	if loadError != nil {
		return loadError
	}

	matcher := utils.NewMatcher(ignorePatterns, pickIgnoreFileNames, utils.MatchPathSegments)
	fileLister := &commands.FileLister{
		Matcher: matcher,
		Warn:    func(message string) { logger.Warn(message) },
	}

	fileEntries, listError := fileLister.ListFiles(validatedDirectory.AbsolutePath)
	if listError != nil {
		return listError
	}
	if len(fileEntries) == 0 {
		logger.Info(messageNoFiles)
		return nil
	}

	keyAlphabet := []rune(picker.DefaultKeyAlphabet)
	indexToKey, overflow := picker.AssignKeys(len(fileEntries), keyAlphabet)
	if overflow {
		logger.Warn(fmt.Sprintf(warningOverflowFormat, len(keyAlphabet)))
	}

	sessionResult, sessionError := picker.Run(fileEntries, indexToKey, overflow)
	if sessionError != nil {
		return sessionError
	}
	if !sessionResult.Committed {
		logger.Info(messageSelectionAborted)
		return nil
	}

	orderedSelection := append([]int(nil), sessionResult.SelectedIndexes...)
	sort.Ints(orderedSelection)
	for _, selectedIndex := range orderedSelection {
		logger.Info(messageSelectedFiles, zap.String("path", fileEntries[selectedIndex].AbsolutePath))
	}

	clipboardEnabled := true
	if applicationConfiguration.Pick.Clipboard != nil {
		clipboardEnabled = *applicationConfiguration.Pick.Clipboard
	}
	var clipboardCopier clipboard.Copier
	if clipboardEnabled {
		clipboardCopier = clipboard.NewService()
	}

	concatenator := &commands.Concatenator{
		RootDirectory:  validatedDirectory.AbsolutePath,
		OutputFileName: applicationConfiguration.EffectiveOutputFileName(),
		TreeFileName:   applicationConfiguration.EffectiveTreeFileName(),
		Clipboard:      clipboardCopier,
		Warn:           func(message string) { logger.Warn(message) },
	}

	artifactText, artifactPath, concatenateError := concatenator.Concatenate(orderedSelection, fileEntries)
	if concatenateError != nil {
		return concatenateError
	}
	logger.Info(messageArtifactWritten, zap.String("path", artifactPath))

	if !tokensEnabled && applicationConfiguration.Pick.Tokens.Enabled != nil {
		tokensEnabled = *applicationConfiguration.Pick.Tokens.Enabled
	}
	if tokensEnabled {
		if applicationConfiguration.Pick.Tokens.Model != "" && tokenizerModel == defaultTokenizerModel {
			tokenizerModel = applicationConfiguration.Pick.Tokens.Model
		}
		tokenCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizerModel)
		if counterError != nil {
			logger.Warn(counterError.Error())
		} else if tokenCount, countError := tokenizer.CountText(tokenCounter, artifactText); countError != nil {
			logger.Warn(countError.Error())
		} else {
			logger.Info(messageArtifactTokens, zap.Int("tokens", tokenCount), zap.String("model", resolvedModel))
		}
	}
	return nil
}

// resolveAndValidateDirectory converts the input path to absolute form and
// validates that it exists and is a directory.
func resolveAndValidateDirectory(inputPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	pathInformation, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !pathInformation.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath, IsDir: true}, nil
}
