package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/epubtools/epub2txt/internal/converter"
	"github.com/epubtools/epub2txt/internal/reader"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF5555"))

// conversionMode selects between the two mutually exclusive CLI modes.
type conversionMode int

const (
	modeFile conversionMode = iota
	modeDir
)

// selectMode validates the four mode flags and picks a conversion mode.
// Mixing file and directory flags, supplying neither pair, or supplying an
// incomplete pair is a usage error.
func selectMode(inFile, outFile, inDir, outDir string) (conversionMode, error) {
	fileMode := inFile != "" || outFile != ""
	dirMode := inDir != "" || outDir != ""

	switch {
	case fileMode && dirMode:
		return 0, errors.New("specify either file arguments or directory arguments, not both")
	case fileMode:
		if inFile == "" || outFile == "" {
			return 0, errors.New("both --input-file and --output-file must be provided for single-file conversion")
		}
		return modeFile, nil
	case dirMode:
		if inDir == "" || outDir == "" {
			return 0, errors.New("both --input-dir and --output-dir must be provided for batch conversion")
		}
		return modeDir, nil
	default:
		return 0, errors.New("provide either --input-file/--output-file for single conversion or --input-dir/--output-dir for batch conversion")
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "epub2txt",
		Short:   "Convert EPUB files to plain text",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Long: `Epub2txt converts EPUB e-books to plain UTF-8 text, preserving reading
order and intentional blank-line gaps between paragraphs and sections.

Supported formats: ` + strings.Join(reader.SupportedFormats(), ", ") + `

Examples:
  # Convert a single book
  epub2txt --input-file book.epub --output-file book.txt

  # Convert every EPUB in a directory
  epub2txt --input-dir books/ --output-dir texts/`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().String("input-file", "", "path to the input EPUB file")
	cmd.Flags().String("output-file", "", "path to the output TXT file")
	cmd.Flags().String("input-dir", "", "directory containing EPUB files to convert")
	cmd.Flags().String("output-dir", "", "directory where TXT results will be written")
	cmd.Flags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("input-file", cmd.Flags().Lookup("input-file"))
	_ = viper.BindPFlag("output-file", cmd.Flags().Lookup("output-file"))
	_ = viper.BindPFlag("input-dir", cmd.Flags().Lookup("input-dir"))
	_ = viper.BindPFlag("output-dir", cmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("quiet", cmd.Flags().Lookup("quiet"))

	return cmd
}

func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigName(".epub2txt")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("EPUB2TXT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

func run(cmd *cobra.Command, args []string) error {
	inFile := viper.GetString("input-file")
	outFile := viper.GetString("output-file")
	inDir := viper.GetString("input-dir")
	outDir := viper.GetString("output-dir")

	mode, err := selectMode(inFile, outFile, inDir, outDir)
	if err != nil {
		return err
	}

	var progress io.Writer = os.Stdout
	if viper.GetBool("quiet") {
		progress = nil
	}
	conv := &converter.Converter{Progress: progress}

	if mode == modeFile {
		return conv.File(inFile, outFile)
	}
	return conv.Dir(inDir, outDir)
}

func main() {
	cobra.OnInitialize(initConfig)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
