package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/adalundhe/snippetgen/config"
	"github.com/adalundhe/snippetgen/snippet"
	"github.com/adalundhe/snippetgen/stemmer"
)

// =============================================================================
// Constants
// =============================================================================

const highlightDefaultContextLength = -1 // sentinel meaning "use config/defaults"

// =============================================================================
// Highlight Command Flags
// =============================================================================

var (
	highlightMatches       []string
	highlightConfigPath    string
	highlightPreMatch      string
	highlightPostMatch     string
	highlightInterSnippet  string
	highlightContextLength int
	highlightCJKMode       string
	highlightNoStemmer     bool
	highlightJSON          bool
)

// =============================================================================
// Highlight Command
// =============================================================================

var highlightCmd = &cobra.Command{
	Use:   "highlight [text]",
	Short: "Highlight matched terms and print the best snippets",
	Long: `highlight runs the snippet generator over text (an argument, or
stdin if no argument is given) against one or more --match terms and
prints the retained snippets with matched terms wrapped in the
configured markup.

Examples:
  snippetgen highlight --match fox --match dog "The quick brown fox jumps over the lazy dog"
  echo "man from U.N.C.L.E. headquarters" | snippetgen highlight --match "U.N.C.L.E"
  snippetgen highlight --config snippetgen.yaml --match 中国 "我爱中国人" --cjk-mode ngram`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

func init() {
	rootCmd.AddCommand(highlightCmd)

	highlightCmd.Flags().StringArrayVarP(&highlightMatches, "match", "m", nil, "a term to highlight (repeatable)")
	highlightCmd.Flags().StringVarP(&highlightConfigPath, "config", "c", "", "path to a JSON or YAML config file")
	highlightCmd.Flags().StringVar(&highlightPreMatch, "pre-match", "", "override the pre-match markup")
	highlightCmd.Flags().StringVar(&highlightPostMatch, "post-match", "", "override the post-match markup")
	highlightCmd.Flags().StringVar(&highlightInterSnippet, "inter-snippet", "", "override the inter-snippet separator")
	highlightCmd.Flags().IntVar(&highlightContextLength, "context-length", highlightDefaultContextLength, "override the context length")
	highlightCmd.Flags().StringVar(&highlightCJKMode, "cjk-mode", "", "override the CJK mode (disabled, ngram, word)")
	highlightCmd.Flags().BoolVar(&highlightNoStemmer, "no-stemmer", false, "disable Porter stemming")
	highlightCmd.Flags().BoolVar(&highlightJSON, "json", false, "output the result as JSON")
}

// =============================================================================
// Highlight Execution
// =============================================================================

func runHighlight(cmd *cobra.Command, args []string) error {
	text, err := readHighlightInput(cmd, args)
	if err != nil {
		return err
	}

	gen, err := buildHighlightGenerator()
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}

	for _, m := range highlightMatches {
		gen.AddMatch(m)
	}
	gen.AcceptText(text)
	result := gen.GetSnippets()

	return outputHighlightResult(cmd.OutOrStdout(), result)
}

// readHighlightInput reads text from the positional argument, falling
// back to stdin when none is given.
func readHighlightInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("highlight: read stdin: %w", err)
	}
	return string(data), nil
}

// buildHighlightGenerator assembles a snippet.Generator from an optional
// config file layered under the command's own flag overrides.
func buildHighlightGenerator() (*snippet.Generator, error) {
	loader := config.NewLoader()
	if highlightConfigPath != "" {
		if err := loader.LoadFromFile(highlightConfigPath); err != nil {
			return nil, err
		}
	}
	cfg := loader.Current()
	applyHighlightFlagOverrides(cfg)

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	if cfg.UseStemmer == nil || *cfg.UseStemmer {
		opts = append(opts, snippet.WithStemmer(stemmer.Porter))
	}
	return snippet.New(opts...), nil
}

func applyHighlightFlagOverrides(cfg *config.Config) {
	if highlightPreMatch != "" {
		cfg.PreMatch = highlightPreMatch
	}
	if highlightPostMatch != "" {
		cfg.PostMatch = highlightPostMatch
	}
	if highlightInterSnippet != "" {
		cfg.InterSnippet = highlightInterSnippet
	}
	if highlightContextLength != highlightDefaultContextLength {
		n := highlightContextLength
		cfg.ContextLength = &n
	}
	if highlightCJKMode != "" {
		cfg.CJKMode = highlightCJKMode
	}
	if highlightNoStemmer {
		b := false
		cfg.UseStemmer = &b
	}
}

// =============================================================================
// Output Formatting
// =============================================================================

type highlightOutput struct {
	Matches  []string `json:"matches"`
	Snippets string   `json:"snippets"`
}

func outputHighlightResult(w io.Writer, snippets string) error {
	if highlightJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(highlightOutput{Matches: highlightMatches, Snippets: snippets})
	}
	if snippets == "" {
		fmt.Fprintln(w, "(no matching snippets)")
		return nil
	}
	fmt.Fprintln(w, snippets)
	return nil
}
