package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pKa1/loveSonia/pkg/nlp"
)

type parseOptions struct {
	timeZone   string
	now        string
	confidence bool
	indent     bool
}

type parseResult struct {
	*nlp.Intent
	Confidence *float64 `json:"confidence,omitempty"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nlp",
		Short:         "Russian date/time intent parser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCmd())
	return root
}

func newParseCmd() *cobra.Command {
	opts := parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text into an event or task and print it as JSON",
		Long: `Parse free Russian text into an event or task and print it as JSON.

Examples:
  nlp parse "ужин завтра в 19:30 в ресторане"
  nlp parse "купить цветы до пятницы" --tz Europe/Moscow --confidence
  nlp parse "встреча с 9 до 10" --now 2025-10-13T09:00:00Z`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.timeZone, "tz", "Europe/Moscow", "IANA time zone of the speaker")
	cmd.Flags().StringVar(&opts.now, "now", "", "reference instant in RFC3339 (default: current time)")
	cmd.Flags().BoolVar(&opts.confidence, "confidence", false, "include the rule confidence score")
	cmd.Flags().BoolVar(&opts.indent, "pretty", true, "indent the JSON output")
	return cmd
}

func runParse(cmd *cobra.Command, text string, opts parseOptions) error {
	now := time.Now()
	if opts.now != "" {
		t, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		now = t
	}

	in, conf := nlp.ParseWithConfidence(text, now, opts.timeZone)
	if in == nil {
		return errors.New("nothing to parse")
	}

	res := parseResult{Intent: in}
	if opts.confidence {
		res.Confidence = &conf
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if opts.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
