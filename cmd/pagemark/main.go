// Command pagemark extracts highlighted and annotated text from a PDF and
// prints it grouped by page, optionally exporting JSON or CSV.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/colors"
	"github.com/pagemark/pagemark/export"
	"github.com/pagemark/pagemark/reader"
)

type flags struct {
	jsonPath       string
	csvPath        string
	configPath     string
	pages          string
	colorNames     string
	highlightsOnly bool
	keepUnknown    bool
	noColor        bool
	verbose        bool
	skipPreflight  bool
}

func main() {
	var f flags

	root := &cobra.Command{
		Use:   "pagemark <file.pdf>",
		Short: "Extract highlighted and annotated text from a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], f)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&f.jsonPath, "json", "", "write results to a JSON file")
	root.Flags().StringVar(&f.csvPath, "csv", "", "write results to a CSV file")
	root.Flags().StringVar(&f.configPath, "config", "", "YAML file with pipeline thresholds")
	root.Flags().StringVar(&f.pages, "pages", "", "comma-separated 1-based page numbers (default all)")
	root.Flags().StringVar(&f.colorNames, "colors", "", "comma-separated color filter (yellow,pink,green,blue)")
	root.Flags().BoolVar(&f.highlightsOnly, "highlights-only", false, "skip non-highlight annotations")
	root.Flags().BoolVar(&f.keepUnknown, "keep-unknown", false, "keep records with unclassifiable colors")
	root.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored terminal output")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline diagnostics")
	root.Flags().BoolVar(&f.skipPreflight, "skip-preflight", false, "skip structural validation of the input file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, f flags) error {
	log := zap.NewNop()
	if f.verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
	}

	if !f.skipPreflight {
		info, err := reader.Preflight(path)
		if err != nil {
			return err
		}
		if info.Encrypted {
			return fmt.Errorf("%s is encrypted", path)
		}
		log.Debug("preflight ok",
			zap.Int("pages", info.PageCount),
			zap.Bool("has_images", info.HasImages))
	}

	ext := pagemark.Open(path).WithLogger(log)
	defer ext.Close()

	if f.configPath != "" {
		cfg, err := pagemark.LoadConfig(f.configPath)
		if err != nil {
			return err
		}
		ext = ext.WithConfig(cfg)
	}
	if f.pages != "" {
		nums, err := parsePages(f.pages)
		if err != nil {
			return err
		}
		ext = ext.Pages(nums...)
	}
	if f.colorNames != "" {
		names, err := parseColors(f.colorNames)
		if err != nil {
			return err
		}
		ext = ext.Colors(names...)
	}
	if f.keepUnknown {
		ext = ext.KeepUnknown()
	}
	if f.highlightsOnly {
		ext = ext.HighlightsOnly()
	}

	records, warnings, err := ext.Records()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	display(os.Stdout, records, !f.noColor)

	if f.jsonPath != "" {
		if err := writeFile(f.jsonPath, func(out *os.File) error {
			return export.WriteJSON(out, records)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", f.jsonPath)
	}
	if f.csvPath != "" {
		if err := writeFile(f.csvPath, func(out *os.File) error {
			return export.WriteCSV(out, records)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", f.csvPath)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func parsePages(s string) ([]int, error) {
	var nums []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("no page numbers in %q", s)
	}
	return nums, nil
}

func parseColors(s string) ([]colors.Name, error) {
	var names []colors.Name
	for _, part := range strings.Split(s, ",") {
		name := colors.Name(strings.ToLower(strings.TrimSpace(part)))
		if !name.Known() {
			return nil, fmt.Errorf("unknown color %q (expected yellow, pink, green, or blue)", part)
		}
		names = append(names, name)
	}
	return names, nil
}
