package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bibkit/bibsort/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set default toggles",
	Long: `Get or set default values for the sorting toggles.

Usage:
  bibsort config                          # Show all settings
  bibsort config sort_by                  # Get one setting
  bibsort config sort_by first-author-field
  bibsort config case_sensitive true

Keys:
  case_sensitive        Sort and compare keys case sensitively
  allow_empty_keys      Accept entries without a citation key
  allow_doi_duplicates  Do not treat repeated DOIs as duplicates
  allow_empty_doi       Ignore doi fields that contain no DOI
  sort_by               key, first-author-field, or first-author-first-name

The file lives at $XDG_CONFIG_HOME/bibsort/config.yml; BIBSORT_CONFIG
overrides the location.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// UpdateResponse is the response for config set.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("case_sensitive:       %t\n", cfg.CaseSensitive)
			fmt.Printf("allow_empty_keys:     %t\n", cfg.AllowEmptyKeys)
			fmt.Printf("allow_doi_duplicates: %t\n", cfg.AllowDOIDuplicates)
			fmt.Printf("allow_empty_doi:      %t\n", cfg.AllowEmptyDOI)
			fmt.Printf("sort_by:              %s\n", sortByOrDefault(cfg.SortBy))
			fmt.Printf("path:                 %s\n", config.Path())
			return nil
		}
		return outputJSON(cfg)
	}

	key := args[0]
	if len(args) == 1 {
		val, err := configValue(cfg, key)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		if humanOutput {
			fmt.Println(val)
			return nil
		}
		return outputJSON(map[string]string{key: val})
	}

	if err := setConfigValue(cfg, key, args[1]); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if humanOutput {
		fmt.Printf("%s = %s\n", key, args[1])
		return nil
	}
	return outputJSON(UpdateResponse{Status: "updated", Key: key, Value: args[1]})
}

func sortByOrDefault(s string) string {
	if s == "" {
		return "key"
	}
	return s
}

func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "case_sensitive":
		return strconv.FormatBool(cfg.CaseSensitive), nil
	case "allow_empty_keys":
		return strconv.FormatBool(cfg.AllowEmptyKeys), nil
	case "allow_doi_duplicates":
		return strconv.FormatBool(cfg.AllowDOIDuplicates), nil
	case "allow_empty_doi":
		return strconv.FormatBool(cfg.AllowEmptyDOI), nil
	case "sort_by":
		return sortByOrDefault(cfg.SortBy), nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

func setConfigValue(cfg *config.Config, key, value string) error {
	if key == "sort_by" {
		cfg.SortBy = value
		return cfg.Validate()
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s expects true or false, got %q", key, value)
	}
	switch key {
	case "case_sensitive":
		cfg.CaseSensitive = b
	case "allow_empty_keys":
		cfg.AllowEmptyKeys = b
	case "allow_doi_duplicates":
		cfg.AllowDOIDuplicates = b
	case "allow_empty_doi":
		cfg.AllowEmptyDOI = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
