package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epicstalent-sudo/level-up-backend/config"
	"github.com/epicstalent-sudo/level-up-backend/model"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a single candidate search and print the JSON response",
	Long:  "Builds the index over the dataset, runs one search with the given query and filters and writes {count, results} to stdout.",
	RunE:  runSearch,
}

var (
	searchData        string
	searchQuery       string
	searchLocation    string
	searchSkills      []string
	searchMaxDistance float64
	searchMinExp      float64
	searchCompact     bool
)

func init() {
	searchCmd.Flags().StringVarP(&searchData, "data", "d", "", "Path to the candidate dataset JSON file (required)")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text query; OR and AND are accepted")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Case-insensitive location substring")
	searchCmd.Flags().StringSliceVarP(&searchSkills, "skill", "s", nil, "Skill to rank by (repeatable or comma separated)")
	searchCmd.Flags().Float64Var(&searchMaxDistance, "max-distance", 0, "Maximum distance; 0 means no limit")
	searchCmd.Flags().Float64Var(&searchMinExp, "min-exp", 0, "Minimum years of experience; 0 means no minimum")
	searchCmd.Flags().BoolVar(&searchCompact, "compact", false, "Print the response on a single line")

	if err := searchCmd.MarkFlagRequired("data"); err != nil {
		panic(fmt.Sprintf("failed to mark data flag as required: %v", err))
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg := &config.ServerConfig{LogLevel: "warn", LogFormat: "text"}
	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	svc, err := loadSearchService(searchData, log)
	if err != nil {
		return err
	}

	resp := svc.Search(model.SearchRequest{
		Query:       searchQuery,
		Location:    searchLocation,
		Skills:      searchSkills,
		MaxDistance: model.Number(searchMaxDistance),
		MinExp:      model.Number(searchMinExp),
	})

	var out []byte
	if searchCompact {
		out, err = json.Marshal(resp)
	} else {
		out, err = json.MarshalIndent(resp, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal search response to JSON: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
