package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/gallery"
	"github.com/ziadkadry99/ffsite/internal/pagination"
	"github.com/ziadkadry99/ffsite/internal/tui"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the template library",
	Long: `Filters the template library by a case-insensitive substring of the title,
description, tags or graph payloads, and prints one page of results.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("page", 1, "page number")
	searchCmd.Flags().Int("size", 0, "results per page: 6, 12, 24 or 48 (defaults to config)")
	searchCmd.Flags().Bool("json", false, "print results as JSON")
	rootCmd.AddCommand(searchCmd)
}

type searchResult struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Versions []string `json:"versions"`
}

type searchOutput struct {
	Query      string         `json:"query"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
	Results    []searchResult `json:"results"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	cat, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	size, _ := cmd.Flags().GetInt("size")
	if size == 0 {
		size = cfg.PageSize
	}
	if !pagination.ValidPageSize(size) {
		return fmt.Errorf("invalid --size %d: must be one of %v", size, pagination.PageSizes)
	}
	page, _ := cmd.Flags().GetInt("page")

	g := gallery.New(cat.Groups, size)
	g.SetQuery(strings.Join(args, " "))
	g.GoToPage(page)
	view := g.View()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out := searchOutput{
			Query:      view.Query,
			Page:       view.Page.Number,
			TotalPages: view.Page.TotalPages,
			Total:      view.Page.Total,
			Results:    []searchResult{},
		}
		for _, c := range view.Cards {
			r := searchResult{ID: c.Group.ID, Title: c.Group.Title, Tags: c.Group.Tags}
			for _, v := range c.Group.Versions {
				r.Versions = append(r.Versions, v.Version)
			}
			out.Results = append(out.Results, r)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(view.Summary)
	if len(view.Cards) == 0 {
		return nil
	}
	fmt.Println(resultsTable(view, cfg.ToolName))
	fmt.Println(tui.PagerLine(view))
	return nil
}

func resultsTable(view gallery.View, toolName string) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "TAGS", "VERSIONS", "SIZE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, c := range view.Cards {
		var versions []string
		for _, v := range c.Group.Versions {
			versions = append(versions, catalog.VersionLabel(toolName, v.Version))
		}
		t.Row(c.Group.ID, c.Group.Title, strings.Join(c.Group.Tags, ", "),
			strings.Join(versions, ", "), humanize.Bytes(uint64(len(c.Selected.GraphData))))
	}
	return t.String()
}
