package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ffsite/internal/content"
	"github.com/ziadkadry99/ffsite/internal/tutorial"
)

var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "List and read tutorials",
}

var tutorialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tutorials",
	RunE:  runTutorialList,
}

var tutorialShowCmd = &cobra.Command{
	Use:   "show <tutorial-id>",
	Short: "Render a tutorial in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runTutorialShow,
}

func init() {
	tutorialListCmd.Flags().String("category", "", "only list this category")
	tutorialListCmd.Flags().String("query", "", "search titles, descriptions and tags")
	tutorialShowCmd.Flags().Int("width", 80, "word wrap width")
	tutorialCmd.AddCommand(tutorialListCmd, tutorialShowCmd)
	rootCmd.AddCommand(tutorialCmd)
}

func loadTutorials(cmd *cobra.Command) ([]content.Tutorial, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	s := content.LoadSite(cmd.Context(), src, logger)
	if s.Tutorials == nil {
		return nil, fmt.Errorf("%s unavailable from %s", content.DocTutorials, src.Location())
	}
	return s.Tutorials.Tutorials, nil
}

func runTutorialList(cmd *cobra.Command, args []string) error {
	list, err := loadTutorials(cmd)
	if err != nil {
		return err
	}
	category, _ := cmd.Flags().GetString("category")
	query, _ := cmd.Flags().GetString("query")
	list = tutorial.Search(tutorial.FilterByCategory(list, category), query)
	if len(list) == 0 {
		fmt.Println("No tutorials found")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "CATEGORY", "READ TIME")
	for _, tut := range list {
		t.Row(tut.ID, tut.Title, tut.Category, tut.ReadTime)
	}
	fmt.Println(t.String())
	return nil
}

func runTutorialShow(cmd *cobra.Command, args []string) error {
	list, err := loadTutorials(cmd)
	if err != nil {
		return err
	}
	tut, _, ok := tutorial.Find(list, args[0])
	if !ok {
		return fmt.Errorf("tutorial %q not found; run `ffsite tutorial list`", args[0])
	}

	width, _ := cmd.Flags().GetInt("width")
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(tutorial.Markdown(tut))
	if err != nil {
		return fmt.Errorf("rendering tutorial: %w", err)
	}
	_, err = fmt.Fprint(os.Stdout, out)
	return err
}
