package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/pagination"
)

// contentDirCandidates are checked, in order, for a catalog index.
var contentDirCandidates = []string{".", "content", "public", "site-content"}

// detectContentDir returns the first candidate directory holding a
// catalog index, or "" when none does.
func detectContentDir() string {
	for _, dir := range contentDirCandidates {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(catalog.DefaultLayout.IndexPath))); err == nil {
			return dir
		}
	}
	return ""
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("enter an http(s) URL")
	}
	return nil
}

func validateDir(s string) error {
	info, err := os.Stat(s)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to ffsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	detected := detectContentDir()
	if detected != "" {
		fmt.Printf("Found a template catalog in %s\n\n", detected)
	}

	// 1. Content source.
	sourcePrompt := promptui.Select{
		Label: "Where is the site content?",
		Items: []string{"local directory", "HTTP URL"},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:    "Content directory",
			Default:  detected,
			Validate: validateDir,
		}
		if cfg.ContentDir, err = dirPrompt.Run(); err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
	} else {
		urlPrompt := promptui.Prompt{
			Label:    "Content base URL",
			Validate: validateURL,
		}
		if cfg.ContentURL, err = urlPrompt.Run(); err != nil {
			return nil, fmt.Errorf("content url: %w", err)
		}
	}

	// 2. Tool name shown in version labels.
	toolPrompt := promptui.Prompt{
		Label:   "Tool name for version labels",
		Default: cfg.ToolName,
	}
	if cfg.ToolName, err = toolPrompt.Run(); err != nil {
		return nil, fmt.Errorf("tool name: %w", err)
	}

	// 3. Page size.
	var sizes []string
	cursor := 0
	for i, n := range pagination.PageSizes {
		sizes = append(sizes, strconv.Itoa(n))
		if n == cfg.PageSize {
			cursor = i
		}
	}
	sizePrompt := promptui.Select{
		Label:     "Templates per page",
		Items:     sizes,
		CursorPos: cursor,
	}
	sizeIdx, _, err := sizePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page size: %w", err)
	}
	cfg.PageSize = pagination.PageSizes[sizeIdx]

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
