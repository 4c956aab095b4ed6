// cmd/build.go
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/showcase/internal/listing"
	"github.com/Bitlatte/showcase/internal/markdown"
	"github.com/Bitlatte/showcase/internal/model"
	"github.com/Bitlatte/showcase/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Exports the showcase as static files",
	Long: `The build command renders the homepage, the blog and project listings and
every detail page to HTML, writes the content API as JSON files and copies the
static assets into the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		pages, err := site.NewPages(appConfig.SiteTitle, appConfig.BaseURL, markdown.NewRenderer())
		if err != nil {
			return err
		}
		return runBuildProcess(appConfig.OutputDir, store.All(), pages)
	},
}

func runBuildProcess(outputDir string, c model.ContentResponse, pages *site.Pages) error {
	logger.Info("starting build", zap.String("outputDir", outputDir))

	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if err := copyFS(site.Static(), filepath.Join(outputDir, "static")); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}

	if err := writeJSON(filepath.Join(outputDir, "api", "content.json"), c); err != nil {
		return err
	}

	items := c.All()
	for _, item := range items {
		apiPath := filepath.Join(outputDir, "api", "content", string(item.Kind), item.Slug+".json")
		if err := writeJSON(apiPath, item); err != nil {
			return err
		}

		pagePath := filepath.Join(outputDir, filepath.FromSlash(item.Permalink()), "index.html")
		if err := writeFile(pagePath, func(w io.Writer) error { return pages.Detail(w, item) }); err != nil {
			return fmt.Errorf("failed to render item '%s': %w", item.Title, err)
		}
		logger.Debug("generated page", zap.String("path", pagePath))
	}

	listings := map[string]listing.ViewState{
		"index.html":          listing.DefaultViewState(),
		"blogs/index.html":    listing.Reduce(listing.DefaultViewState(), listing.SetType{Type: listing.TypeBlog}),
		"projects/index.html": listing.Reduce(listing.DefaultViewState(), listing.SetType{Type: listing.TypeProject}),
	}
	for name, state := range listings {
		// Static pages cannot grow on demand, so they show everything.
		state.Visible = len(items)
		res := listing.Run(items, state)
		path := filepath.Join(outputDir, filepath.FromSlash(name))
		if err := writeFile(path, func(w io.Writer) error { return pages.Home(w, c, res) }); err != nil {
			return fmt.Errorf("failed to render listing '%s': %w", name, err)
		}
	}

	logger.Info("build completed",
		zap.Int("items", len(items)),
		zap.String("outputDir", outputDir),
	)
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	return writeFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode '%s': %w", path, err)
		}
		return nil
	})
}

// copyFS recursively copies src into the dst directory.
func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		in, err := src.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open source file %s: %w", path, err)
		}
		defer in.Close()
		return writeFile(dstPath, func(w io.Writer) error {
			if _, err := io.Copy(w, in); err != nil {
				return fmt.Errorf("failed to copy data from %s to %s: %w", path, dstPath, err)
			}
			return nil
		})
	})
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
