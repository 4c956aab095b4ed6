package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/showcase/internal/drafts"
	"github.com/Bitlatte/showcase/internal/markdown"
	"github.com/Bitlatte/showcase/internal/output"
)

var draftOpts struct {
	title    string
	slug     string
	excerpt  string
	tags     string
	date     string
	cover    string
	file     string
	html     bool
	exportTo string
}

var now = time.Now

func draftStore() *drafts.Store {
	return drafts.NewStore(drafts.NewFileKV(appConfig.DraftsFile, logger), logger)
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Write and manage blog post drafts",
	Long: `Drafts are kept in a local JSON file (draftsFile in the config) and never
touch the published content collection.`,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv := drafts.NewFileKV(appConfig.DraftsFile, logger)
		list, err := drafts.NewStore(kv, logger).List()
		if err != nil {
			return err
		}
		p := output.NewPrinter(cmd.OutOrStdout(), false)
		p.Header(fmt.Sprintf("Drafts in %s", kv.Path()))
		return p.Drafts(list)
	},
}

var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create a draft or update the one with the same slug",
	Example: `  showcase draft save --title "My awesome post" --tags "go, tips" --file post.md
  cat post.md | showcase draft save --slug my-awesome-post --file -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := draftStore()
		flags := cmd.Flags()

		d := drafts.New(now())
		slug := drafts.Slugify(draftOpts.slug)
		if slug == "" {
			slug = drafts.Slugify(draftOpts.title)
		}
		if existing, err := store.Get(slug); err == nil {
			d = existing
		} else if !errors.Is(err, drafts.ErrNotFound) {
			return err
		}

		if flags.Changed("title") {
			d.SetTitle(draftOpts.title)
		}
		if flags.Changed("slug") {
			d.Slug = drafts.Slugify(draftOpts.slug)
		}
		if flags.Changed("excerpt") {
			d.Excerpt = draftOpts.excerpt
		}
		if flags.Changed("tags") {
			d.Tags = drafts.ParseTags(draftOpts.tags)
		}
		if flags.Changed("date") {
			d.Date = draftOpts.date
		}
		if flags.Changed("cover") {
			d.Cover = draftOpts.cover
		}
		if draftOpts.file != "" {
			body, err := readSource(cmd.InOrStdin(), draftOpts.file)
			if err != nil {
				return err
			}
			d.Markdown = body
		}

		if _, err := store.Save(d); err != nil {
			return err
		}
		output.NewPrinter(cmd.OutOrStdout(), false).Success("saved draft %s", d.Slug)
		return nil
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print a draft's Markdown, or its rendered preview with --html",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := draftStore().Get(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !draftOpts.html {
			_, err := fmt.Fprintln(out, d.Markdown)
			return err
		}
		html, err := markdown.NewRenderer().Render(d.Item().Body)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, html)
		return err
	},
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := draftStore().Delete(args[0]); err != nil {
			return err
		}
		output.NewPrinter(cmd.OutOrStdout(), false).Success("deleted draft %s", args[0])
		return nil
	},
}

var draftExportCmd = &cobra.Command{
	Use:   "export <slug>",
	Short: "Export a draft as JSON (to <slug>.json in --dir, or stdout with --dir -)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := draftStore().Get(args[0])
		if err != nil {
			return err
		}
		if draftOpts.exportTo == "-" {
			return drafts.Export(cmd.OutOrStdout(), d)
		}
		path := filepath.Join(draftOpts.exportTo, drafts.ExportName(d))
		if err := writeFile(path, func(w io.Writer) error { return drafts.Export(w, d) }); err != nil {
			return err
		}
		output.NewPrinter(cmd.OutOrStdout(), false).Success("exported %s", path)
		return nil
	},
}

func readSource(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read markdown from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown file %s: %w", name, err)
	}
	return string(data), nil
}

func init() {
	f := draftSaveCmd.Flags()
	f.StringVar(&draftOpts.title, "title", "", "draft title (also generates the slug)")
	f.StringVar(&draftOpts.slug, "slug", "", "explicit slug")
	f.StringVar(&draftOpts.excerpt, "excerpt", "", "short summary; derived from the body when empty")
	f.StringVar(&draftOpts.tags, "tags", "", "comma separated tags")
	f.StringVar(&draftOpts.date, "date", "", "date as YYYY-MM-DD (default today)")
	f.StringVar(&draftOpts.cover, "cover", "", "cover image URL")
	f.StringVarP(&draftOpts.file, "file", "f", "", "markdown body file, or - for stdin")

	draftShowCmd.Flags().BoolVar(&draftOpts.html, "html", false, "render the Markdown to sanitized HTML")
	draftExportCmd.Flags().StringVar(&draftOpts.exportTo, "dir", ".", "directory to write the export to, or - for stdout")

	draftCmd.AddCommand(draftListCmd, draftSaveCmd, draftShowCmd, draftDeleteCmd, draftExportCmd)
	rootCmd.AddCommand(draftCmd)
}
