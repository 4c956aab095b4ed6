package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/showcase/internal/listing"
	"github.com/Bitlatte/showcase/internal/output"
)

var listOpts struct {
	query   string
	kind    string
	tag     string
	sort    string
	visible int
	format  string
	noColor bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Search, filter and sort the content collection",
	Example: `  showcase list --type blog
  showcase list --query dark
  showcase list --tag nextjs --sort az --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := listStateFromFlags()
		if err != nil {
			return err
		}
		store, err := loadStore()
		if err != nil {
			return err
		}
		res := listing.Run(store.Snapshot().Items, state)

		out := cmd.OutOrStdout()
		switch listOpts.format {
		case "table":
			p := output.NewPrinter(out, !listOpts.noColor)
			p.Header(appConfig.SiteTitle)
			return p.Listing(res)
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		case "yaml":
			data, err := yaml.Marshal(res)
			if err != nil {
				return fmt.Errorf("failed to encode listing: %w", err)
			}
			_, err = out.Write(data)
			return err
		}
		return fmt.Errorf("invalid format %q: must be table, json or yaml", listOpts.format)
	},
}

// listStateFromFlags builds the view state by replaying the flags as
// actions on the default state.
func listStateFromFlags() (listing.ViewState, error) {
	s := listing.DefaultViewState()
	if listOpts.query != "" {
		s = listing.Reduce(s, listing.SetQuery{Query: listOpts.query})
	}
	if listOpts.kind != "" {
		t, ok := listing.ParseTypeFilter(listOpts.kind)
		if !ok {
			return s, fmt.Errorf("invalid type %q: must be all, blog or project", listOpts.kind)
		}
		s = listing.Reduce(s, listing.SetType{Type: t})
	}
	if listOpts.tag != "" {
		s = listing.Reduce(s, listing.SetTag{Tag: listOpts.tag})
	}
	if listOpts.sort != "" {
		o, ok := listing.ParseSortOrder(listOpts.sort)
		if !ok {
			return s, fmt.Errorf("invalid sort %q: must be newest, oldest or alphabetical", listOpts.sort)
		}
		s = listing.Reduce(s, listing.SetSort{Sort: o})
	}
	for s.Visible < listOpts.visible {
		s = listing.Reduce(s, listing.LoadMore{})
	}
	return s, nil
}

func init() {
	f := listCmd.Flags()
	f.StringVarP(&listOpts.query, "query", "q", "", "case-insensitive search over titles and tags")
	f.StringVarP(&listOpts.kind, "type", "t", "", "type filter: all, blog or project")
	f.StringVar(&listOpts.tag, "tag", "", "exact tag filter")
	f.StringVarP(&listOpts.sort, "sort", "s", "", "sort order: newest, oldest or alphabetical (az)")
	f.IntVar(&listOpts.visible, "visible", listing.PageSize, "minimum number of items to show, rounded up to a whole page")
	f.StringVarP(&listOpts.format, "format", "o", "table", "output format: table, json or yaml")
	f.BoolVar(&listOpts.noColor, "no-color", false, "disable coloured output")
	rootCmd.AddCommand(listCmd)
}
