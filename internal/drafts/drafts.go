// Package drafts stores blog post drafts written in the editor.
package drafts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Bitlatte/showcase/internal/markdown"
	"github.com/Bitlatte/showcase/internal/model"
)

// StorageKey is the KV key holding the serialized draft list.
const StorageKey = "userBlogs"

const (
	DefaultCover    = "/generic-book-cover.png"
	DefaultMarkdown = "# New Post\n\nWrite your content here..."
)

var (
	ErrNotFound     = errors.New("draft not found")
	ErrMissingTitle = errors.New("please add a title to generate a slug")
)

type Draft struct {
	Type     model.Kind `json:"type"`
	Title    string     `json:"title"`
	Slug     string     `json:"slug"`
	Excerpt  string     `json:"excerpt"`
	Tags     []string   `json:"tags"`
	Date     string     `json:"date"`
	Cover    string     `json:"cover,omitempty"`
	Markdown string     `json:"markdown"`
}

// New returns an empty draft dated now.
func New(now time.Time) Draft {
	return Draft{
		Type:     model.KindBlog,
		Tags:     []string{},
		Date:     now.Format("2006-01-02"),
		Cover:    DefaultCover,
		Markdown: DefaultMarkdown,
	}
}

// SetTitle updates the title and regenerates the slug from it.
func (d *Draft) SetTitle(title string) {
	d.Title = title
	d.Slug = Slugify(title)
}

// AutoExcerpt fills an empty excerpt from the first paragraph line.
func (d *Draft) AutoExcerpt() {
	if d.Excerpt == "" {
		d.Excerpt = markdown.Excerpt(d.Markdown)
	}
}

// Item converts the draft into a content item for previewing.
func (d Draft) Item() model.ContentItem {
	return model.ContentItem{
		Kind:    model.KindBlog,
		Slug:    d.Slug,
		Title:   d.Title,
		Excerpt: d.Excerpt,
		Tags:    d.Tags,
		Date:    d.Date,
		Cover:   d.Cover,
		Body:    d.Markdown,
	}
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpace   = regexp.MustCompile(`\s+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Slugify lowercases s, drops everything but ASCII letters, digits, spaces
// and dashes, and joins words with single dashes.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpace.ReplaceAllString(s, "-")
	return slugDashes.ReplaceAllString(s, "-")
}

// ParseTags splits a comma separated list, trimming blanks.
func ParseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Store is the draft list persisted under StorageKey.
type Store struct {
	kv     KV
	logger *zap.Logger
}

func NewStore(kv KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// List returns all drafts, most recently created first. A corrupt stored
// value reads as an empty list.
func (s *Store) List() ([]Draft, error) {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []Draft{}, nil
	}
	var list []Draft
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("stored drafts are unreadable, starting empty", zap.Error(err))
		return []Draft{}, nil
	}
	return list, nil
}

func (s *Store) write(list []Draft) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode drafts: %w", err)
	}
	return s.kv.Set(StorageKey, string(data))
}

// Get loads the draft with slug.
func (s *Store) Get(slug string) (Draft, error) {
	list, err := s.List()
	if err != nil {
		return Draft{}, err
	}
	for _, d := range list {
		if d.Slug == slug {
			return d, nil
		}
	}
	return Draft{}, fmt.Errorf("%q: %w", slug, ErrNotFound)
}

// Save replaces the draft with the same slug in place, or puts d at the
// front of the list when the slug is new. Title and slug are required.
func (s *Store) Save(d Draft) ([]Draft, error) {
	if d.Title == "" || d.Slug == "" {
		return nil, ErrMissingTitle
	}
	d.Type = model.KindBlog
	d.AutoExcerpt()

	list, err := s.List()
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range list {
		if list[i].Slug == d.Slug {
			list[i] = d
			replaced = true
			break
		}
	}
	if !replaced {
		list = append([]Draft{d}, list...)
	}
	if err := s.write(list); err != nil {
		return nil, err
	}
	s.logger.Info("draft saved", zap.String("slug", d.Slug), zap.Bool("new", !replaced))
	return list, nil
}

// Delete removes the draft with slug.
func (s *Store) Delete(slug string) ([]Draft, error) {
	list, err := s.List()
	if err != nil {
		return nil, err
	}
	next := make([]Draft, 0, len(list))
	for _, d := range list {
		if d.Slug != slug {
			next = append(next, d)
		}
	}
	if len(next) == len(list) {
		return nil, fmt.Errorf("%q: %w", slug, ErrNotFound)
	}
	if err := s.write(next); err != nil {
		return nil, err
	}
	s.logger.Info("draft deleted", zap.String("slug", slug))
	return next, nil
}

// Export writes d as indented JSON.
func Export(w io.Writer, d Draft) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// ExportName is the download file name for d.
func ExportName(d Draft) string {
	if d.Slug == "" {
		return "blog-draft.json"
	}
	return d.Slug + ".json"
}
