package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/showcase/internal/markdown"
	"github.com/Bitlatte/showcase/internal/model"
)

type frontMatter struct {
	Type    string   `yaml:"type"`
	Slug    string   `yaml:"slug"`
	Title   string   `yaml:"title"`
	Excerpt string   `yaml:"excerpt"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Date    string   `yaml:"date"`
	Cover   string   `yaml:"cover"`
}

// Load returns the collection under dir, or the built-in sample when dir is
// empty.
func Load(dir string, logger *zap.Logger) (model.ContentResponse, error) {
	if dir == "" {
		return Sample(), nil
	}
	return LoadDir(dir, logger)
}

// LoadDir reads every Markdown file below dir. The first path segment
// decides the kind ("blogs", "posts", "projects", ...) unless the
// frontmatter sets type explicitly. Files that resolve to neither kind are
// skipped with a warning.
func LoadDir(dir string, logger *zap.Logger) (model.ContentResponse, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := os.Stat(dir); err != nil {
		return model.ContentResponse{}, fmt.Errorf("content directory '%s' not accessible: %w", dir, err)
	}

	res := model.ContentResponse{Blogs: []model.ContentItem{}, Projects: []model.ContentItem{}}
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		fileBytes, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", path, err)
		}

		rel, _ := filepath.Rel(dir, path)
		item := parseItem(rel, fileBytes, logger)

		switch item.Kind {
		case model.KindBlog:
			res.Blogs = append(res.Blogs, item)
		case model.KindProject:
			res.Projects = append(res.Projects, item)
		default:
			logger.Warn("skipping content file with unknown type", zap.String("path", path))
		}
		return nil
	})
	if walkErr != nil {
		return model.ContentResponse{}, fmt.Errorf("error during content collection walk: %w", walkErr)
	}

	if err := Validate(res); err != nil {
		return model.ContentResponse{}, err
	}
	logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("blogs", len(res.Blogs)),
		zap.Int("projects", len(res.Projects)),
	)
	return res, nil
}

func parseItem(rel string, raw []byte, logger *zap.Logger) model.ContentItem {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		logger.Warn("could not parse frontmatter, treating as pure markdown",
			zap.String("path", rel), zap.Error(err))
		body = raw
		fm = frontMatter{}
	}

	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))

	kind, _ := model.ParseKind(fm.Type)
	if kind == "" {
		parts := strings.Split(filepath.Dir(rel), string(filepath.Separator))
		kind = kindFromDir(parts[0])
	}

	slug := fm.Slug
	if slug == "" {
		slug = base
	}

	title := fm.Title
	if title == "" {
		title = titleFromName(base)
	}

	excerpt := fm.Excerpt
	if excerpt == "" {
		excerpt = fm.Summary
	}
	if excerpt == "" {
		excerpt = markdown.Excerpt(string(body))
	}

	if _, ok := model.ParseDate(fm.Date); fm.Date != "" && !ok {
		logger.Warn("could not parse date, item will sort as undated",
			zap.String("path", rel), zap.String("date", fm.Date))
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.ContentItem{
		Kind:    kind,
		Slug:    slug,
		Title:   title,
		Excerpt: excerpt,
		Tags:    tags,
		Date:    fm.Date,
		Cover:   fm.Cover,
		Body:    string(body),
	}
}

func kindFromDir(dir string) model.Kind {
	switch strings.ToLower(dir) {
	case "blog", "blogs", "post", "posts":
		return model.KindBlog
	case "project", "projects":
		return model.KindProject
	}
	return ""
}

func titleFromName(name string) string {
	t := strings.ReplaceAll(strings.ReplaceAll(name, "-", " "), "_", " ")
	return cases.Title(language.English).String(t)
}
