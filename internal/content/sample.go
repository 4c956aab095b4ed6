package content

import "github.com/Bitlatte/showcase/internal/model"

const demoBody = "\n# Markdown Demo\n\nThis page renders Markdown with **GFM**:\n\n" +
	"- Headings, bold/italic\n- Lists and quotes\n- Code blocks\n\n" +
	"```go\nfunc greet(name string) string { return \"Hello, \" + name + \"!\" }\n```\n\n" +
	"> Built with Go, goldmark and chi.\n"

const markdownBasicsBody = `
# Markdown basics for posts

## What is Markdown?
Markdown is a simple way to add formatting (like headings, bold, italic, links, and lists) to plain text.
Instead of using HTML tags, you use plain characters like ` + "`#`, `*`, and `[]()`" + ` that are easy to remember.

The best part? Markdown is supported almost everywhere: blogs, GitHub, Notion, and even some chat platforms.

### Quick examples
- ` + "`# Heading 1`, `## Heading 2`" + `
- ` + "`**bold**`, `*italic*`" + `
- Links: ` + "`[title](https://example.com)`" + `
- Lists: ` + "`- item`, `1. item`" + `
`

const swrBasicsBody = `
# SWR for fast data fetching

## What is SWR?
SWR stands for Stale-While-Revalidate, a caching strategy from HTTP RFC 5861.

- Stale: show cached (stale) data immediately.
- Revalidate: fetch the latest data in the background and update the UI when it arrives.

In simple terms: SWR gives you instant UI with background refreshes.

## Why use SWR?
A hand-rolled fetch can be clunky: the page may render empty first and you must write caching, refetching, and error handling yourself.

SWR provides out of the box:
- Built-in caching
- Automatic revalidation
- Request deduplication
- Real-time data syncing
- Easy integration with any API
`

// Sample returns the built-in collection served when no content directory
// is configured: five blog posts and five projects.
func Sample() model.ContentResponse {
	return model.ContentResponse{
		Blogs: []model.ContentItem{
			{
				Kind:    model.KindBlog,
				Slug:    "getting-started",
				Title:   "Getting Started with the Showcase",
				Excerpt: "Understand the structure and how to extend the app.",
				Tags:    []string{"guide", "nextjs"},
				Date:    "2025-08-01",
				Cover:   "/getting-started-cover.png",
				Body:    demoBody,
			},
			{
				Kind:    model.KindBlog,
				Slug:    "dark-mode",
				Title:   "Dark Mode with Tailwind",
				Excerpt: "Implement a dark mode toggle using next-themes.",
				Tags:    []string{"tailwind", "theme"},
				Date:    "2025-08-05",
				Cover:   "/dark-mode-cover.png",
				Body:    demoBody,
			},
			{
				Kind:    model.KindBlog,
				Slug:    "markdown-basics",
				Title:   "Markdown Basics for Posts",
				Excerpt: "Write rich content with headings, lists and code blocks.",
				Tags:    []string{"markdown", "content"},
				Date:    "2025-08-12",
				Cover:   "/markdown-basics.png",
				Body:    markdownBasicsBody,
			},
			{
				Kind:    model.KindBlog,
				Slug:    "swr-data-fetching",
				Title:   "SWR for Fast Data Fetching",
				Excerpt: "Leverage caching and revalidation for snappy UIs.",
				Tags:    []string{"swr", "data"},
				Date:    "2025-08-15",
				Cover:   "/swr-guide.png",
				Body:    swrBasicsBody,
			},
			{
				Kind:    model.KindBlog,
				Slug:    "routing-in-next-app-router",
				Title:   "Routing with the App Router",
				Excerpt: "Learn nested routes, dynamic segments, and API routes.",
				Tags:    []string{"nextjs", "routing"},
				Date:    "2025-08-20",
				Cover:   "/app-router.png",
				Body:    demoBody,
			},
		},
		Projects: []model.ContentItem{
			{
				Kind:    model.KindProject,
				Slug:    "notes-app",
				Title:   "Notes App",
				Excerpt: "A simple notes app with Markdown editing.",
				Tags:    []string{"app", "markdown"},
				Date:    "2025-08-08",
				Cover:   "/notes-app-cover.png",
				Body:    demoBody,
			},
			{
				Kind:    model.KindProject,
				Slug:    "planetary-api",
				Title:   "Planetary API",
				Excerpt: "Demo REST API for planets and satellites.",
				Tags:    []string{"api", "typescript"},
				Date:    "2025-08-10",
				Cover:   "/planetary-api-cover.png",
				Body:    demoBody,
			},
			{
				Kind:    model.KindProject,
				Slug:    "portfolio-site",
				Title:   "Portfolio Site",
				Excerpt: "A responsive portfolio built with Next.js and Tailwind.",
				Tags:    []string{"website", "tailwind"},
				Date:    "2025-08-18",
				Cover:   "/portfolio-site.png",
				Body:    demoBody,
			},
			{
				Kind:    model.KindProject,
				Slug:    "task-tracker",
				Title:   "Task Tracker",
				Excerpt: "CRUD task manager with filters and persistence.",
				Tags:    []string{"app", "crud"},
				Date:    "2025-08-22",
				Cover:   "/task-tracker.png",
				Body:    demoBody,
			},
			{
				Kind:    model.KindProject,
				Slug:    "image-optimizer",
				Title:   "Image Optimizer",
				Excerpt: "Optimize and compress images with a clean UI.",
				Tags:    []string{"tooling", "images"},
				Date:    "2025-08-25",
				Cover:   "/image-optimizer.png",
				Body:    demoBody,
			},
		},
	}
}
