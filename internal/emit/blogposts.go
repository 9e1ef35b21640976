package emit

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/slug"
)

type blogCategory struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type blogAuthor struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

type blogImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type blogSEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
	Canonical       string `json:"canonical"`
}

// BlogPost is one stub post of data/blog-posts.json.
type BlogPost struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Excerpt     string       `json:"excerpt"`
	Content     string       `json:"content"`
	Date        string       `json:"date"`
	PublishedAt string       `json:"publishedAt"`
	UpdatedAt   string       `json:"updatedAt"`
	Author      blogAuthor   `json:"author"`
	Category    blogCategory `json:"category"`
	Tags        []string     `json:"tags"`
	Image       blogImage    `json:"image"`
	ReadTime    string       `json:"readTime"`
	Featured    bool         `json:"featured"`
	Status      string       `json:"status"`
	SEO         blogSEO      `json:"seo"`
}

// BlogDocument is the full data/blog-posts.json document.
type BlogDocument struct {
	Categories []blogCategory `json:"categories"`
	Tags       []string       `json:"tags"`
	BlogPosts  []BlogPost     `json:"blogPosts"`
}

// BlogPosts writes data/blog-posts.json with a stub post per blog topic.
// It is off by default since the posts are usually maintained by hand.
type BlogPosts struct{}

func (BlogPosts) Name() string { return "blog-posts" }

func (BlogPosts) Path(p config.PathsConfig) string { return filepath.Join(p.DataDir, "blog-posts.json") }

func (b BlogPosts) Emit(ctx *Context) (Result, error) {
	return writeJSON(b.Name(), b.Path(ctx.Paths), BuildBlog(ctx))
}

// BuildBlog returns the blog document for the record's BLOG_TOPICS.
func BuildBlog(ctx *Context) BlogDocument {
	d := ctx.Defaults
	name := ctx.businessName()
	keyword := ctx.primaryKeyword()
	kwLower := slug.Lower(keyword)
	date := dateOnly(d.LastUpdated)
	category := blogCategory{
		Slug:        slug.Keyword(keyword),
		Name:        keyword,
		Description: "Tips and guides for " + kwLower,
	}

	tagSet := map[string]struct{}{}
	posts := make([]BlogPost, 0)
	for i, topic := range ctx.Record.BlogTopics() {
		id := slug.PostID(topic)
		lower := slug.Lower(topic)
		tags := []string{id, kwLower}
		for _, t := range tags {
			tagSet[t] = struct{}{}
		}
		posts = append(posts, BlogPost{
			ID:          id,
			Slug:        id,
			Title:       topic,
			Excerpt:     fmt.Sprintf("Expert advice and tips about %s. Learn from our professional team's experience in the industry.", lower),
			Content:     fmt.Sprintf("# %s\n\nComprehensive guide to %s. Contact %s for professional %s.\n\n[Content to be added]", topic, lower, name, kwLower),
			Date:        date,
			PublishedAt: date,
			UpdatedAt:   date,
			Author: blogAuthor{
				Name:   name,
				Bio:    fmt.Sprintf("Professional %s experts", kwLower),
				Avatar: d.PlaceholderImage,
			},
			Category: category,
			Tags:     tags,
			Image:    blogImage{URL: d.PlaceholderImage, Alt: topic, Width: 1200, Height: 630},
			ReadTime: "5 min read",
			Featured: i == 0,
			Status:   "published",
			SEO: blogSEO{
				MetaTitle:       topic + " | " + name,
				MetaDescription: fmt.Sprintf("Expert advice about %s. Professional %s tips and guides.", lower, kwLower),
				Keywords:        lower + ", " + kwLower,
				Canonical:       "/blog/" + id,
			},
		})
	}

	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return BlogDocument{Categories: []blogCategory{category}, Tags: tags, BlogPosts: posts}
}

// dateOnly reduces an RFC 3339 timestamp to its date. Other values pass
// through unchanged.
func dateOnly(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Format(time.DateOnly)
	}
	return ts
}
