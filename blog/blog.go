// Package blog reads markdown posts from a directory and renders them to HTML.
package blog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const postExt = ".md"

// Post is one rendered article.
type Post struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	PublishedAt string `json:"publishedAt"` // as written in the front matter
	Content     string `json:"-"`           // HTML body

	// Date is PublishedAt parsed; zero when it could not be read.
	Date time.Time `json:"-"`
}

// dateLayouts are tried in order when reading publishedAt.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Store lists and renders the posts in one directory. Errors never reach the
// caller: an unreadable post is logged and treated as missing.
type Store struct {
	fs       afero.Fs
	dir      string
	renderer *Renderer
	log      zerolog.Logger
}

func NewStore(fsys afero.Fs, dir string, logger zerolog.Logger) *Store {
	return &Store{
		fs:       fsys,
		dir:      dir,
		renderer: NewRenderer(),
		log:      logger.With().Str("component", "blog").Str("dir", dir).Logger(),
	}
}

// Slugs returns the slug of every markdown file in the directory, sorted.
func (s *Store) Slugs() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("read posts directory: %w", err)
	}

	var slugs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), postExt) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), postExt))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// BySlug returns the post stored as <slug>.md. A missing or broken post
// yields nil with no error.
func (s *Store) BySlug(slug string) (*Post, error) {
	post, err := s.load(slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Str("slug", slug).Msg("post not found")
		} else {
			s.log.Error().Err(err).Str("slug", slug).Msg("error reading post")
		}
		return nil, nil
	}
	return post, nil
}

// All returns every readable post, newest first. Posts with an unreadable
// date sort after all dated posts.
func (s *Store) All() []Post {
	slugs, err := s.Slugs()
	if err != nil {
		s.log.Error().Err(err).Msg("error reading posts directory")
		return []Post{}
	}

	posts := make([]Post, 0, len(slugs))
	for _, slug := range slugs {
		post, _ := s.BySlug(slug)
		if post == nil {
			continue
		}
		posts = append(posts, *post)
	}

	SortNewestFirst(posts)
	return posts
}

// Recent returns at most n posts from All.
func (s *Store) Recent(n int) []Post {
	posts := s.All()
	if n < 0 {
		n = 0
	}
	if n < len(posts) {
		posts = posts[:n]
	}
	return posts
}

func (s *Store) load(slug string) (*Post, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) || strings.HasPrefix(slug, ".") {
		return nil, fmt.Errorf("invalid slug %q: %w", slug, fs.ErrNotExist)
	}

	src, err := afero.ReadFile(s.fs, path.Join(s.dir, slug+postExt))
	if err != nil {
		return nil, err
	}

	html, fm, err := s.renderer.Render(src)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", slug, err)
	}

	post := &Post{
		Slug:        slug,
		Title:       stringField(fm, "title"),
		Excerpt:     stringField(fm, "excerpt"),
		PublishedAt: stringField(fm, "publishedAt"),
		Content:     html,
	}
	post.Date = parseDate(post.PublishedAt)
	if t, ok := fm["publishedAt"].(time.Time); ok {
		post.Date = t
	}
	return post, nil
}

// stringField reads a front matter value as text; absent keys read as "".
func stringField(fm map[string]interface{}, key string) string {
	switch v := fm[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortNewestFirst orders posts by date, newest first. Undated posts go last
// and ties keep slug order.
func SortNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].Date, posts[j].Date
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.After(b)
	})
}
