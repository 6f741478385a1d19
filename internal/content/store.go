package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	ioutils "github.com/handiism/embedrs/internal/io"
	"github.com/handiism/embedrs/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	// TableArticles is the directory holding articles.
	TableArticles = "articles"

	// TableAuthors is the directory holding author records.
	TableAuthors = "authors"

	// TablePages is the directory holding standalone pages.
	TablePages = "pages"
)

var (
	// ErrUnknownAuthor is returned when an article names an author slug that
	// has no record in the authors table.
	ErrUnknownAuthor = errors.New("unknown author")

	// ErrInvalidSlug is returned for slugs that would leave their table directory.
	ErrInvalidSlug = errors.New("invalid slug")
)

// articleHeader accepts both "authors" and the older "author_ids" key.
type articleHeader struct {
	Title          string            `json:"title" toml:"title"`
	Date           Timestamp         `json:"date" toml:"date"`
	Authors        []string          `json:"authors,omitempty" toml:"authors"`
	AuthorIDs      []string          `json:"author_ids,omitempty" toml:"author_ids"`
	ContributorIDs []string          `json:"contributor_ids,omitempty" toml:"contributor_ids"`
	Contributors   []model.NamedLink `json:"contributors,omitempty" toml:"contributors"`
	Discussions    []model.NamedLink `json:"discussions,omitempty" toml:"discussions"`
	Tags           []string          `json:"tags,omitempty" toml:"tags"`
	Draft          bool              `json:"draft,omitempty" toml:"draft"`
}

type pageHeader struct {
	Title string `json:"title" toml:"title"`
}

type authorHeader struct {
	Name     string `json:"name" toml:"name"`
	Homepage string `json:"homepage" toml:"homepage"`
}

// Store is a read-mostly view over a content directory.
//
// Load replaces the store's contents; the accessors are safe to call
// concurrently with each other.
type Store struct {
	maxConcurrent int

	mu       sync.RWMutex
	root     string
	articles []*model.Article
	authors  map[string]*model.Author
	pages    map[string]*model.Page
}

// NewStore creates an empty Store that reads up to maxConcurrent files at once.
// Values below 1 mean one file at a time.
func NewStore(maxConcurrent int) *Store {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Store{
		maxConcurrent: maxConcurrent,
		authors:       make(map[string]*model.Author),
		pages:         make(map[string]*model.Page),
	}
}

// Load reads the articles, authors and pages tables below root.
//
// A missing table is treated as empty. The first document that fails to
// parse aborts the load and leaves the store unchanged.
func (s *Store) Load(ctx context.Context, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content root %s is not a directory", root)
	}

	articlePaths, err := listTable(filepath.Join(root, TableArticles))
	if err != nil {
		return err
	}
	authorPaths, err := listTable(filepath.Join(root, TableAuthors))
	if err != nil {
		return err
	}
	pagePaths, err := listTable(filepath.Join(root, TablePages))
	if err != nil {
		return err
	}

	articles := make([]*model.Article, len(articlePaths))
	authors := make([]*model.Author, len(authorPaths))
	pages := make([]*model.Page, len(pagePaths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, path := range articlePaths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			article, err := readArticle(root, path)
			if err != nil {
				return err
			}
			articles[i] = article
			return nil
		})
	}
	for i, path := range authorPaths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			author, err := readAuthor(root, path)
			if err != nil {
				return err
			}
			authors[i] = author
			return nil
		})
	}
	for i, path := range pagePaths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := readPage(root, path)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slices.SortFunc(articles, compareArticles)

	byslug := make(map[string]*model.Author, len(authors))
	for _, a := range authors {
		byslug[a.Slug] = a
	}

	pagesBySlug := make(map[string]*model.Page, len(pages))
	for _, p := range pages {
		pagesBySlug[p.Slug] = p
	}

	s.mu.Lock()
	s.root = root
	s.articles = articles
	s.authors = byslug
	s.pages = pagesBySlug
	s.mu.Unlock()

	return nil
}

// Root returns the directory of the last successful Load.
func (s *Store) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Articles returns all articles, newest first. Articles with the same date
// are ordered by slug.
func (s *Store) Articles() []*model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.articles)
}

// Published returns the articles that are not drafts, newest first.
func (s *Store) Published() []*model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var published []*model.Article
	for _, a := range s.articles {
		if !a.Draft {
			published = append(published, a)
		}
	}
	return published
}

// Article looks up an article by slug.
func (s *Store) Article(slug string) (*model.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return nil, false
}

// Author looks up an author by slug.
func (s *Store) Author(slug string) (*model.Author, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.authors[slug]
	return a, ok
}

// Authors returns every author record sorted by display name.
func (s *Store) Authors() []model.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]model.Author, 0, len(s.authors))
	for _, a := range s.authors {
		all = append(all, *a)
	}
	slices.SortFunc(all, func(a, b model.Author) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return all
}

// Page looks up a page by slug.
func (s *Store) Page(slug string) (*model.Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pages[slug]
	return p, ok
}

// Pages returns every page sorted by slug.
func (s *Store) Pages() []*model.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.Page, 0, len(s.pages))
	for _, p := range s.pages {
		all = append(all, p)
	}
	slices.SortFunc(all, func(a, b *model.Page) int {
		return strings.Compare(a.Slug, b.Slug)
	})
	return all
}

// AuthorsOf resolves the author slugs of article in front matter order.
// Every unknown slug is reported, wrapped around ErrUnknownAuthor.
func (s *Store) AuthorsOf(article *model.Article) ([]model.Author, error) {
	return s.resolve(article.Slug, article.Authors)
}

// ContributorsOf returns the links of everyone credited as a contributor:
// the authors named by ContributorIDs, in front matter order, followed by
// the inline Contributors. Unknown slugs are reported like in AuthorsOf,
// and the known contributors are still returned.
func (s *Store) ContributorsOf(article *model.Article) ([]model.NamedLink, error) {
	authors, err := s.resolve(article.Slug, article.ContributorIDs)
	links := append(model.Links(authors), article.Contributors...)
	if len(links) == 0 {
		links = nil
	}
	return links, err
}

func (s *Store) resolve(articleSlug string, slugs []string) ([]model.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		authors []model.Author
		missing []string
	)
	for _, slug := range slugs {
		a, ok := s.authors[slug]
		if !ok {
			missing = append(missing, slug)
			continue
		}
		authors = append(authors, *a)
	}
	if len(missing) > 0 {
		return authors, fmt.Errorf("%w in %s: %s", ErrUnknownAuthor, articleSlug, strings.Join(missing, ", "))
	}
	return authors, nil
}

// ValidSlug reports whether slug names a document inside its table
// directory: non-empty, relative, and without "." or ".." segments.
func ValidSlug(slug string) bool {
	if slug == "" || strings.Contains(slug, `\`) {
		return false
	}
	for _, seg := range strings.Split(slug, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return filepath.IsLocal(filepath.FromSlash(slug))
}

// WriteArticle stores article as a JSON front matter document below root.
// The file is named after the slug with a ".md" extension. Slugs that
// would leave the articles directory are rejected with ErrInvalidSlug.
func WriteArticle(ctx context.Context, root string, article *model.Article) error {
	if !ValidSlug(article.Slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, article.Slug)
	}

	header := articleHeader{
		Title:          article.Title,
		Date:           Timestamp{article.Date},
		Authors:        article.Authors,
		ContributorIDs: article.ContributorIDs,
		Contributors:   article.Contributors,
		Discussions:    article.Discussions,
		Tags:           article.Tags,
		Draft:          article.Draft,
	}
	data, err := EncodeDocument(header, article.Body)
	if err != nil {
		return err
	}

	path := filepath.Join(root, TableArticles, filepath.FromSlash(article.Slug)+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, fs.ErrExist)
	}
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return ioutils.WriteFile(ctx, path, data)
}

func compareArticles(a, b *model.Article) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}

// listTable returns the document files below dir, skipping hidden entries.
func listTable(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return paths, nil
}

func slugFor(tableDir, path string) string {
	rel, err := filepath.Rel(tableDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}

func readDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func readArticle(root, path string) (*model.Article, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	var h articleHeader
	if err := doc.Decode(&h); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &model.Article{
		Slug:           slugFor(filepath.Join(root, TableArticles), path),
		Title:          h.Title,
		Date:           h.Date.Time,
		Authors:        append(h.Authors, h.AuthorIDs...),
		ContributorIDs: h.ContributorIDs,
		Contributors:   h.Contributors,
		Discussions:    h.Discussions,
		Tags:           h.Tags,
		Draft:          h.Draft,
		Body:           doc.Body,
	}, nil
}

func readPage(root, path string) (*model.Page, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	var h pageHeader
	if err := doc.Decode(&h); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &model.Page{
		Slug:  slugFor(filepath.Join(root, TablePages), path),
		Title: h.Title,
		Body:  doc.Body,
	}, nil
}

func readAuthor(root, path string) (*model.Author, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	var h authorHeader
	if err := doc.Decode(&h); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &model.Author{
		Slug:     slugFor(filepath.Join(root, TableAuthors), path),
		Name:     h.Name,
		Homepage: h.Homepage,
		Bio:      doc.Body,
	}, nil
}
