package byline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/handiism/embedrs/internal/config"
	"github.com/handiism/embedrs/internal/content"
	ioutils "github.com/handiism/embedrs/internal/io"
	"github.com/handiism/embedrs/internal/model"
	"github.com/handiism/embedrs/internal/templates"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a build progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result is the rendered byline of one article.
type Result struct {
	Article *model.Article

	// Byline is the rendered fragment; empty when Err is set.
	Byline string

	// Path is the fragment file written, if an output path is configured.
	Path string

	Err error
}

// Builder loads a content directory and renders its bylines.
type Builder struct {
	settings *config.Settings
	store    *content.Store
	renderer *templates.Renderer

	articles []*model.Article
	rendered int32
	failed   int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewBuilder creates a Builder for settings. onProgress may be nil and is
// called from multiple goroutines during Build.
func NewBuilder(settings *config.Settings, onProgress func(ProgressEvent)) (*Builder, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	renderer, err := templates.NewRenderer(settings.OutputFormat, settings.ToListConfig())
	if err != nil {
		return nil, err
	}

	return &Builder{
		settings:   settings,
		store:      content.NewStore(settings.MaxConcurrentReads),
		renderer:   renderer,
		onProgress: onProgress,
	}, nil
}

// Initialize loads the content directory.
func (b *Builder) Initialize(ctx context.Context) error {
	b.progress(ProgressEvent{Message: fmt.Sprintf("Loading content from %s", b.settings.ContentPath), Level: LevelVerbose})

	if err := b.store.Load(ctx, b.settings.ContentPath); err != nil {
		return err
	}

	if b.settings.IncludeDrafts {
		b.articles = b.store.Articles()
	} else {
		b.articles = b.store.Published()
	}

	b.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d article(s) by %d author(s)", len(b.articles), len(b.store.Authors())),
		Level:   LevelInfo,
	})
	return nil
}

// Build renders the bylines of all initialized articles.
//
// Results are returned in article order (newest first). A failing article
// is reported in its Result and does not stop the others; the returned
// error is non-nil only when ctx is cancelled.
func (b *Builder) Build(ctx context.Context) ([]Result, error) {
	atomic.StoreInt32(&b.rendered, 0)
	atomic.StoreInt32(&b.failed, 0)

	results := make([]Result, len(b.articles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.settings.MaxConcurrentRenders))

	for i, article := range b.articles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = b.buildArticle(ctx, article)
			if results[i].Err != nil {
				atomic.AddInt32(&b.failed, 1)
				b.progress(ProgressEvent{Message: fmt.Sprintf("Error rendering %s: %v", article.Slug, results[i].Err), Level: LevelError})
				return nil // Continue with other articles
			}
			atomic.AddInt32(&b.rendered, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	if failed := atomic.LoadInt32(&b.failed); failed > 0 {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Rendered %d byline(s), %d failed", atomic.LoadInt32(&b.rendered), failed), Level: LevelWarning})
	} else {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Rendered %d byline(s)", len(results)), Level: LevelSuccess})
	}

	return results, nil
}

// GetProgress returns how many articles have been rendered or have failed,
// out of the total.
func (b *Builder) GetProgress() (rendered, failed, total int32) {
	return atomic.LoadInt32(&b.rendered), atomic.LoadInt32(&b.failed), int32(len(b.articles))
}

// GetArticleTitles returns "title (slug)" for all initialized articles.
func (b *Builder) GetArticleTitles() []string {
	titles := make([]string, len(b.articles))
	for i, article := range b.articles {
		titles[i] = fmt.Sprintf("%s (%s)", article.Title, article.Slug)
	}
	return titles
}

// Store returns the loaded content store.
func (b *Builder) Store() *content.Store {
	return b.store
}

func (b *Builder) buildArticle(ctx context.Context, article *model.Article) Result {
	result := Result{Article: article}

	authors, err := b.store.AuthorsOf(article)
	if err != nil {
		if !errors.Is(err, content.ErrUnknownAuthor) {
			result.Err = err
			return result
		}
		b.progress(ProgressEvent{Message: err.Error(), Level: LevelWarning})
	}
	if len(authors) == 0 {
		b.progress(ProgressEvent{Message: fmt.Sprintf("No authors for %s", article.Slug), Level: LevelWarning})
	}

	contributors, err := b.store.ContributorsOf(article)
	if err != nil {
		if !errors.Is(err, content.ErrUnknownAuthor) {
			result.Err = err
			return result
		}
		b.progress(ProgressEvent{Message: err.Error(), Level: LevelWarning})
	}

	result.Byline, result.Err = b.renderer.Byline(article, authors, contributors)
	if result.Err != nil {
		return result
	}

	if b.settings.OutputPath != "" {
		path := ioutils.FragmentPath(b.settings.OutputPath, article.Slug, b.renderer.Ext())
		if err := ioutils.WriteFile(ctx, path, []byte(result.Byline+"\n")); err != nil {
			result.Err = fmt.Errorf("write %s: %w", path, err)
			return result
		}
		result.Path = path
	}

	b.progress(ProgressEvent{Message: fmt.Sprintf("Rendered: %s", article.Slug), Level: LevelVerbose})
	return result
}

func (b *Builder) progress(event ProgressEvent) {
	if b.onProgress == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onProgress(event)
}
