package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/handiism/embedrs/internal/byline"
	"github.com/handiism/embedrs/internal/config"
	"github.com/handiism/embedrs/internal/content"
	"github.com/handiism/embedrs/internal/model"
	"github.com/joho/godotenv"
)

// options holds the command line. set records the flags given
// explicitly, so that empty or false values can still override settings.
type options struct {
	content string
	output  string
	config  string
	format  string
	sep     string
	noAnd   bool
	lang    string
	drafts  bool
	verbose bool
	dryRun  bool

	newSlug string
	title   string
	authors string

	args []string
	set  map[string]bool
}

func parseFlags(args []string) (*options, error) {
	var o options
	fs := flag.NewFlagSet("embedrs", flag.ContinueOnError)

	fs.StringVar(&o.content, "content", "", "Content directory (overrides config)")
	fs.StringVar(&o.output, "out", "", "Write one byline fragment per article into this directory")
	fs.StringVar(&o.config, "config", "", "Path to config file")
	fs.StringVar(&o.format, "format", "", "Output format: html, markdown or text")
	fs.StringVar(&o.sep, "sep", "", "Separator between names")
	fs.BoolVar(&o.noAnd, "no-and", false, "Join all names with the separator, never with \"and\"")
	fs.StringVar(&o.lang, "lang", "", "Language for the conjunction, e.g. en, de, fr")
	fs.BoolVar(&o.drafts, "drafts", false, "Include draft articles")
	fs.BoolVar(&o.verbose, "verbose", false, "Show verbose output")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Load content without rendering")

	fs.StringVar(&o.newSlug, "new", "", "Create a new article with this slug and exit")
	fs.StringVar(&o.title, "title", "", "Title for -new")
	fs.StringVar(&o.authors, "authors", "", "Comma-separated author slugs for -new")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o.args = fs.Args()
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})
	return &o, nil
}

// apply overrides settings with the flags given on the command line.
func (o *options) apply(settings *config.Settings) {
	if o.content != "" {
		settings.ContentPath = o.content
	} else if len(o.args) > 0 {
		settings.ContentPath = o.args[0]
	}
	if o.output != "" {
		settings.OutputPath = o.output
	}
	if o.format != "" {
		settings.OutputFormat = o.format
	}
	if o.set["sep"] {
		settings.Separator = o.sep
	}
	if o.set["no-and"] {
		settings.UseAnd = !o.noAnd
	}
	if o.lang != "" {
		settings.Language = o.lang
	}
	if o.set["drafts"] {
		settings.IncludeDrafts = o.drafts
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && opts.verbose {
		fmt.Println("No .env file found, using environment variables")
	}

	// Load config
	settings := config.DefaultSettings()
	if opts.config != "" {
		settings, err = config.Load(opts.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts.apply(settings)

	// Handle interrupts
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if opts.newSlug != "" {
		if err := createArticle(ctx, settings.ContentPath, opts.newSlug, opts.title, opts.authors); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating article: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s\n", opts.newSlug)
		return
	}

	builder, err := byline.NewBuilder(settings, func(event byline.ProgressEvent) {
		if event.Level == byline.LevelVerbose && !opts.verbose {
			return
		}

		var prefix string
		switch event.Level {
		case byline.LevelError:
			prefix = "error: "
		case byline.LevelWarning:
			prefix = "warning: "
		case byline.LevelSuccess:
			prefix = "ok: "
		case byline.LevelInfo:
			prefix = "info: "
		default:
			prefix = "  "
		}

		fmt.Fprintln(os.Stderr, prefix+event.Message)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := builder.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	if opts.dryRun {
		for _, title := range builder.GetArticleTitles() {
			fmt.Println(title)
		}
		return
	}

	results, err := builder.Build(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during render: %v\n", err)
		os.Exit(1)
	}

	// Fragments on disk replace printing.
	if settings.OutputPath == "" {
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			fmt.Printf("%s\n%s\n\n", r.Article.Slug, r.Byline)
		}
	}

	if _, failed, _ := builder.GetProgress(); failed > 0 {
		os.Exit(1)
	}
}

func createArticle(ctx context.Context, root, slug, title, authors string) error {
	article := &model.Article{
		Slug:  slug,
		Title: title,
		Date:  time.Now().UTC().Truncate(24 * time.Hour),
		Draft: true,
	}
	for _, a := range strings.Split(authors, ",") {
		if a = strings.TrimSpace(a); a != "" {
			article.Authors = append(article.Authors, a)
		}
	}
	return content.WriteArticle(ctx, root, article)
}
