// Package byline coordinates loading content and rendering article bylines.
//
// # Overview
//
// The Builder handles the complete process:
//  1. Load the content store (articles and authors tables)
//  2. Resolve each article's author slugs
//  3. Render bylines concurrently in the configured format
//  4. Optionally write one fragment file per article
//
// # Basic Usage
//
//	settings := config.DefaultSettings()
//	builder, err := byline.NewBuilder(settings, func(event byline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := builder.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := builder.Build(ctx)
//
// # Progress Events
//
// Events have different levels:
//   - LevelInfo: General information
//   - LevelVerbose: Per-article details
//   - LevelWarning: Non-fatal issues such as unknown author slugs
//   - LevelError: Articles that could not be rendered
//   - LevelSuccess: Completed operations
//
// # Concurrency
//
// MaxConcurrentReads limits parallel document reads and
// MaxConcurrentRenders limits parallel byline rendering.
package byline
