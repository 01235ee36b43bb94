package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"listing-scraper/internal/classifier"
	"listing-scraper/internal/crawler"
	"listing-scraper/internal/downloader"
	"listing-scraper/internal/parser"
	"listing-scraper/internal/processor"
	"listing-scraper/internal/store"
	"listing-scraper/pkg/logger"
)

const (
	defaultDelay   = 1.0
	defaultLogFile = "scrape.log"
	fetchTimeout   = 15 * time.Second
	bodySizeCap    = 20 << 20 // 20MB
)

// main stays a thin shell so every exit path inside run releases the log
// file handle through its defer.
func main() {
	os.Exit(run())
}

func run() int {
	baseDir := flag.String("base-dir", "", "base directory to save listings (default from config file)")
	delay := flag.Float64("delay", defaultDelay, "delay between requests in seconds")
	input := flag.String("input", "", "optional URL list file (csv with 'url' column, ndjson, or one URL per line)")
	configPath := flag.String("config", store.DefaultConfigFile, "config file path")
	ledgerPath := flag.String("ledger", store.DefaultLedgerFile, "processed-URL ledger path")
	tagsPath := flag.String("tags", store.DefaultTagsFile, "tag definitions file path")
	logPath := flag.String("log", defaultLogFile, "log file path")
	flag.Parse()

	flagSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagSet[f.Name] = true })

	urls := flag.Args()
	if *input != "" {
		more, err := store.ReadURLs(*input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read input:", err)
			return 1
		}
		urls = append(urls, more...)
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cli [flags] URL [URL ...]")
		flag.PrintDefaults()
		return 2
	}

	// .env supplies environment defaults; flags still win
	_ = godotenv.Load()

	l, err := logger.NewFile(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer l.Close()

	cfgStore := store.NewConfigStore(*configPath)
	cfg, err := cfgStore.Load()
	if err != nil {
		l.Errorf("%v", err)
		return 1
	}

	// precedence: flag > environment > config file > built-in default
	if *baseDir != "" {
		cfg.BaseDir = *baseDir
	} else if env := os.Getenv("LISTINGS_BASE_DIR"); env != "" {
		cfg.BaseDir = env
	}
	if err := cfgStore.Save(cfg); err != nil {
		l.Errorf("%v", err)
		return 1
	}

	effectiveDelay := *delay
	if !flagSet["delay"] {
		if env := os.Getenv("LISTINGS_DELAY"); env != "" {
			if v, err := strconv.ParseFloat(env, 64); err == nil {
				effectiveDelay = v
			}
		}
	}
	userAgent := crawler.DefaultUserAgent
	if env := os.Getenv("LISTINGS_USER_AGENT"); env != "" {
		userAgent = env
	}

	tags, err := store.NewTagStore(*tagsPath).Load()
	if err != nil {
		l.Errorf("%v", err)
		return 1
	}
	ledger := store.NewLedgerStore(*ledgerPath)
	if err := ledger.Load(); err != nil {
		l.Errorf("%v", err)
		return 1
	}

	client := crawler.New(fetchTimeout, time.Duration(effectiveDelay*float64(time.Second)), userAgent, bodySizeCap)
	proc := processor.New(processor.Params{
		Fetcher:    client,
		Extractor:  parser.New(),
		Tagger:     classifier.New(),
		Downloader: downloader.New(client, l),
		Ledger:     ledger,
		Tags:       tags,
		BaseDir:    cfg.BaseDir,
		Log:        l,
	})

	// per-URL failures are logged, not surfaced as a process failure
	ctx := context.Background()
	for _, u := range urls {
		if _, err := proc.Process(ctx, u); err != nil {
			l.Errorf("%v", err)
			return 1
		}
	}
	return 0
}
