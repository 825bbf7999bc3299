package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kommathotimariyamma111-beep/prodscrape"
	prodcsv "github.com/kommathotimariyamma111-beep/prodscrape/csv"
	"github.com/kommathotimariyamma111-beep/prodscrape/goquery"
	prodhtml "github.com/kommathotimariyamma111-beep/prodscrape/html"
	prodhttp "github.com/kommathotimariyamma111-beep/prodscrape/http"
	"github.com/kommathotimariyamma111-beep/prodscrape/scrape"
	prodslog "github.com/kommathotimariyamma111-beep/prodscrape/slog"
	"github.com/kommathotimariyamma111-beep/prodscrape/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by storage service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProductService prodscrape.ProductService
	ScrapeService  prodscrape.ScrapeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prodscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'prodscrape --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database for commands that touch storage
	if cmd == "scrape" || cmd == "list" || cmd == "export" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PRODSCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ProductService = sqlite.NewProductService(m.DB)
		m.ScrapeService = sqlite.NewScrapeService(m.DB)
		deps.DB = m.DB
		deps.Products = m.ProductService
		deps.Scrapes = m.ScrapeService
	}

	// Wire the scraping pipeline from the command's flags
	if cmd == "scrape" {
		fetcher := prodslog.NewLoggingFetcher(prodhttp.NewFetcher(), logger)
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			Fetcher:    fetcher,
			Extractor:  prodscrape.NewExtractor(prodhtml.NewTokenizer()),
			Writer:     prodslog.NewLoggingWriter(prodcsv.NewWriter(cli.Scrape.Out), logger),
			Products:   m.ProductService,
			Scrapes:    m.ScrapeService,
			Detector:   goquery.NewDetector(),
			Limiter:    scrape.NewDomainLimiter(cli.Scrape.RPS),
			MaxPerPage: cli.Scrape.Max,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PRODSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "prodscrape.db"
	}
	dir := filepath.Join(home, ".prodscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "prodscrape.db")
}
