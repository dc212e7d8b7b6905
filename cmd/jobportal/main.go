package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobportal/internal/api"
	"github.com/fr4nk3nst1ner/jobportal/internal/client"
	"github.com/fr4nk3nst1ner/jobportal/internal/config"
	"github.com/fr4nk3nst1ner/jobportal/internal/jobs"
	"github.com/fr4nk3nst1ner/jobportal/internal/models"
	"github.com/fr4nk3nst1ner/jobportal/internal/scraper"
	"github.com/fr4nk3nst1ner/jobportal/internal/ui"
	"github.com/fr4nk3nst1ner/jobportal/internal/web"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 Job Portal Usage Examples 📋")
	fmt.Println("\n1. Start the web front end against a local backend:")
	fmt.Println("   jobportal -web -api http://localhost:5000")

	fmt.Println("\n2. List remote full-time jobs that mention \"React\":")
	fmt.Println("   jobportal -list -keyword React -location remote -type full-time")

	fmt.Println("\n3. List jobs tagged \"Python\" at a given company, without the banner:")
	fmt.Println("   jobportal -list -company Acme -tag Python -nobanner")

	fmt.Println("\n4. Delete job 42 without the confirmation prompt:")
	fmt.Println("   jobportal -delete 42 -yes")

	fmt.Println("\n5. Import the five newest postings from actuarylist.com:")
	fmt.Println("   jobportal -import https://www.actuarylist.com -limit 5")

	fmt.Println("\n6. Import postings from a saved listing page:")
	fmt.Println("   jobportal -import-file listing.html")

	fmt.Println("\n7. Import from the source_url in config.yaml:")
	fmt.Println("   jobportal -scrape -config config.yaml")
	os.Exit(0)
}

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file (default: $JOBPORTAL_CONFIG or config.yaml)")
	apiURL := flag.String("api", "", "Base URL of the jobs backend (overrides config)")
	webMode := flag.Bool("web", false, "Start the web front end")
	port := flag.Int("port", 0, "Port for the web front end (overrides config)")

	list := flag.Bool("list", false, "List jobs in a table")
	keyword := flag.String("keyword", "", "Keyword to match in title or company")
	location := flag.String("location", "", "Location to filter by")
	jobType := flag.String("type", models.TypeAll, "Job type to filter by ("+strings.Join(models.JobTypes, ", ")+", "+models.TypeAll+")")
	company := flag.String("company", "", "Company to filter by")
	tag := flag.String("tag", "", "Tag to filter by")

	deleteID := flag.Int("delete", 0, "Delete the job with this ID")
	yes := flag.Bool("yes", false, "Skip the delete confirmation prompt")

	importURL := flag.String("import", "", "Import postings from a job board listing URL")
	scrape := flag.Bool("scrape", false, "Import postings from the configured importer source_url")
	importFile := flag.String("import-file", "", "Import postings from a saved listing HTML file")
	limit := flag.Int("limit", -1, "Maximum number of postings to import (overrides config)")

	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(*silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}
	if *port != 0 {
		cfg.Web.Port = *port
	}
	if *limit >= 0 {
		cfg.Importer.Limit = *limit
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := client.CreateHTTPClient()
	jobsAPI := api.New(cfg.API.BaseURL, httpClient)

	switch {
	case *webMode:
		runWeb(ctx, jobsAPI, cfg)
	case *list:
		criteria := models.FilterCriteria{
			Keyword:  *keyword,
			Location: *location,
			Type:     *jobType,
			Company:  *company,
			Tag:      *tag,
		}
		runList(ctx, jobsAPI, cfg, criteria)
	case *deleteID != 0:
		runDelete(ctx, jobsAPI, *deleteID, *yes)
	case *scrape:
		runImport(ctx, jobsAPI, cfg, cfg.Importer.SourceURL, "")
	case *importURL != "" || *importFile != "":
		runImport(ctx, jobsAPI, cfg, *importURL, *importFile)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func runWeb(ctx context.Context, jobsAPI *api.Client, cfg *config.AppConfig) {
	server, err := web.NewServer(jobsAPI, web.Options{
		DateFormat:    cfg.Display.DateFormat,
		RelativeDates: cfg.Display.RelativeDates,
		Username:      cfg.Web.Username,
		Password:      cfg.Web.Password,
	})
	if err != nil {
		log.Fatalf("Failed to create web server: %v", err)
	}

	log.Printf("Using jobs backend at %s", jobsAPI.BaseURL())
	if err := server.ListenAndServe(ctx, ":"+strconv.Itoa(cfg.Web.Port)); err != nil {
		log.Fatalf("Web server error: %v", err)
	}
}

func runList(ctx context.Context, jobsAPI *api.Client, cfg *config.AppConfig, criteria models.FilterCriteria) {
	if !models.IsValidFilterType(criteria.Type) {
		log.Fatalf("Invalid job type %q", criteria.Type)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Fetching jobs from " + jobsAPI.BaseURL())
	records, err := jobsAPI.ListJobs(ctx)
	if err != nil {
		spinner.Fail("Failed to load jobs. Please try again later.")
		log.Fatalf("Error fetching jobs: %v", err)
	}
	spinner.Success(fmt.Sprintf("Fetched %d jobs", len(records)))

	all := jobs.NormalizeAll(records, cfg.Display.DateFormat)
	shown := all
	if criteria.IsActive() {
		shown = jobs.Filter(all, criteria)
	}

	if err := ui.RenderJobTable(os.Stdout, shown, len(all), cfg.Display.RelativeDates); err != nil {
		log.Fatalf("Error rendering jobs: %v", err)
	}
}

func runDelete(ctx context.Context, jobsAPI *api.Client, id int, skipConfirm bool) {
	if !skipConfirm {
		ok, err := ui.ConfirmDelete(fmt.Sprintf("job %d", id))
		if err != nil {
			log.Fatalf("Error reading confirmation: %v", err)
		}
		if !ok {
			pterm.Info.Println("Delete cancelled")
			return
		}
	}

	if err := jobsAPI.DeleteJob(ctx, id); err != nil {
		if api.IsNotFound(err) {
			log.Fatalf("Job %d not found", id)
		}
		pterm.Error.Println("Error deleting job. Please try again.")
		log.Fatalf("Delete failed: %v", err)
	}
	pterm.Success.Printf("Deleted job %d\n", id)
}

func runImport(ctx context.Context, jobsAPI *api.Client, cfg *config.AppConfig, pageURL, file string) {
	importer := scraper.NewImporter(jobsAPI, nil, scraper.Options{
		Limit:          cfg.Importer.Limit,
		MaxRetries:     cfg.Importer.MaxRetries,
		RetryDelay:     cfg.Importer.RetryDelay,
		DefaultJobType: cfg.Importer.DefaultJobType,
		Progress:       os.Stderr,
	})

	var summary scraper.Summary
	var err error
	if file != "" {
		f, openErr := os.Open(file)
		if openErr != nil {
			log.Fatalf("Error opening %s: %v", file, openErr)
		}
		defer f.Close()
		summary, err = importer.ImportHTML(ctx, f)
	} else {
		pterm.Info.Printf("Importing postings from %s\n", pageURL)
		summary, err = importer.ImportURL(ctx, pageURL)
	}
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	pterm.Success.Printf("Import complete: %s\n", summary)
}
