package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gmfurtado/pixcards/internal/batch"
	"github.com/gmfurtado/pixcards/internal/config"
	"github.com/gmfurtado/pixcards/internal/domain"
	"github.com/gmfurtado/pixcards/internal/gcsuploader"
	infraBQ "github.com/gmfurtado/pixcards/internal/infra/bigquery"
	"github.com/gmfurtado/pixcards/internal/logger"
	"github.com/gmfurtado/pixcards/internal/pix"
	"github.com/gmfurtado/pixcards/internal/suggest"
	"github.com/gmfurtado/pixcards/internal/template"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(log)
	case "batch":
		runBatch(log)
	case "validate":
		runValidate(log)
	case "suggest":
		runSuggest(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("PIX Cards CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  pixcards <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate  Generate a payload for one hierarchy selection")
	fmt.Println("  batch     Generate payloads for a CSV of amounts")
	fmt.Println("  validate  Validate card fields without generating")
	fmt.Println("  suggest   Suggest a short payment message")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'pixcards <command> -h' for more information on a command.")
}

// selectionFlags registers the five hierarchy selection flags on fs and
// returns a getter for the assembled Selection.
func selectionFlags(fs *flag.FlagSet) func() domain.Selection {
	state := fs.String("state", "", "State ID")
	regional := fs.String("regional", "", "Regional ID")
	city := fs.String("city", "", "City ID")
	congregation := fs.String("congregation", "", "Congregation ID")
	purpose := fs.String("purpose", "", "Purpose ID")

	return func() domain.Selection {
		return domain.Selection{
			StateID:        *state,
			RegionalID:     *regional,
			CityID:         *city,
			CongregationID: *congregation,
			PurposeID:      *purpose,
		}
	}
}

func runGenerate(log zerolog.Logger) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "pixcards.yaml", "Path to the YAML config file")
	sample := fs.Bool("sample", false, "Use the built-in sample hierarchy")
	templateID := fs.String("template", "", "Template ID (default: first loaded)")
	amount := fs.String("amount", "", "Fixed amount, e.g. 10.00 (empty for open value)")
	name := fs.String("name", "", "Payee name (bypasses hierarchy resolution)")
	key := fs.String("key", "", "PIX key (bypasses hierarchy resolution)")
	city := fs.String("city", "", "Payee city (bypasses hierarchy resolution)")
	txid := fs.String("txid", "", "Transaction ID (with -key)")
	msg := fs.String("message", "", "Payment message (with -key)")
	selection := selectionFlags(fs)
	fs.Parse(os.Args[2:])

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	_, snap, tpl := loadEnvironment(ctx, log, *configPath, *sample, *templateID)

	normalized := pix.NormalizeValue(*amount, tpl.SchemaField("amount"))

	var data pix.CardData
	if *key != "" {
		// Direct field entry, no hierarchy lookup.
		data = template.NormalizeForm(tpl, map[string]string{
			"name":    *name,
			"key":     *key,
			"city":    *city,
			"txid":    *txid,
			"message": *msg,
		})
		data.Amount = normalized
	} else {
		profile := domain.Resolve(snap, selection())
		if profile == nil {
			log.Fatal().Msg("Selection does not resolve; check the IDs against the hierarchy")
		}
		data = pix.FromProfile(profile, normalized)
	}

	payloadData := template.PayloadData(tpl, data)

	if errs := pix.Validate(payloadData); len(errs) > 0 {
		for field, m := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, m)
		}
		os.Exit(1)
	}

	payload := pix.GeneratePayload(payloadData)
	fmt.Println(payload)

	for _, w := range template.Warnings(tpl, data) {
		fmt.Fprintf(os.Stderr, "aviso: campo %q sem valor\n", w.Key)
	}
}

func runBatch(log zerolog.Logger) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	configPath := fs.String("config", "pixcards.yaml", "Path to the YAML config file")
	sample := fs.Bool("sample", false, "Use the built-in sample hierarchy")
	templateID := fs.String("template", "", "Template ID (default: first loaded)")
	input := fs.String("input", "", "CSV file with one amount per line (optional name in column 2)")
	output := fs.String("output", "", "Report CSV output path (default: stdout)")
	upload := fs.Bool("upload", false, "Upload the report to the configured GCS bucket")
	selection := selectionFlags(fs)
	fs.Parse(os.Args[2:])

	if *input == "" {
		log.Fatal().Msg("Error: --input is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	cfg, snap, tpl := loadEnvironment(ctx, log, *configPath, *sample, *templateID)

	profile := domain.Resolve(snap, selection())
	if profile == nil {
		log.Fatal().Msg("Selection does not resolve; check the IDs against the hierarchy")
	}

	records, err := readRecords(*input)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read input CSV")
	}

	base := pix.FromProfile(profile, "")
	report := batch.Process(tpl, base, records, log)
	csvBytes := report.CSV()

	if *output != "" {
		if err := os.WriteFile(*output, csvBytes, 0o644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write report")
		}
		fmt.Printf("Report written to %s (%d generated, %d failed)\n", *output, report.Generated, report.Failed)
	} else {
		os.Stdout.Write(csvBytes)
	}

	if *upload {
		if cfg.Bucket == "" {
			log.Fatal().Msg("Error: --upload requires a bucket in the config")
		}
		object := gcsuploader.ReportObjectName(report.RunID, report.StartedAt)
		if err := gcsuploader.UploadBytes(ctx, cfg.Bucket, object, csvBytes, "text/csv"); err != nil {
			log.Fatal().Err(err).Msg("Failed to upload report")
		}
		fmt.Printf("Report uploaded to gs://%s/%s\n", cfg.Bucket, object)
	}
}

func runValidate(log zerolog.Logger) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	name := fs.String("name", "", "Payee name")
	key := fs.String("key", "", "PIX key (CNPJ)")
	city := fs.String("city", "", "Payee city")
	txid := fs.String("txid", "", "Transaction ID")
	amount := fs.String("amount", "", "Amount, e.g. 10.00")
	fs.Parse(os.Args[2:])

	data := pix.CardData{
		Name:   *name,
		Key:    *key,
		City:   *city,
		TxID:   *txid,
		Amount: *amount,
	}

	errs := pix.Validate(data)
	if len(errs) == 0 {
		fmt.Println("OK")
		return
	}
	for field, msg := range errs {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
	}
	os.Exit(1)
}

func runSuggest(log zerolog.Logger) {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	amount := fs.String("amount", "", "Amount, e.g. 10.00")
	recipient := fs.String("recipient", "", "Recipient name")
	fs.Parse(os.Args[2:])

	if *recipient == "" {
		log.Fatal().Msg("Error: --recipient is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println(suggest.New().Message(ctx, *amount, *recipient))
}

// loadEnvironment loads config, hierarchy snapshot and the requested template.
// Any failure here is fatal; the subcommands cannot do anything useful
// without all three.
func loadEnvironment(ctx context.Context, log zerolog.Logger, configPath string, sample bool, templateID string) (config.Config, *domain.Snapshot, *template.Template) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	snap, err := loadSnapshot(ctx, cfg, sample)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load hierarchy snapshot")
	}

	tpl := findTemplate(cfg, log, templateID)
	if tpl == nil {
		log.Fatal().Str("template", templateID).Msg("Template not found")
	}

	return cfg, snap, tpl
}

func loadSnapshot(ctx context.Context, cfg config.Config, sample bool) (*domain.Snapshot, error) {
	if sample || cfg.ProjectID == "" {
		return domain.SampleSnapshot(), nil
	}

	repo, err := infraBQ.NewBigQueryHierarchyRepository(ctx, cfg.ProjectID, cfg.Dataset)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	return infraBQ.LoadSnapshot(ctx, repo)
}

func findTemplate(cfg config.Config, log zerolog.Logger, id string) *template.Template {
	templates := []*template.Template{template.Default()}
	if cfg.TemplatesDir != "" {
		loaded, err := template.LoadDir(cfg.TemplatesDir)
		if err != nil {
			log.Warn().Err(err).Str("dir", cfg.TemplatesDir).Msg("Failed to load templates, using built-in default")
		} else if len(loaded) > 0 {
			templates = loaded
		}
	}

	if id == "" {
		return templates[0]
	}
	for _, t := range templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// readRecords parses the batch input CSV. Column 1 is the amount, column 2 an
// optional payee-name override. A header row is skipped when column 1 is not
// numeric-looking.
func readRecords(path string) ([]batch.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readRecords: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var records []batch.Record
	line := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("readRecords: parse %q: %w", path, err)
		}
		line++
		if len(row) == 0 {
			continue
		}

		amount := strings.TrimSpace(row[0])
		if line == 1 && !strings.ContainsAny(amount, "0123456789") {
			continue
		}

		rec := batch.Record{Line: line, Amount: amount}
		if len(row) > 1 {
			rec.Name = strings.TrimSpace(row[1])
		}
		records = append(records, rec)
	}

	return records, nil
}
