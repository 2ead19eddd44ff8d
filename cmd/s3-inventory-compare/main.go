package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/base-media-cloud/s3-inventory-compare/internal/logging"
	"github.com/base-media-cloud/s3-inventory-compare/pkg/compare"
	"github.com/base-media-cloud/s3-inventory-compare/pkg/inventory"
	"github.com/base-media-cloud/s3-inventory-compare/pkg/report"
	"github.com/base-media-cloud/s3-inventory-compare/pkg/s3client"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

var (
	bucket1        string
	bucket2        string
	inventory1     string
	inventory2     string
	useManifest    bool
	profile        string
	region         string
	endpointURL    string
	excludes       []string
	includes       []string
	quiet          bool
	maxList        int
	reportJSONFile string
	failOnDiff     bool
)

// Config collects every flag value once after parsing. run reads it
// instead of the package-level flag variables.
type Config struct {
	Bucket1        string
	Bucket2        string
	Inventory1     string
	Inventory2     string
	UseManifest    bool
	Profile        string
	Region         string
	EndpointURL    string
	Excludes       []string
	Includes       []string
	Quiet          bool
	MaxList        int
	ReportJSONFile string
	FailOnDiff     bool
}

func configFromFlags() Config {
	return Config{
		Bucket1:        bucket1,
		Bucket2:        bucket2,
		Inventory1:     inventory1,
		Inventory2:     inventory2,
		UseManifest:    useManifest,
		Profile:        profile,
		Region:         region,
		EndpointURL:    endpointURL,
		Excludes:       excludes,
		Includes:       includes,
		Quiet:          quiet,
		MaxList:        maxList,
		ReportJSONFile: reportJSONFile,
		FailOnDiff:     failOnDiff,
	}
}

// Validate rejects bad option values before any inventory is fetched.
func (c Config) Validate() error {
	if c.MaxList < 0 {
		return fmt.Errorf("--max-list must be zero or positive")
	}
	for _, pattern := range c.Includes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	for _, pattern := range c.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "s3-inventory-compare",
		Short: "Compare two S3 buckets through their S3 Inventory reports",
		Long: `s3-inventory-compare reads the AWS S3 Inventory exports of two buckets and
reports objects missing on either side as well as objects whose sizes
differ. Comparison is by key and size only: inventory ETags are not
comparable across different encryption and multipart upload settings.

Each --inventoryN flag accepts an object key in --bucketN, a full s3://
URI, or a local file path when --bucketN is omitted. With --use-manifest
the paths name inventory manifest.json files and every data file they
list is loaded.`,
		Version:      fmt.Sprintf("%s (commit: %s, built at: %s by %s)", version, commit, date, builtBy),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&bucket1, "bucket1", "", "First bucket; bare --inventory1 keys are read from it")
	rootCmd.Flags().StringVar(&bucket2, "bucket2", "", "Second bucket; bare --inventory2 keys are read from it")
	rootCmd.Flags().StringVar(&inventory1, "inventory1", "", "First inventory: object key, s3:// URI or local file")
	rootCmd.Flags().StringVar(&inventory2, "inventory2", "", "Second inventory: object key, s3:// URI or local file")
	rootCmd.Flags().BoolVar(&useManifest, "use-manifest", false, "Treat the inventory paths as manifest.json files")
	rootCmd.Flags().StringVar(&profile, "profile", "", "AWS profile to use")
	rootCmd.Flags().StringVar(&region, "region", "", "AWS region (uses default if not specified)")
	rootCmd.Flags().StringVar(&endpointURL, "endpoint-url", "", "Custom S3 endpoint; implies path-style addressing")
	rootCmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Exclude key patterns (multiple allowed)")
	rootCmd.Flags().StringSliceVar(&includes, "include", nil, "Include key patterns (multiple allowed)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress progress output")
	rootCmd.Flags().IntVar(&maxList, "max-list", 10, "Max keys listed per difference section (0 = unlimited)")
	rootCmd.Flags().StringVar(&reportJSONFile, "report-json-file", "", "Path to output the report as JSON file")
	rootCmd.Flags().BoolVar(&failOnDiff, "fail-on-diff", false, "Exit non-zero when the buckets differ")

	_ = rootCmd.MarkFlagRequired("inventory1")
	_ = rootCmd.MarkFlagRequired("inventory2")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conf := configFromFlags()
	if err := conf.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	source1 := inventory.Source{Bucket: conf.Bucket1, Path: conf.Inventory1, UseManifest: conf.UseManifest}
	source2 := inventory.Source{Bucket: conf.Bucket2, Path: conf.Inventory2, UseManifest: conf.UseManifest}

	log := logging.NewLogger(conf.Quiet)

	// AWS config is only loaded when a side actually lives on S3, so
	// local-to-local comparisons run without credentials.
	var client s3client.Client
	if source1.Remote() || source2.Remote() {
		var configOpts []func(*config.LoadOptions) error
		if conf.Profile != "" {
			configOpts = append(configOpts, config.WithSharedConfigProfile(conf.Profile))
		}
		if conf.Region != "" {
			configOpts = append(configOpts, config.WithRegion(conf.Region))
		}

		cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}

		var s3Opts []func(*s3.Options)
		if conf.EndpointURL != "" {
			s3Opts = append(s3Opts, func(o *s3.Options) {
				o.BaseEndpoint = aws.String(conf.EndpointURL)
				o.UsePathStyle = true
			})
		}
		client = s3client.NewAWSClient(cfg, s3Opts...)
	}

	loader := inventory.NewLoader(inventory.NewFetcher(client), log)

	log.Info("comparing inventories of %s and %s", source1.Label(), source2.Label())

	snapshot1, err := loader.Load(ctx, source1)
	if err != nil {
		return fmt.Errorf("bucket1 inventory: %w", err)
	}
	snapshot2, err := loader.Load(ctx, source2)
	if err != nil {
		return fmt.Errorf("bucket2 inventory: %w", err)
	}

	if len(conf.Includes) > 0 || len(conf.Excludes) > 0 {
		snapshot1, err = compare.Filter(snapshot1, conf.Includes, conf.Excludes)
		if err != nil {
			return err
		}
		snapshot2, err = compare.Filter(snapshot2, conf.Includes, conf.Excludes)
		if err != nil {
			return err
		}
	}

	result := compare.Snapshots(snapshot1, snapshot2)
	summary := report.Summary{
		Bucket1:  source1.Label(),
		Bucket2:  source2.Label(),
		Total1:   snapshot1.Len(),
		Total2:   snapshot2.Len(),
		Skipped1: snapshot1.SkippedRows,
		Skipped2: snapshot2.SkippedRows,
	}

	reporter := &report.Reporter{Out: os.Stdout, MaxList: conf.MaxList}
	reporter.Print(result, summary)

	if conf.ReportJSONFile != "" {
		if err := writeReportJSON(conf.ReportJSONFile, report.Build(result, summary)); err != nil {
			return fmt.Errorf("failed to write report JSON: %w", err)
		}
	}

	if conf.FailOnDiff && !result.InSync() {
		return fmt.Errorf("%d objects differ", result.DiffCount())
	}

	return nil
}

func writeReportJSON(path string, doc report.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
