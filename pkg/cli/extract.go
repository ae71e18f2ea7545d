package cli

import (
	"context"
	"fmt"

	"github.com/bstardust/djicoords/internal/batch"
	"github.com/bstardust/djicoords/internal/config"
	"github.com/bstardust/djicoords/internal/fshelper"
	"github.com/bstardust/djicoords/internal/logger"
	"github.com/bstardust/djicoords/internal/publish"
	"github.com/bstardust/djicoords/pkg/s3client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExtractCommand(v *viper.Viper, configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [flags] [input-folder]",
		Short: "Write the GPS coordinates of every .jpg photo under a folder to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input.root", args[0])
			}

			cfg, err := config.Load(v, *configFile)
			if err != nil {
				return err
			}
			return runExtract(cmd, cfg)
		},
	}

	d := config.New()
	flags := cmd.Flags()

	// Input and output
	flags.StringP("input", "i", d.Input.Root, "Folder containing the photos")
	flags.StringP("output", "o", d.Output.Path, "CSV file to write")
	flags.Bool("recursive", d.Input.Recursive, "Include photos in subfolders")

	// Report upload
	flags.Bool("publish", d.Publish.Enabled, "Upload the finished report to S3-compatible storage")
	flags.String("endpoint", d.Publish.Endpoint, "S3 endpoint URL")
	flags.String("region", d.Publish.Region, "S3 region")
	flags.String("bucket", d.Publish.Bucket, "S3 bucket name")
	flags.String("access-key", d.Publish.AccessKey, "S3 access key")
	flags.String("secret-key", d.Publish.SecretKey, "S3 secret key")
	flags.Bool("use-ssl", d.Publish.UseSSL, "Use SSL for S3 connection")
	flags.String("prefix", d.Publish.Prefix, "Prefix for the report object key")
	flags.Int("max-retries", d.Publish.MaxRetries, "Upload retries on transient errors")

	bindings := map[string]string{
		"input.root":          "input",
		"output.path":         "output",
		"input.recursive":     "recursive",
		"publish.enabled":     "publish",
		"publish.endpoint":    "endpoint",
		"publish.region":      "region",
		"publish.bucket":      "bucket",
		"publish.access_key":  "access-key",
		"publish.secret_key":  "secret-key",
		"publish.use_ssl":     "use-ssl",
		"publish.prefix":      "prefix",
		"publish.max_retries": "max-retries",
	}
	for key, flag := range bindings {
		v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func runExtract(cmd *cobra.Command, cfg *config.Config) error {
	logger.SetLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return err
	}

	processor := batch.New(fshelper.NewDirSource(cfg.Input.Recursive))
	summary, err := processor.Run(cfg.Input.Root, cfg.Output.Path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, summary.Status())
	fmt.Fprintf(out, "Output written to %s\n", cfg.Output.Path)

	if !cfg.Publish.Enabled {
		return nil
	}
	return publishReport(cmd.Context(), cfg, summary.Processed)
}

func publishReport(ctx context.Context, cfg *config.Config, photos int) error {
	client, err := s3client.New(ctx, s3client.Config{
		Endpoint:  cfg.Publish.Endpoint,
		Region:    cfg.Publish.Region,
		Bucket:    cfg.Publish.Bucket,
		AccessKey: cfg.Publish.AccessKey,
		SecretKey: cfg.Publish.SecretKey,
		UseSSL:    cfg.Publish.UseSSL,
		Prefix:    cfg.Publish.Prefix,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	retry := publish.DefaultRetryConfig()
	retry.MaxRetries = cfg.Publish.MaxRetries

	if _, err := publish.New(client, retry).Publish(ctx, cfg.Output.Path, photos); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}
	return nil
}
