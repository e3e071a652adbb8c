package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/graft-dev/graft/internal/config"
	"github.com/graft-dev/graft/pkg/server"
	"github.com/graft-dev/graft/pkg/source"
)

func serveCmd() *cobra.Command {
	var (
		port     int
		host     string
		dir      string
		s3Bucket string
		s3Prefix string
		s3Region string
		attr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Serve hydrated documents over HTTP.

Every request loads the named document from the configured source,
runs a hydration pass and returns the transformed markup. When a
local directory is the source, file changes push reload events to
connected browsers over /ws.

Settings come from graft.json in the working directory; flags
override it.

Examples:
  graft serve
  graft serve --port=8080 --dir=./public
  graft serve --s3-bucket=my-site --s3-region=us-east-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, dir, s3Bucket, s3Prefix, s3Region, attr)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from graft.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from graft.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Serve documents from this directory")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "Serve documents from this S3 bucket")
	cmd.Flags().StringVar(&s3Prefix, "s3-prefix", "", "Key prefix inside the S3 bucket")
	cmd.Flags().StringVar(&s3Region, "s3-region", "", "AWS region of the S3 bucket")
	cmd.Flags().StringVar(&attr, "attr", "", "Marker attribute to match (default from graft.json)")

	return cmd
}

func runServe(port int, host, dir, s3Bucket, s3Prefix, s3Region, attr string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if dir != "" {
		cfg.Source.Dir = dir
		cfg.Source.S3 = nil
	}
	if s3Bucket != "" {
		cfg.Source.S3 = &config.S3Config{
			Bucket: s3Bucket,
			Prefix: s3Prefix,
			Region: s3Region,
		}
		cfg.Source.Dir = ""
	}
	if attr != "" {
		cfg.Attr = attr
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		warn("%s", w)
	}
	if err != nil {
		return err
	}

	src, watch := buildSource(cfg)

	srv, err := server.New(server.Config{
		Host:   cfg.Server.Host,
		Port:   cfg.Server.Port,
		Attr:   cfg.Attr,
		Source: src,
		Watch:  watch,
	})
	if err != nil {
		return err
	}

	printBanner()
	fmt.Println()
	info("serving on http://%s", srv.Addr())
	if cfg.Source.S3 != nil {
		info("source: s3://%s/%s", cfg.Source.S3.Bucket, cfg.Source.S3.Prefix)
	} else {
		info("source: %s", cfg.Source.Dir)
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

// buildSource turns the source section of the config into a document
// source and the directories to watch for reloads.
func buildSource(cfg *config.Config) (source.Source, []string) {
	if s3cfg := cfg.Source.S3; s3cfg != nil {
		client := s3.New(s3.Options{
			Region:      s3cfg.Region,
			Credentials: aws.AnonymousCredentials{},
		})
		// Remote sources have nothing to watch locally.
		return source.NewS3(client, s3cfg.Bucket, s3cfg.Prefix), nil
	}

	watch := cfg.Watch
	if len(watch) == 0 {
		watch = []string{cfg.Source.Dir}
	}
	return source.NewDir(cfg.Source.Dir), watch
}
