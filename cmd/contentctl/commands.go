package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/araddon/dateparse"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/infrastructure/scheduler"
	"github.com/opsmatters/opsmatters-media-sub001/internal/sheet"
	"github.com/opsmatters/opsmatters-media-sub001/internal/usecase"
)

// NewIngestCommand creates the ingest command
func NewIngestCommand() *cobra.Command {
	var typeName string
	var site string
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "ingest <file.csv>",
		Short: "Load content items from a spreadsheet export",
		Long: `Parse a CSV export of one content type and print each accepted item as a
JSON document. Rejected rows are reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := domain.ParseContentType(typeName)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrUnknownContentType, typeName)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := sheet.ReadRows(f, t)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			res, err := application.Ingest(cmd.Context(), usecase.IngestRequest{SiteID: site, Type: t, Rows: rows})
			if err != nil {
				return fmt.Errorf("ingest failed: %w", err)
			}
			if err := printResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res); err != nil {
				return err
			}
			return writeMetrics(metricsFile, application.Metrics())
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "content type (post, video, tool, ebook, white-paper, image)")
	cmd.Flags().StringVarP(&site, "site", "s", "", "site the items belong to")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write counters to this file in text format")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("site")

	return cmd
}

// NewRoundupCommand creates the roundup command
func NewRoundupCommand() *cobra.Command {
	var since string
	var every time.Duration
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "roundup",
		Short: "Crawl organisation blogs for new posts",
		Long: `Crawl the blog listing of every organisation with a roundup configured and
print a post for each entry published after --since. With --every the crawl
repeats on that interval until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseSince(since, time.Now())
			if err != nil {
				return err
			}

			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			run := func(ctx context.Context, from time.Time) error {
				res, err := application.Roundup(ctx, from)
				if err != nil {
					return fmt.Errorf("roundup failed: %w", err)
				}
				if err := printResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res); err != nil {
					return err
				}
				return writeMetrics(metricsFile, application.Metrics())
			}

			if every <= 0 {
				return run(cmd.Context(), from)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ticker := scheduler.NewTicker(every)
			last := from
			err = ticker.Start(ctx, func(now time.Time) {
				if err := run(ctx, last); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
					return
				}
				last = now
			})
			if err != nil {
				return err
			}
			<-ticker.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&since, "since", "168h", "only entries newer than this duration ago or date")
	cmd.Flags().DurationVar(&every, "every", 0, "repeat the crawl on this interval")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write counters to this file in text format")

	return cmd
}

// NewVideoTypeCommand creates the video-type command
func NewVideoTypeCommand() *cobra.Command {
	var duration int64
	var minWebinar int64

	cmd := &cobra.Command{
		Use:   "video-type <title>",
		Short: "Guess the type of a video from its title and duration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			for _, a := range args[1:] {
				text += " " + a
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.GuessVideoType(text, duration, minWebinar).Value())
			return nil
		},
	}

	cmd.Flags().Int64VarP(&duration, "duration", "d", 0, "video duration in seconds")
	cmd.Flags().Int64Var(&minWebinar, "min-webinar", domain.DefaultMinWebinarDuration, "duration in seconds above which a video is a webinar")

	return cmd
}

// NewFieldsCommand creates the fields command
func NewFieldsCommand() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "fields <document.json>",
		Short: "Print the template fields of a stored content document",
		Long: `Load a persisted content document and print every field its type carries.
With --template the ${field} placeholders of the template are substituted
instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := domain.ParseDocument(raw)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			c, err := domain.ContentFromJSON(doc)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if template != "" {
				fmt.Fprintln(out, c.Fields().Substitute(template))
				return nil
			}
			for _, name := range c.FieldNames() {
				v, _ := c.Field(name)
				fmt.Fprintf(out, "%s=%s\n", name.Value(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "template with ${field} placeholders")

	return cmd
}

// NewOrganisationsCommand creates the organisations command
func NewOrganisationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organisations",
		Short: "Manage organisation sites",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Record the configured organisations in the organisation store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			n, err := application.SyncOrganisations(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d organisations saved\n", n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <site> <code>",
		Short: "Print an organisation site from the store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			defer application.Close()

			org, err := application.Organisation(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name=%s\nemail=%s\nwebsite=%s\n", org.Name, org.Email, org.Website)
			return nil
		},
	})

	return cmd
}

// printResult writes one JSON document per item, then the rejected rows and
// a per-organisation summary.
func printResult(out, errOut io.Writer, res usecase.IngestResult) error {
	enc := json.NewEncoder(out)
	for _, item := range res.Items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	for _, rowErr := range res.Errors {
		fmt.Fprintf(errOut, "rejected: %v\n", rowErr)
	}
	for code, summary := range res.Summaries {
		for _, t := range summary.Types() {
			f := summary.TypeFields(t)
			fmt.Fprintf(errOut, "organisation %s %s: %s items, deployed=%s\n",
				code, t.Value(), f[domain.FieldCount], f[domain.FieldDeployed])
		}
	}
	fmt.Fprintf(errOut, "%d accepted, %d rejected\n", len(res.Items), len(res.Errors))
	return nil
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, g)
}

// parseSince reads either a duration before now or a date.
func parseSince(s string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d).UTC(), nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since %q: %w", s, err)
	}
	return t.UTC(), nil
}
