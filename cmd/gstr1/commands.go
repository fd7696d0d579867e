package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sellersuite/internal/config"
	"sellersuite/internal/domain"
	"sellersuite/internal/parser"
	"sellersuite/internal/service"
	"sellersuite/internal/storage/local"
)

type options struct {
	outDir    string
	portal    string
	format    string
	frequency string
	gstin     string
}

type app struct {
	ingest  service.IngestService
	reports service.ReportService
}

// newApp wires the same services as the server against a local store rooted at outDir.
func newApp(outDir string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log.SetFlags(cfg.Log.Flags())
	cfg.Storage.Backend = config.StorageLocal
	cfg.Storage.OutputDir = outDir
	cfg.Storage.UploadDir = filepath.Join(outDir, "uploads")

	store, err := local.NewLocalStore(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	ingest := service.NewIngestService(store, parser.NewRegistry(cfg.Portals.Supported), parser.NewAmazonParser(), &cfg.Storage)
	return &app{ingest: ingest, reports: service.NewReportService(store, ingest)}, nil
}

func (a *app) upload(ctx context.Context, path, portal, frequency string) (*domain.ParsedFileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return a.ingest.Upload(ctx, service.UploadInput{
		File:         f,
		Filename:     filepath.Base(path),
		Size:         info.Size(),
		Portal:       portal,
		ReportPeriod: frequency,
	})
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gstr1",
		Short:         "Convert marketplace seller exports into GSTR-1 CSVs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.outDir, "out", "o", "outputs", "Directory for generated CSVs")
	root.PersistentFlags().StringVar(&opts.gstin, "gstin", "", "Seller GSTIN for the output filename (defaults to the one found in the file)")
	root.PersistentFlags().StringVar(&opts.frequency, "frequency", "", "Report frequency: monthly or quarterly")

	root.AddCommand(newConvertCmd(opts), newB2BCmd(opts), newPortalsCmd())
	return root
}

func newConvertCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Parse an export and write the B2C CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts.outDir)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			res, err := a.upload(ctx, args[0], opts.portal, opts.frequency)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d rows from %s (%s)\n", res.RowsProcessed, args[0], res.Portal)

			rep, err := a.reports.Generate(ctx, service.GenerateInput{
				Records:   res.Records,
				Format:    domain.OutputFormat(opts.format),
				Frequency: res.ReportFrequency,
				GSTIN:     gstinFor(opts.gstin, res.GSTIN),
			})
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), opts.outDir, rep)
		},
	}
	cmd.Flags().StringVarP(&opts.portal, "portal", "p", string(domain.PortalCustom), "Marketplace portal")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(domain.OutputAggregated), "Output format: aggregated or detailed")
	return cmd
}

func newB2BCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "b2b FILE",
		Short: "Extract the B2B sheet of an Amazon export into the B2B CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts.outDir)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			res, err := a.upload(ctx, args[0], string(domain.PortalAmazon), opts.frequency)
			if err != nil {
				return err
			}

			rep, err := a.reports.GenerateB2B(ctx, service.GenerateB2BInput{
				Filename:  res.Filename,
				Frequency: domain.ReportFrequency(opts.frequency),
				GSTIN:     gstinFor(opts.gstin, res.GSTIN),
			})
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), opts.outDir, rep)
		},
	}
}

func newPortalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portals",
		Short: "List the portals that have a parser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range parser.SupportedPortals() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func gstinFor(flag string, found *string) string {
	if flag != "" {
		return flag
	}
	if found != nil {
		return *found
	}
	return ""
}

func printReport(w io.Writer, outDir string, rep *service.GeneratedReport) error {
	_, err := fmt.Fprintf(w, "%s: %d rows, taxable value %.2f -> %s\n",
		rep.Message, rep.Rows, rep.TotalTaxableValue, filepath.Join(outDir, rep.Filename))
	return err
}
