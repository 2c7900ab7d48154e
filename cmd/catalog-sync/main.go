// Command catalog-sync rebuilds the embedded weapon table from the D&D 5e API.
//
//	go run ./cmd/catalog-sync -o internal/catalog/weapons.yaml
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
	"github.com/KirkDiggler/dnd-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-tracker/internal/config"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/logging"
	"github.com/KirkDiggler/dnd-tracker/internal/ui"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorText(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath     string
		concurrency int
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:           "catalog-sync",
		Short:         "Fetch the weapon table from the D&D 5e API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}

			client, err := dnd5e.New(&dnd5e.Config{
				HttpClient: &http.Client{
					Timeout: timeout,
				},
				BaseURL:     cfg.DND5E.BaseURL,
				Concurrency: concurrency,
				Logger:      logger,
			})
			if err != nil {
				return err
			}

			n, err := run(cmd.Context(), client, outPath, cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Good.Render(fmt.Sprintf("%s Wrote %d weapons", ui.IconDone, n)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 8, "Parallel equipment requests")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")

	return cmd
}

// run fetches the table and writes it to outPath, or stdout for "-". The file
// at outPath is only replaced once a complete table has been built.
func run(ctx context.Context, client dnd5e.Client, outPath string, stdout io.Writer, log logrus.FieldLogger) (int, error) {
	var buf bytes.Buffer
	n, err := syncWeapons(ctx, client, &buf, log)
	if err != nil {
		return 0, err
	}

	if outPath == "-" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return 0, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to write weapon table")
		}
		return n, nil
	}

	if err := replaceFile(outPath, buf.Bytes()); err != nil {
		return 0, err
	}
	return n, nil
}

// replaceFile writes data next to path and renames it into place
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-sync-*.tmp")
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to create output file").
			WithMeta("path", path)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to write weapon table").
			WithMeta("path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to close weapon table").
			WithMeta("path", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to set weapon table mode").
			WithMeta("path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to replace weapon table").
			WithMeta("path", path)
	}

	return nil
}

// syncWeapons writes the fetched weapons as a table that catalog.New accepts
func syncWeapons(ctx context.Context, client dnd5e.Client, out io.Writer, log logrus.FieldLogger) (int, error) {
	entries, err := client.ListWeapons(ctx)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, dnderr.NotFound("the API returned no weapons")
	}

	data, err := catalog.Encode(entries)
	if err != nil {
		return 0, err
	}

	// Refuse to write a table the tracker could not load
	parsed, err := catalog.New(data)
	if err != nil {
		return 0, dnderr.Wrap(err, "fetched weapons do not form a valid table")
	}

	if _, err := out.Write(data); err != nil {
		return 0, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to write weapon table")
	}

	log.WithField("count", parsed.Len()).Info("Wrote weapon table")
	return parsed.Len(), nil
}
