package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-tracker/internal/config"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/store"
	"github.com/KirkDiggler/dnd-tracker/internal/services"
	"github.com/KirkDiggler/dnd-tracker/internal/services/tracker"
	"github.com/KirkDiggler/dnd-tracker/internal/ui"
)

const Version = "0.3.0"

// app carries what every command needs. The tracker service is opened once
// per invocation, before the command runs.
type app struct {
	cfg       *config.Config
	log       logrus.FieldLogger
	openStore storeOpener
	catalog   tracker.Catalog // Optional, defaults to the embedded table

	ephemeral bool
	svc       tracker.Service
	// storeErr is set when the configured store could not be reached
	storeErr error
	loadErr  error
	close    func()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Track a D&D character sheet from the terminal",
		Long:          "tracker keeps one character sheet on this device and saves every change as it is made.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	root.PersistentFlags().BoolVar(&a.ephemeral, "ephemeral", false, "Keep changes in memory only")

	root.AddCommand(
		newShowCmd(a),
		newSetCmd(a),
		newCurrencyCmd(a),
		newInventoryCmd(a),
		newWeaponCmd(a),
		newLocationCmd(a),
		newSaveCmd(a),
		newClearCmd(a),
	)

	return root
}

// execute runs root and releases the store whether or not the command failed
func execute(ctx context.Context, a *app, root *cobra.Command) error {
	defer a.release()
	return root.ExecuteContext(ctx)
}

func (a *app) open(cmd *cobra.Command) error {
	cfg := *a.cfg
	if a.ephemeral {
		cfg.Store = config.StoreMemory
	}

	st, closeStore, err := a.openStore(cmd.Context(), &cfg, a.log)
	switch {
	case dnderr.Is(err, dnderr.CodeUnavailable):
		// Keep the sheet viewable; writes are refused through storeErr
		a.log.WithError(err).Warn("Storage is unreachable, changes are disabled")
		a.storeErr = err
		st, closeStore = store.NewInMemory(), func() {}
	case err != nil:
		return err
	}
	a.close = closeStore

	provider := services.NewProvider(&services.ProviderConfig{
		Store:      st,
		StorageKey: cfg.StorageKey,
		Catalog:    a.catalog,
		Notifier:   ui.NewNotifier(cmd.OutOrStdout()),
		Logger:     a.log,
	})
	a.svc = provider.Tracker
	a.loadErr = a.svc.Load(cmd.Context())
	if a.storeErr != nil {
		a.loadErr = a.storeErr
	}

	return nil
}

func (a *app) release() {
	if a.close != nil {
		a.close()
		a.close = nil
	}
}

// mutable returns the service for commands that write. A failed load is
// fatal here so defaults never overwrite a save that could not be read.
func (a *app) mutable() (tracker.Service, error) {
	if a.loadErr != nil {
		return nil, a.loadErr
	}
	return a.svc, nil
}

func (a *app) render(w io.Writer) {
	fmt.Fprintln(w, ui.RenderSheet(a.svc.Record(), a.svc.Sheet()))
}
