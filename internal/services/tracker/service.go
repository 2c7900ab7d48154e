package tracker

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-tracker/internal/domain/rules"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-tracker/internal/uuid"
)

// Repository is an alias for the characters repository interface
type Repository = characters.Repository

// Catalog is the weapon catalog as the service needs it
type Catalog interface {
	character.WeaponLookup
	Names() []string
}

// Service owns the one character record of a process. Every mutator that
// changes the record saves it before returning.
type Service interface {
	// Load replaces the held record with the saved one. When the store cannot
	// be read the record falls back to defaults and the error is returned.
	Load(ctx context.Context) error

	// Record returns a copy of the held record
	Record() *character.Record

	// Sheet returns the derived display values for the held record
	Sheet() rules.Sheet

	// Catalog is the weapon catalog AddWeapon resolves names against
	Catalog() Catalog

	SetField(ctx context.Context, path character.Field, value string) error
	AdjustCurrency(ctx context.Context, d character.Denomination, delta int) error
	AddInventoryItem(ctx context.Context, name string, quantity int) error
	RemoveInventoryItem(ctx context.Context, id int64) error
	AddWeapon(ctx context.Context, name string) error
	RemoveWeapon(ctx context.Context, id int64) error
	AddLocation(ctx context.Context, name string) error
	RemoveLocation(ctx context.Context, id int64) error
	SetLocationNotes(ctx context.Context, id int64, notes string) error

	// Save writes the record and confirms with a notification
	Save(ctx context.Context) error

	// Clear removes the saved record and resets to defaults
	Clear(ctx context.Context) error
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository // Required
	Catalog       Catalog    // Required
	Notifier      Notifier   // Defaults to a LogNotifier
	UUIDGenerator uuid.Generator
	Logger        logrus.FieldLogger
}

type service struct {
	repository    Repository
	catalog       Catalog
	notifier      Notifier
	uuidGenerator uuid.Generator
	log           logrus.FieldLogger

	record *character.Record
}

// NewService creates a tracker service holding a default record until Load is called
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		catalog:       cfg.Catalog,
		notifier:      cfg.Notifier,
		uuidGenerator: cfg.UUIDGenerator,
		log:           cfg.Logger,
	}
	if svc.log == nil {
		svc.log = logrus.StandardLogger()
	}
	if svc.notifier == nil {
		svc.notifier = NewLogNotifier(svc.log)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	svc.record = character.New(svc.uuidGenerator.New())

	return svc
}

func (s *service) Load(ctx context.Context) error {
	rec, err := s.repository.Load(ctx)
	if err != nil {
		s.record = character.New(s.uuidGenerator.New())
		s.log.WithError(err).Warn("Could not load saved character, using defaults")
		return err
	}

	s.record = rec
	s.log.WithField("profile_id", rec.ID).Debug("Loaded character")
	return nil
}

func (s *service) Record() *character.Record {
	return s.record.Clone()
}

func (s *service) Sheet() rules.Sheet {
	return rules.Derive(s.record)
}

func (s *service) Catalog() Catalog {
	return s.catalog
}

func (s *service) SetField(ctx context.Context, path character.Field, value string) error {
	changed, err := s.record.SetField(path, value)
	if err != nil {
		return err
	}
	return s.saveIfChanged(ctx, "set_field", changed)
}

func (s *service) AdjustCurrency(ctx context.Context, d character.Denomination, delta int) error {
	return s.saveIfChanged(ctx, "adjust_currency", s.record.AdjustCurrency(d, delta))
}

func (s *service) AddInventoryItem(ctx context.Context, name string, quantity int) error {
	return s.saveIfChanged(ctx, "add_inventory_item", s.record.AddInventoryItem(name, quantity))
}

func (s *service) RemoveInventoryItem(ctx context.Context, id int64) error {
	return s.saveIfChanged(ctx, "remove_inventory_item", s.record.RemoveInventoryItem(id))
}

func (s *service) AddWeapon(ctx context.Context, name string) error {
	return s.saveIfChanged(ctx, "add_weapon", s.record.AddWeapon(s.catalog, name))
}

func (s *service) RemoveWeapon(ctx context.Context, id int64) error {
	return s.saveIfChanged(ctx, "remove_weapon", s.record.RemoveWeapon(id))
}

func (s *service) AddLocation(ctx context.Context, name string) error {
	return s.saveIfChanged(ctx, "add_location", s.record.AddLocation(name))
}

func (s *service) RemoveLocation(ctx context.Context, id int64) error {
	return s.saveIfChanged(ctx, "remove_location", s.record.RemoveLocation(id))
}

func (s *service) SetLocationNotes(ctx context.Context, id int64, notes string) error {
	return s.saveIfChanged(ctx, "set_location_notes", s.record.SetLocationNotes(id, notes))
}

func (s *service) Save(ctx context.Context) error {
	if err := s.save(ctx, "save"); err != nil {
		return err
	}
	s.notifier.Notify(MessageSaved)
	return nil
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.repository.Clear(ctx); err != nil {
		return dnderr.Wrap(err, "failed to clear character").
			WithMeta("profile_id", s.record.ID)
	}

	s.log.WithField("profile_id", s.record.ID).Info("Cleared character")
	s.record = character.New(s.uuidGenerator.New())
	s.notifier.Notify(MessageCleared)
	return nil
}

func (s *service) saveIfChanged(ctx context.Context, operation string, changed bool) error {
	if !changed {
		return nil
	}
	return s.save(ctx, operation)
}

func (s *service) save(ctx context.Context, operation string) error {
	if err := s.repository.Save(ctx, s.record); err != nil {
		return dnderr.Wrap(err, "failed to save character").
			WithMeta("operation", operation)
	}

	s.log.WithFields(logrus.Fields{
		"profile_id": s.record.ID,
		"operation":  operation,
	}).Debug("Saved character")
	return nil
}
