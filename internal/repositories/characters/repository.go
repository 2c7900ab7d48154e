package characters

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/store"
	"github.com/KirkDiggler/dnd-tracker/internal/uuid"
)

// RepoConfig holds configuration for the repository
type RepoConfig struct {
	Store         store.Store // Required
	Key           string      // Defaults to DefaultKey
	UUIDGenerator uuid.Generator
	Logger        logrus.FieldLogger
}

type repository struct {
	store         store.Store
	key           string
	uuidGenerator uuid.Generator
	log           logrus.FieldLogger
}

// NewRepository creates a repository that keeps the record under one store key
func NewRepository(cfg *RepoConfig) Repository {
	if cfg == nil {
		panic("RepoConfig cannot be nil")
	}
	if cfg.Store == nil {
		panic("store cannot be nil")
	}

	repo := &repository{
		store:         cfg.Store,
		key:           cfg.Key,
		uuidGenerator: cfg.UUIDGenerator,
		log:           cfg.Logger,
	}
	if repo.key == "" {
		repo.key = DefaultKey
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.log == nil {
		repo.log = logrus.StandardLogger()
	}
	repo.log = repo.log.WithField("key", repo.key)

	return repo
}

func (r *repository) Load(ctx context.Context) (*character.Record, error) {
	raw, err := r.store.Get(ctx, r.key)
	if dnderr.IsNotFound(err) {
		return character.New(r.uuidGenerator.New()), nil
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load character").
			WithMeta("key", r.key)
	}

	rec, err := r.decode(raw)
	if err != nil {
		// Corrupt saves are dropped; the next save overwrites them
		r.log.WithError(err).Warn("Discarding unreadable saved character, starting from defaults")
		return character.New(r.uuidGenerator.New()), nil
	}

	return rec, nil
}

func (r *repository) Save(ctx context.Context, rec *character.Record) error {
	if rec == nil {
		return dnderr.InvalidArgument("character record cannot be nil")
	}

	jsonData, err := json.Marshal(toCharacterData(rec))
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to marshal character")
	}

	if err := r.store.Set(ctx, r.key, jsonData); err != nil {
		return dnderr.Wrap(err, "failed to save character").
			WithMeta("key", r.key).
			WithMeta("profile_id", rec.ID)
	}

	return nil
}

func (r *repository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return dnderr.Wrap(err, "failed to clear character").
			WithMeta("key", r.key)
	}

	return nil
}

// decode parses a stored document, upgrades it to the current schema and
// converts it to a record
func (r *repository) decode(raw []byte) (*character.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeDataLoss, "saved character is not valid JSON")
	}
	if doc == nil {
		return nil, dnderr.New(dnderr.CodeDataLoss, "saved character is empty")
	}

	from, err := migrate(doc, r.uuidGenerator)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeDataLoss, "saved character has a bad schema version")
	}
	if from < SchemaVersion {
		r.log.WithFields(logrus.Fields{
			"from_version": from,
			"to_version":   SchemaVersion,
		}).Info("Upgraded saved character")
	}

	upgraded, err := json.Marshal(doc)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to re-encode upgraded character")
	}

	var data CharacterData
	if err := json.Unmarshal(upgraded, &data); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeDataLoss, "saved character has unexpected field types")
	}

	return fromCharacterData(&data), nil
}
