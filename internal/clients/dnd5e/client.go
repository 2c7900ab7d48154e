package dnd5e

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
)

const (
	weaponCategory     = "weapon"
	defaultConcurrency = 8
)

type Config struct {
	HttpClient *http.Client

	// BaseURL points requests at a mirror of the API. Only the scheme and host
	// are used; paths are left to the upstream client.
	BaseURL string

	// Concurrency caps in-flight equipment requests. Defaults to 8.
	Concurrency int

	// Source replaces the HTTP API, mostly for tests
	Source Source

	Logger logrus.FieldLogger
}

type client struct {
	source      Source
	concurrency int
	log         logrus.FieldLogger
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	c := &client{
		source:      cfg.Source,
		concurrency: cfg.Concurrency,
		log:         cfg.Logger,
	}
	if c.concurrency < 1 {
		c.concurrency = defaultConcurrency
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}

	if c.source == nil {
		httpClient, err := rebase(cfg.HttpClient, cfg.BaseURL)
		if err != nil {
			return nil, err
		}

		api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client: httpClient,
		})
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to create dnd5e api client")
		}
		c.source = &apiSource{api: api}
	}

	return c, nil
}

func (c *client) ListWeapons(ctx context.Context) ([]catalog.Entry, error) {
	keys, err := c.source.CategoryKeys(weaponCategory)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list weapons").
			WithMeta("category", weaponCategory)
	}

	entries := make([]catalog.Entry, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			equip, err := c.source.Equipment(key)
			if err != nil {
				return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to fetch equipment").
					WithMeta("key", key)
			}

			weapon, ok := equip.(*apiEntities.Weapon)
			if !ok || weapon == nil {
				c.log.WithField("key", key).Warn("Skipping equipment that is not a weapon")
				return nil
			}

			entries[i] = weaponToEntry(weapon)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries = slices.DeleteFunc(entries, func(e catalog.Entry) bool {
		return e.Name == ""
	})
	slices.SortFunc(entries, func(a, b catalog.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	c.log.WithField("count", len(entries)).Info("Fetched weapons")
	return entries, nil
}

// apiSource reads from the upstream HTTP client
type apiSource struct {
	api dnd5e.Interface
}

func (s *apiSource) CategoryKeys(category string) ([]string, error) {
	data, err := s.api.GetEquipmentCategory(category)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(data.Equipment))
	for _, ref := range data.Equipment {
		if ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}
	return keys, nil
}

func (s *apiSource) Equipment(key string) (dnd5e.EquipmentInterface, error) {
	return s.api.GetEquipment(key)
}

// rebase returns a client whose requests go to the host of baseURL
func rebase(httpClient *http.Client, baseURL string) (*http.Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		return httpClient, nil
	}

	target, err := url.Parse(baseURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, dnderr.InvalidArgumentf("invalid base url %q", baseURL).
			WithMeta("base_url", baseURL)
	}

	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	rebased := *httpClient
	rebased.Transport = &rebaseTransport{scheme: target.Scheme, host: target.Host, next: next}
	return &rebased, nil
}

type rebaseTransport struct {
	scheme string
	host   string
	next   http.RoundTripper
}

func (t *rebaseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.scheme
	out.URL.Host = t.host
	out.Host = t.host
	return t.next.RoundTrip(out)
}
