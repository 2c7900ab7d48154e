package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
	"github.com/KirkDiggler/dnd-tracker/internal/config"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/store"
	mockstore "github.com/KirkDiggler/dnd-tracker/internal/repositories/store/mock"
)

type CommandsTestSuite struct {
	suite.Suite
	store *store.InMemory
}

func (s *CommandsTestSuite) SetupTest() {
	s.store = store.NewInMemory()
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func newTestApp(opener storeOpener) *app {
	logger, _ := logtest.NewNullLogger()
	return &app{
		cfg:       &config.Config{Store: config.StoreMemory, StorageKey: "k"},
		log:       logger,
		openStore: opener,
	}
}

func runApp(a *app, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := execute(context.Background(), a, root)
	return out.String(), err
}

func runWith(st store.Store, args ...string) (string, error) {
	return runApp(newTestApp(func(context.Context, *config.Config, logrus.FieldLogger) (store.Store, func(), error) {
		return st, func() {}, nil
	}), args...)
}

func (s *CommandsTestSuite) run(args ...string) string {
	out, err := runWith(s.store, args...)
	s.Require().NoError(err, "tracker %v", args)
	return out
}

func (s *CommandsTestSuite) TestShow_Defaults() {
	out := s.run("show")

	s.Contains(out, "Welcome back, Adventurer")
	s.Contains(out, "New Character")
	s.Contains(out, "Lv.1")
}

func (s *CommandsTestSuite) TestSet_PersistsBetweenInvocations() {
	s.Contains(s.run("set", "name", "Vex", "the", "Bold"), "Vex the Bold")
	s.run("set", "stats.dexterity", "16")

	out := s.run("show")
	s.Contains(out, "Welcome back, Vex the Bold")
	s.Contains(out, "+3")
}

func (s *CommandsTestSuite) TestSet_CoercesNumbers() {
	s.run("set", "level", "5")
	s.Contains(s.run("set", "level", "abc"), "Lv.1")
}

func (s *CommandsTestSuite) TestSet_UnknownField() {
	_, err := runWith(s.store, "set", "charm", "12")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *CommandsTestSuite) TestCurrency() {
	s.Contains(s.run("currency", "gold", "add", "5"), "5 gp")
	s.Contains(s.run("currency", "gold", "sub"), "4 gp")
	s.Contains(s.run("currency", "gold", "sub", "10"), "0 gp")

	_, err := runWith(s.store, "currency", "platinum", "add")
	s.True(dnderr.IsInvalidArgument(err))
	_, err = runWith(s.store, "currency", "gold", "double")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *CommandsTestSuite) TestInventory() {
	s.run("inventory", "add", "Rope", "--qty", "2")
	s.Contains(s.run("inventory", "add", "Rope"), "#1 Rope x3")
	s.Contains(s.run("inventory", "add", "Healing", "Potion", "-q", "zero"), "#2 Healing Potion x1")

	out := s.run("inventory", "remove", "1")
	s.NotContains(out, "Rope")

	_, err := runWith(s.store, "inventory", "remove", "one")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *CommandsTestSuite) TestWeapons() {
	s.Contains(s.run("weapon", "add", "Longsword"), "1d8 slashing")
	s.Contains(s.run("weapon", "add", "Light", "hammer"), "1d4 bludgeoning")
	s.NotContains(s.run("weapon", "add", "Lightsaber"), "Lightsaber")

	out := s.run("weapon", "remove", "#1")
	s.NotContains(out, "Longsword")
	s.Contains(out, "Light hammer")
}

func (s *CommandsTestSuite) TestWeaponList() {
	out := s.run("weapon", "list")
	s.Contains(out, "Dagger")
	s.Contains(out, "Warhammer")
}

func (s *CommandsTestSuite) TestWeaponList_ServiceCatalog() {
	weapons, err := catalog.New([]byte("weapons:\n  - name: Boomerang\n    damage: 1d4\n    damage_type: bludgeoning\n"))
	s.Require().NoError(err)

	a := newTestApp(func(context.Context, *config.Config, logrus.FieldLogger) (store.Store, func(), error) {
		return s.store, func() {}, nil
	})
	a.catalog = weapons

	out, err := runApp(a, "weapon", "list")
	s.Require().NoError(err)
	s.Contains(out, "Boomerang")
	s.NotContains(out, "Dagger")
}

func (s *CommandsTestSuite) TestLocations() {
	s.run("location", "add", "Waterdeep")
	s.Contains(s.run("location", "notes", "1", "Yawning", "Portal"), "Waterdeep: Yawning Portal")
	s.NotContains(s.run("location", "remove", "1"), "Waterdeep")
}

func (s *CommandsTestSuite) TestSave() {
	s.Contains(s.run("save"), "Progress saved!")

	_, err := s.store.Get(context.Background(), "k")
	s.NoError(err)
}

func (s *CommandsTestSuite) TestClear() {
	s.run("set", "name", "Vex")

	_, err := runWith(s.store, "clear")
	s.True(dnderr.IsInvalidArgument(err), "clear needs confirmation")

	s.Contains(s.run("clear", "--yes"), "All data cleared!")
	s.Contains(s.run("show"), "New Character")
}

func TestCommands_UnreadableStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstore.NewMockStore(ctrl)
	down := dnderr.WrapWithCode(errors.New("connection refused"), dnderr.CodeUnavailable, "store unreachable")
	st.EXPECT().Get(gomock.Any(), "k").Return(nil, down).AnyTimes()

	out, err := runWith(st, "show")
	require.NoError(t, err, "show still renders defaults")
	assert.Contains(t, out, "store unreachable")
	assert.Contains(t, out, "New Character")

	_, err = runWith(st, "set", "name", "Vex")
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err), "writes are refused so the save is not overwritten")
}

func TestCommands_StoreUnreachable(t *testing.T) {
	down := dnderr.WrapWithCode(errors.New("connection refused"), dnderr.CodeUnavailable, "failed to connect to redis")
	opener := func(context.Context, *config.Config, logrus.FieldLogger) (store.Store, func(), error) {
		return nil, nil, down
	}

	out, err := runApp(newTestApp(opener), "show")
	require.NoError(t, err, "show still renders defaults")
	assert.Contains(t, out, "failed to connect to redis")
	assert.Contains(t, out, "New Character")

	for _, args := range [][]string{
		{"set", "name", "Vex"},
		{"inventory", "add", "Rope"},
		{"currency", "gold", "add", "5"},
		{"save"},
		{"clear", "--yes"},
	} {
		out, err := runApp(newTestApp(opener), args...)
		assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err), "tracker %v must not report success", args)
		assert.NotContains(t, out, "Vex")
		assert.NotContains(t, out, "Progress saved!")
		assert.NotContains(t, out, "All data cleared!")
	}
}

func TestCommands_OpenErrorIsFatal(t *testing.T) {
	bad := dnderr.InvalidArgument("failed to parse REDIS_URL")
	_, err := runApp(newTestApp(func(context.Context, *config.Config, logrus.FieldLogger) (store.Store, func(), error) {
		return nil, nil, bad
	}), "show")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestCommands_ReleasesStore(t *testing.T) {
	st := store.NewInMemory()
	closed := 0
	opener := func(context.Context, *config.Config, logrus.FieldLogger) (store.Store, func(), error) {
		return st, func() { closed++ }, nil
	}

	_, err := runApp(newTestApp(opener), "show")
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	_, err = runApp(newTestApp(opener), "set", "charm", "12")
	require.Error(t, err)
	assert.Equal(t, 2, closed, "a failing command still releases the store")

	_, err = runApp(newTestApp(opener), "clear")
	require.Error(t, err)
	assert.Equal(t, 3, closed)
}
