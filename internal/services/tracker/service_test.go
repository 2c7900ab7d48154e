package tracker_test

import (
	"context"
	"errors"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-tracker/internal/catalog"
	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	mockcharacters "github.com/KirkDiggler/dnd-tracker/internal/repositories/characters/mock"
	"github.com/KirkDiggler/dnd-tracker/internal/services/tracker"
	mocktracker "github.com/KirkDiggler/dnd-tracker/internal/services/tracker/mock"
	mockuuid "github.com/KirkDiggler/dnd-tracker/internal/uuid/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ctx      context.Context
	repo     *mockcharacters.MockRepository
	notifier *mocktracker.MockNotifier
	svc      tracker.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.repo = mockcharacters.NewMockRepository(s.ctrl)
	s.notifier = mocktracker.NewMockNotifier(s.ctrl)

	uuidGen := mockuuid.NewMockGenerator(s.ctrl)
	uuidGen.EXPECT().New().Return("fresh-id").AnyTimes()

	logger, _ := logtest.NewNullLogger()
	s.svc = tracker.NewService(&tracker.ServiceConfig{
		Repository:    s.repo,
		Catalog:       catalog.Default(),
		Notifier:      s.notifier,
		UUIDGenerator: uuidGen,
		Logger:        logger,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// expectSave expects exactly one save and returns the record it received
func (s *ServiceTestSuite) expectSave() **character.Record {
	var saved *character.Record
	s.repo.EXPECT().Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *character.Record) error {
			saved = rec.Clone()
			return nil
		})
	return &saved
}

func (s *ServiceTestSuite) storeDown() error {
	return dnderr.WrapWithCode(errors.New("dial tcp: refused"), dnderr.CodeUnavailable, "store unreachable")
}

func (s *ServiceTestSuite) TestNewService_StartsWithDefaults() {
	rec := s.svc.Record()
	s.Equal(character.New("fresh-id"), rec)
	s.Equal("New Character", s.svc.Sheet().HeaderName)
}

func (s *ServiceTestSuite) TestLoad() {
	saved := character.New("saved-id")
	saved.Name = "Vex"
	s.repo.EXPECT().Load(s.ctx).Return(saved, nil)

	s.Require().NoError(s.svc.Load(s.ctx))
	s.Equal(saved, s.svc.Record())
	s.Equal("Vex", s.svc.Sheet().HomeName)
}

func (s *ServiceTestSuite) TestLoad_StoreErrorFallsBackToDefaults() {
	s.repo.EXPECT().Load(s.ctx).Return(nil, s.storeDown())

	err := s.svc.Load(s.ctx)
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))
	s.Equal(character.New("fresh-id"), s.svc.Record())
}

func (s *ServiceTestSuite) TestRecord_ReturnsCopy() {
	s.expectSave()
	s.Require().NoError(s.svc.AddInventoryItem(s.ctx, "Rope", 1))

	rec := s.svc.Record()
	rec.Inventory[0].Name = "Changed"
	rec.Name = "Changed"

	s.Equal("Rope", s.svc.Record().Inventory[0].Name)
	s.Empty(s.svc.Record().Name)
}

func (s *ServiceTestSuite) TestSetField_SavesWhenChanged() {
	saved := s.expectSave()

	s.Require().NoError(s.svc.SetField(s.ctx, character.FieldName, "Vex"))
	s.Require().NotNil(*saved)
	s.Equal("Vex", (*saved).Name)
}

func (s *ServiceTestSuite) TestSetField_SkipsSaveWhenUnchanged() {
	// level is already 1 and "abc" coerces to 1
	s.NoError(s.svc.SetField(s.ctx, character.FieldLevel, "abc"))
	s.NoError(s.svc.SetField(s.ctx, character.FieldSpeed, "30"))
}

func (s *ServiceTestSuite) TestSetField_UnknownPath() {
	err := s.svc.SetField(s.ctx, character.Field("stats.luck"), "12")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestSetField_UpdatesSheet() {
	s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil).Times(2)

	s.Require().NoError(s.svc.SetField(s.ctx, character.StatField(character.Dexterity), "16"))
	s.Require().NoError(s.svc.SetField(s.ctx, character.FieldLevel, "9"))

	sheet := s.svc.Sheet()
	s.Equal("+3", sheet.Initiative)
	s.Equal("+3", sheet.Modifiers[character.Dexterity])
	s.Equal("+4", sheet.ProficiencyBonus)
	s.Equal("Lv.9", sheet.LevelBadge)
}

func (s *ServiceTestSuite) TestSetField_SaveFailureKeepsChange() {
	s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(s.storeDown())

	err := s.svc.SetField(s.ctx, character.FieldRace, "Tiefling")
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))
	s.Equal("set_field", dnderr.GetMeta(err)["operation"])
	s.Equal("Tiefling", s.svc.Record().Race)
}

func (s *ServiceTestSuite) TestAdjustCurrency() {
	s.NoError(s.svc.AdjustCurrency(s.ctx, character.Gold, -1), "no save at zero")

	saved := s.expectSave()
	s.Require().NoError(s.svc.AdjustCurrency(s.ctx, character.Silver, 1))
	s.Equal(character.Currency{Silver: 1}, (*saved).Currency)
}

func (s *ServiceTestSuite) TestInventory() {
	s.NoError(s.svc.AddInventoryItem(s.ctx, "   ", 3), "blank names are ignored")

	s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil).Times(3)
	s.Require().NoError(s.svc.AddInventoryItem(s.ctx, "Torch", 2))
	s.Require().NoError(s.svc.AddInventoryItem(s.ctx, "Torch", 3))

	rec := s.svc.Record()
	s.Require().Len(rec.Inventory, 1)
	s.Equal(5, rec.Inventory[0].Quantity)

	s.NoError(s.svc.RemoveInventoryItem(s.ctx, 999))
	s.Require().NoError(s.svc.RemoveInventoryItem(s.ctx, rec.Inventory[0].ID))
	s.Empty(s.svc.Record().Inventory)
}

func (s *ServiceTestSuite) TestWeapons() {
	s.NoError(s.svc.AddWeapon(s.ctx, "Lightsaber"), "unknown weapons are ignored")

	s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil).Times(2)
	s.Require().NoError(s.svc.AddWeapon(s.ctx, "Longsword"))

	rec := s.svc.Record()
	s.Require().Len(rec.Weapons, 1)
	s.Equal("1d8", rec.Weapons[0].Damage)
	s.Equal("slashing", rec.Weapons[0].DamageType)

	s.NoError(s.svc.RemoveWeapon(s.ctx, rec.Weapons[0].ID+100))
	s.Require().NoError(s.svc.RemoveWeapon(s.ctx, rec.Weapons[0].ID))
	s.Empty(s.svc.Record().Weapons)
}

func (s *ServiceTestSuite) TestCatalog() {
	names := s.svc.Catalog().Names()
	s.Contains(names, "Longsword")
	s.IsNonDecreasing(names)

	_, ok := s.svc.Catalog().Get("Longsword")
	s.True(ok)
}

func (s *ServiceTestSuite) TestLocations() {
	s.NoError(s.svc.AddLocation(s.ctx, ""))

	s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil).Times(3)
	s.Require().NoError(s.svc.AddLocation(s.ctx, "Neverwinter"))
	id := s.svc.Record().Locations[0].ID

	s.Require().NoError(s.svc.SetLocationNotes(s.ctx, id, "Lord's Alliance contact"))
	s.NoError(s.svc.SetLocationNotes(s.ctx, id, "Lord's Alliance contact"), "same notes, no save")
	s.NoError(s.svc.SetLocationNotes(s.ctx, id+1, "nowhere"))
	s.Equal("Lord's Alliance contact", s.svc.Record().Locations[0].Notes)

	s.Require().NoError(s.svc.RemoveLocation(s.ctx, id))
	s.NoError(s.svc.RemoveLocation(s.ctx, id))
	s.Empty(s.svc.Record().Locations)
}

func (s *ServiceTestSuite) TestSave_Notifies() {
	gomock.InOrder(
		s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil),
		s.notifier.EXPECT().Notify(tracker.MessageSaved),
	)

	s.NoError(s.svc.Save(s.ctx))
}

func (s *ServiceTestSuite) TestSave_FailureDoesNotNotify() {
	s.repo.EXPECT().Save(s.ctx, gomock.Any()).Return(s.storeDown())

	err := s.svc.Save(s.ctx)
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))
}

func (s *ServiceTestSuite) TestClear() {
	s.expectSave()
	s.Require().NoError(s.svc.SetField(s.ctx, character.FieldName, "Vex"))

	gomock.InOrder(
		s.repo.EXPECT().Clear(s.ctx).Return(nil),
		s.notifier.EXPECT().Notify(tracker.MessageCleared),
	)
	s.Require().NoError(s.svc.Clear(s.ctx))

	s.Equal(character.New("fresh-id"), s.svc.Record())
	s.Equal("Adventurer", s.svc.Sheet().HomeName)
}

func (s *ServiceTestSuite) TestClear_FailureKeepsRecord() {
	s.expectSave()
	s.Require().NoError(s.svc.SetField(s.ctx, character.FieldName, "Vex"))

	s.repo.EXPECT().Clear(s.ctx).Return(s.storeDown())

	err := s.svc.Clear(s.ctx)
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))
	s.Equal("Vex", s.svc.Record().Name)
}

func TestNewService_RequiredDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)

	assert.Panics(t, func() { tracker.NewService(nil) })
	assert.Panics(t, func() { tracker.NewService(&tracker.ServiceConfig{Catalog: catalog.Default()}) })
	assert.Panics(t, func() { tracker.NewService(&tracker.ServiceConfig{Repository: repo}) })
}

func TestLogNotifier(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	tracker.NewLogNotifier(logger).Notify(tracker.MessageSaved)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, tracker.MessageSaved, entry.Message)
		assert.Equal(t, true, entry.Data["notification"])
	}
}
