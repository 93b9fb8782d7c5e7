package repositories

import (
	"context"
	"testing"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/database"
	"household-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type NamedPeriodRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo NamedPeriodRepositoryInterface
	ctx  context.Context
}

func (s *NamedPeriodRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewNamedPeriodRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *NamedPeriodRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestNamedPeriodRepositorySuite(t *testing.T) {
	suite.Run(t, new(NamedPeriodRepositorySuite))
}

func (s *NamedPeriodRepositorySuite) TestCreateStoresThaiMonthName() {
	period := &models.NamedPeriod{
		Year:      2024,
		Month:     calendar.June,
		StartDate: day(2024, time.May, 25),
		EndDate:   day(2024, time.June, 24),
	}
	s.Require().NoError(s.repo.Create(s.ctx, period))

	var raw string
	s.Require().NoError(s.db.Raw("SELECT month FROM named_periods WHERE id = ?", period.ID).Scan(&raw).Error)
	s.Equal("มิถุนายน", raw)

	found, err := s.repo.GetByID(s.ctx, period.ID)
	s.Require().NoError(err)
	s.Equal(calendar.June, found.Month)
}

func (s *NamedPeriodRepositorySuite) TestFindByMonthYear() {
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.June, 2024, day(2024, time.May, 25), day(2024, time.June, 24))
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.June, 2023, day(2023, time.May, 25), day(2023, time.June, 24))

	found, err := s.repo.FindByMonthYear(s.ctx, calendar.June, 2024)
	s.Require().NoError(err)
	s.Equal(2024, found.Year)
	s.Equal(25, found.StartDate.Day())
}

func (s *NamedPeriodRepositorySuite) TestFindByMonthYear_NotFound() {
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.May, 2024, day(2024, time.April, 25), day(2024, time.May, 24))

	_, err := s.repo.FindByMonthYear(s.ctx, calendar.June, 2024)
	s.ErrorIs(err, ErrNamedPeriodNotFound)
}

func (s *NamedPeriodRepositorySuite) TestFindByMonthYear_DuplicatePicksEarliestCreated() {
	first := &models.NamedPeriod{
		Year: 2024, Month: calendar.March,
		StartDate: day(2024, time.February, 25), EndDate: day(2024, time.March, 24),
		CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	second := &models.NamedPeriod{
		Year: 2024, Month: calendar.March,
		StartDate: day(2024, time.March, 1), EndDate: day(2024, time.March, 31),
		CreatedAt: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.Create(s.ctx, second))
	s.Require().NoError(s.repo.Create(s.ctx, first))

	found, err := s.repo.FindByMonthYear(s.ctx, calendar.March, 2024)
	s.Require().NoError(err)
	s.Equal(first.ID, found.ID)

	count, err := s.repo.CountByMonthYear(s.ctx, calendar.March, 2024, uuid.Nil)
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	count, err = s.repo.CountByMonthYear(s.ctx, calendar.March, 2024, first.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *NamedPeriodRepositorySuite) TestFindByYear() {
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.December, 2024, day(2024, time.November, 25), day(2024, time.December, 24))
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.January, 2024, day(2023, time.December, 25), day(2024, time.January, 24))
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.January, 2025, day(2024, time.December, 25), day(2025, time.January, 24))

	periods, err := s.repo.FindByYear(s.ctx, 2024)
	s.Require().NoError(err)
	s.Len(periods, 2)
}

func (s *NamedPeriodRepositorySuite) TestUpdateAndDelete() {
	period := database.CreateTestNamedPeriod(s.T(), s.db, calendar.April, 2024, day(2024, time.March, 25), day(2024, time.April, 24))

	period.EndDate = day(2024, time.April, 26)
	s.Require().NoError(s.repo.Update(s.ctx, period))

	found, err := s.repo.GetByID(s.ctx, period.ID)
	s.Require().NoError(err)
	s.Equal(26, found.EndDate.Day())

	s.Require().NoError(s.repo.Delete(s.ctx, period.ID))
	_, err = s.repo.GetByID(s.ctx, period.ID)
	s.ErrorIs(err, ErrNamedPeriodNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, period.ID), ErrNamedPeriodNotFound)
}

func (s *NamedPeriodRepositorySuite) TestGetAll_NewestYearFirst() {
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.January, 2023, day(2022, time.December, 25), day(2023, time.January, 24))
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.January, 2025, day(2024, time.December, 25), day(2025, time.January, 24))
	database.CreateTestNamedPeriod(s.T(), s.db, calendar.January, 2024, day(2023, time.December, 25), day(2024, time.January, 24))

	periods, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(periods, 3)
	s.Equal(2025, periods[0].Year)
	s.Equal(2024, periods[1].Year)
	s.Equal(2023, periods[2].Year)
}
