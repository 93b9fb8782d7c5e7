package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/dto"
	"household-ledger/internal/models"
	"household-ledger/internal/repositories"
	"household-ledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PeriodServiceSuite defines the test suite for PeriodServiceInterface
type PeriodServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	periodRepo *repository_mocks.MockNamedPeriodRepositoryInterface
	logger     *MockReportLogger
	metrics    *MockMetricsRecorder
	service    PeriodServiceInterface
	ctx        context.Context
}

func (s *PeriodServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.periodRepo = repository_mocks.NewMockNamedPeriodRepositoryInterface(s.ctrl)
	s.logger = &MockReportLogger{}
	s.metrics = NewMockMetricsRecorder()
	s.service = NewPeriodService(s.periodRepo, s.logger, s.metrics, bangkok)
	s.ctx = context.Background()
}

func (s *PeriodServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPeriodServiceSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceSuite))
}

func period(month calendar.Month, year int, start, end time.Time) models.NamedPeriod {
	return models.NamedPeriod{ID: uuid.New(), Year: year, Month: month, StartDate: start, EndDate: end}
}

func (s *PeriodServiceSuite) TestResolvePeriod_Found() {
	p := period(calendar.March, 2024, ictDay(2024, time.February, 25), ictDay(2024, time.March, 24))
	s.periodRepo.EXPECT().FindByMonthYear(s.ctx, calendar.March, 2024).Return(&p, nil)

	rng, err := s.service.ResolvePeriod(s.ctx, calendar.March, 2024)

	s.Require().NoError(err)
	s.True(rng.Start.Equal(ictDay(2024, time.February, 25)))
	s.True(rng.End.Equal(calendar.EndOfDay(ictDay(2024, time.March, 24))))
}

func (s *PeriodServiceSuite) TestResolvePeriod_NotFoundNeverFallsBack() {
	s.periodRepo.EXPECT().FindByMonthYear(s.ctx, calendar.March, 2024).Return(nil, repositories.ErrNamedPeriodNotFound)

	rng, err := s.service.ResolvePeriod(s.ctx, calendar.March, 2024)

	s.ErrorIs(err, ErrPeriodNotFound)
	s.True(rng.IsZero())
	s.True(s.logger.Has("period_not_found"))
	s.Equal(1, s.metrics.Counter("period.not_found|month"))
}

func (s *PeriodServiceSuite) TestResolvePeriod_StoreFailure() {
	s.periodRepo.EXPECT().FindByMonthYear(s.ctx, calendar.March, 2024).Return(nil, errors.New("connection refused"))

	_, err := s.service.ResolvePeriod(s.ctx, calendar.March, 2024)

	s.ErrorIs(err, ErrDataSource)
	s.Contains(err.Error(), "connection refused")
}

func (s *PeriodServiceSuite) TestResolvePeriod_InvalidMonth() {
	_, err := s.service.ResolvePeriod(s.ctx, calendar.Month(12), 2024)

	s.ErrorIs(err, calendar.ErrInvalidMonth)
}

func (s *PeriodServiceSuite) TestResolveAnnualPeriods_SortedByMonthAndDeduplicated() {
	first := period(calendar.March, 2024, ictDay(2024, time.February, 25), ictDay(2024, time.March, 24))
	duplicate := period(calendar.March, 2024, ictDay(2024, time.March, 1), ictDay(2024, time.March, 31))
	s.periodRepo.EXPECT().FindByYear(s.ctx, 2024).Return([]models.NamedPeriod{
		period(calendar.December, 2024, ictDay(2024, time.November, 25), ictDay(2024, time.December, 24)),
		first,
		period(calendar.January, 2024, ictDay(2023, time.December, 25), ictDay(2024, time.January, 24)),
		duplicate,
	}, nil)

	periods, err := s.service.ResolveAnnualPeriods(s.ctx, 2024)

	s.Require().NoError(err)
	s.Require().Len(periods, 3)
	s.Equal(calendar.January, periods[0].Month)
	s.Equal(calendar.March, periods[1].Month)
	s.Equal(calendar.December, periods[2].Month)
	s.True(periods[1].Range.Start.Equal(first.StartDate))
}

func (s *PeriodServiceSuite) TestResolveAnnualPeriods_Empty() {
	s.periodRepo.EXPECT().FindByYear(s.ctx, 2024).Return([]models.NamedPeriod{}, nil)

	periods, err := s.service.ResolveAnnualPeriods(s.ctx, 2024)

	s.Require().NoError(err)
	s.NotNil(periods)
	s.Empty(periods)
	s.True(s.logger.Has("annual_periods_unavailable"))
}

func (s *PeriodServiceSuite) TestListPeriods_YearDescThenMonth() {
	s.periodRepo.EXPECT().GetAll(s.ctx).Return([]models.NamedPeriod{
		{Year: 2023, Month: calendar.May},
		{Year: 2024, Month: calendar.October},
		{Year: 2024, Month: calendar.February},
	}, nil)

	periods, err := s.service.ListPeriods(s.ctx)

	s.Require().NoError(err)
	s.Equal(calendar.February, periods[0].Month)
	s.Equal(calendar.October, periods[1].Month)
	s.Equal(2023, periods[2].Year)
}

func (s *PeriodServiceSuite) TestCreatePeriod_ConvertsBuddhistYear() {
	req := &dto.NamedPeriodRequest{
		YearBE:    2567,
		Month:     "มีนาคม",
		StartDate: dto.NewFlexibleDate(ictDay(2024, time.February, 25)),
		EndDate:   dto.NewFlexibleDate(ictDay(2024, time.March, 24)),
	}
	s.periodRepo.EXPECT().CountByMonthYear(s.ctx, calendar.March, 2024, uuid.Nil).Return(int64(0), nil)
	s.periodRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	created, err := s.service.CreatePeriod(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(2024, created.Year)
	s.Equal(calendar.March, created.Month)
	s.False(s.logger.Has("duplicate_period"))
	s.True(s.logger.Has("created:named_period"))
}

func (s *PeriodServiceSuite) TestCreatePeriod_DuplicateIsWarnedNotRejected() {
	req := &dto.NamedPeriodRequest{
		YearBE:    2567,
		Month:     "March",
		StartDate: dto.NewFlexibleDate(ictDay(2024, time.March, 1)),
		EndDate:   dto.NewFlexibleDate(ictDay(2024, time.March, 31)),
	}
	s.periodRepo.EXPECT().CountByMonthYear(s.ctx, calendar.March, 2024, uuid.Nil).Return(int64(1), nil)
	s.periodRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	_, err := s.service.CreatePeriod(s.ctx, req)

	s.Require().NoError(err)
	s.True(s.logger.Has("duplicate_period"))
	s.Equal(1, s.metrics.Counter("period.duplicate"))
}

func (s *PeriodServiceSuite) TestCreatePeriod_InvalidMonth() {
	req := &dto.NamedPeriodRequest{YearBE: 2567, Month: "Smarch"}

	_, err := s.service.CreatePeriod(s.ctx, req)

	s.ErrorIs(err, calendar.ErrInvalidMonth)
}

func (s *PeriodServiceSuite) TestCreatePeriod_InvertedRange() {
	req := &dto.NamedPeriodRequest{
		YearBE:    2567,
		Month:     "มีนาคม",
		StartDate: dto.NewFlexibleDate(ictDay(2024, time.March, 24)),
		EndDate:   dto.NewFlexibleDate(ictDay(2024, time.February, 25)),
	}

	_, err := s.service.CreatePeriod(s.ctx, req)

	s.ErrorIs(err, models.ErrInvalidPeriodRange)
}

func (s *PeriodServiceSuite) TestUpdatePeriod_ExcludesItselfFromDuplicateCheck() {
	existing := period(calendar.April, 2024, ictDay(2024, time.March, 25), ictDay(2024, time.April, 24))
	req := &dto.NamedPeriodRequest{
		YearBE:    2567,
		Month:     "เมษายน",
		StartDate: dto.NewFlexibleDate(ictDay(2024, time.March, 26)),
		EndDate:   dto.NewFlexibleDate(ictDay(2024, time.April, 25)),
	}
	s.periodRepo.EXPECT().GetByID(s.ctx, existing.ID).Return(&existing, nil)
	s.periodRepo.EXPECT().CountByMonthYear(s.ctx, calendar.April, 2024, existing.ID).Return(int64(0), nil)
	s.periodRepo.EXPECT().Update(s.ctx, &existing).Return(nil)

	updated, err := s.service.UpdatePeriod(s.ctx, existing.ID, req)

	s.Require().NoError(err)
	s.True(updated.StartDate.Equal(ictDay(2024, time.March, 26)))
}

func (s *PeriodServiceSuite) TestUpdatePeriod_NotFound() {
	id := uuid.New()
	s.periodRepo.EXPECT().GetByID(s.ctx, id).Return(nil, repositories.ErrNamedPeriodNotFound)

	_, err := s.service.UpdatePeriod(s.ctx, id, &dto.NamedPeriodRequest{})

	s.ErrorIs(err, ErrNotFound)
}

func (s *PeriodServiceSuite) TestDeletePeriod() {
	id := uuid.New()
	s.periodRepo.EXPECT().Delete(s.ctx, id).Return(nil)
	s.Require().NoError(s.service.DeletePeriod(s.ctx, id))

	missing := uuid.New()
	s.periodRepo.EXPECT().Delete(s.ctx, missing).Return(repositories.ErrNamedPeriodNotFound)
	s.ErrorIs(s.service.DeletePeriod(s.ctx, missing), ErrNotFound)
}
