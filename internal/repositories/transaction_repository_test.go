package repositories

import (
	"context"
	"testing"
	"time"

	"household-ledger/internal/database"
	"household-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
	ctx  context.Context
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TestCreateAndGetByID() {
	tx := &models.Transaction{
		Kind:     models.KindCash,
		Date:     day(2024, time.June, 5),
		Amount:   decimal.NewFromFloat(1000.50),
		IsIncome: true,
		Details:  "เงินเดือน",
		Remark:   "June salary",
	}

	s.Require().NoError(s.repo.Create(s.ctx, tx))
	s.NotEqual(uuid.Nil, tx.ID)

	found, err := s.repo.GetByID(s.ctx, models.KindCash, tx.ID)
	s.Require().NoError(err)
	s.Equal("เงินเดือน", found.Details)
	s.True(found.Amount.Equal(decimal.NewFromFloat(1000.50)))
	s.True(found.IsIncome)
}

func (s *TransactionRepositorySuite) TestCreate_InvalidTransaction() {
	err := s.repo.Create(s.ctx, &models.Transaction{Kind: models.KindCash, Date: day(2024, time.June, 5)})
	s.Error(err)
	s.ErrorIs(err, models.ErrMissingDetails)
}

func (s *TransactionRepositorySuite) TestGetByID_WrongKindIsNotFound() {
	tx := database.CreateTestTransaction(s.T(), s.db, models.KindCredit, day(2024, time.June, 5), 10, false, "Grab")

	_, err := s.repo.GetByID(s.ctx, models.KindCash, tx.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestUpdate() {
	tx := database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 5), 10, false, "ตลาด")

	tx.Amount = decimal.NewFromInt(25)
	tx.Details = "ตลาดนัด"
	tx.ModifiedAt = time.Now().UTC()
	s.Require().NoError(s.repo.Update(s.ctx, tx))

	found, err := s.repo.GetByID(s.ctx, models.KindCash, tx.ID)
	s.Require().NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(25)))
	s.Equal("ตลาดนัด", found.Details)
}

func (s *TransactionRepositorySuite) TestUpdate_NotFound() {
	tx := &models.Transaction{
		ID:      uuid.New(),
		Kind:    models.KindCash,
		Date:    day(2024, time.June, 5),
		Amount:  decimal.NewFromInt(1),
		Details: "x",
	}
	s.ErrorIs(s.repo.Update(s.ctx, tx), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete() {
	tx := database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 5), 10, false, "ตลาด")

	s.Require().NoError(s.repo.Delete(s.ctx, models.KindCash, tx.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, models.KindCash, tx.ID), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestList_NewestFirstWithPagination() {
	for i := 1; i <= 5; i++ {
		database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, i), float64(i), false, "ตลาด")
	}
	database.CreateTestTransaction(s.T(), s.db, models.KindCredit, day(2024, time.June, 9), 1, false, "Shopee")

	page, total, err := s.repo.List(s.ctx, models.KindCash, models.Pagination{Page: 1, Limit: 2})
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(page, 2)
	s.Equal(5, page[0].Date.Day())
	s.Equal(4, page[1].Date.Day())

	page, _, err = s.repo.List(s.ctx, models.KindCash, models.Pagination{Page: 3, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(1, page[0].Date.Day())
}

func (s *TransactionRepositorySuite) TestGetByDateRange_InclusiveBounds() {
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.May, 31), 1, false, "ตลาด")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 1), 2, false, "ตลาด")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, time.Date(2024, time.June, 30, 21, 15, 0, 0, time.UTC), 3, false, "ตลาด")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.July, 1), 4, false, "ตลาด")
	database.CreateTestTransaction(s.T(), s.db, models.KindCredit, day(2024, time.June, 15), 5, false, "ตลาด")

	start := day(2024, time.June, 1)
	end := time.Date(2024, time.June, 30, 23, 59, 59, 999999999, time.UTC)

	txs, err := s.repo.GetByDateRange(s.ctx, models.KindCash, start, end, "")
	s.Require().NoError(err)
	s.Len(txs, 2)
	for _, tx := range txs {
		s.Equal(models.KindCash, tx.Kind)
		s.Equal(time.June, tx.Date.Month())
	}
}

func (s *TransactionRepositorySuite) TestGetByDateRange_DetailIsExactAfterTrim() {
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 3), 1, false, "ค่าไฟ")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 4), 2, false, " ค่าไฟ ")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 5), 3, false, "ค่าไฟฟ้า")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 6), 4, false, "ค่าน้ำ")

	start := day(2024, time.June, 1)
	end := time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)

	txs, err := s.repo.GetByDateRange(s.ctx, models.KindCash, start, end, "  ค่าไฟ")
	s.Require().NoError(err)
	s.Len(txs, 2)
}

func (s *TransactionRepositorySuite) TestListDetails() {
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 3), 1, false, "ค่าไฟ")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 4), 1, false, "ค่าไฟ")
	database.CreateTestTransaction(s.T(), s.db, models.KindCash, day(2024, time.June, 5), 1, false, "ค่าน้ำ")
	database.CreateTestTransaction(s.T(), s.db, models.KindCredit, day(2024, time.June, 5), 1, false, "Lazada")

	details, err := s.repo.ListDetails(s.ctx, models.KindCash)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"ค่าไฟ", "ค่าน้ำ"}, details)
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	batch := []models.Transaction{
		{Kind: models.KindCredit, Date: day(2024, time.June, 13), Amount: decimal.NewFromInt(100), Details: "Shopee"},
		{Kind: models.KindCredit, Date: day(2024, time.July, 12), Amount: decimal.NewFromInt(20), IsCashback: true, Details: "Cashback"},
	}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, batch))
	s.NoError(s.repo.CreateBatch(s.ctx, nil))

	_, total, err := s.repo.List(s.ctx, models.KindCredit, models.Pagination{Page: 1, Limit: 10})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}
