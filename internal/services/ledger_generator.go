package services

import (
	"fmt"
	"time"

	"household-ledger/internal/calendar"
	"household-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryInfo is a household spending or income category with its usual amount range
type CategoryInfo struct {
	Details string
	Min     float64
	Max     float64
}

const (
	periodStartDay = 25
	periodEndDay   = 24
	incomeRatio    = 0.2
	cashbackRatio  = 0.1
)

var (
	cashExpenseCategories = []CategoryInfo{
		{"ค่าอาหาร", 40, 450},
		{"ค่ากับข้าว", 80, 900},
		{"ค่าน้ำประปา", 150, 600},
		{"ค่าไฟฟ้า", 600, 3500},
		{"ค่าเดินทาง", 20, 300},
		{"ของใช้ในบ้าน", 50, 1200},
		{"ค่ายา", 60, 1500},
		{"ทำบุญ", 20, 500},
	}
	cashIncomeCategories = []CategoryInfo{
		{"เงินเดือน", 15000, 45000},
		{"ดอกเบี้ย", 50, 800},
		{"รายได้เสริม", 500, 6000},
	}
	creditExpenseCategories = []CategoryInfo{
		{"ซูเปอร์มาร์เก็ต", 200, 3500},
		{"ร้านอาหาร", 150, 2500},
		{"น้ำมันรถ", 500, 2000},
		{"ช้อปปิ้งออนไลน์", 100, 5000},
		{"ค่าโทรศัพท์", 299, 1299},
		{"โรงพยาบาล", 500, 12000},
	}
	creditCashbackCategory = CategoryInfo{"เงินคืน", 10, 300}
	remarks                = []string{"", "", "", "จ่ายสด", "แบ่งจ่าย", "ของฝาก", "ซื้อให้แม่", "โปรโมชั่น"}
)

type ledgerGenerator struct {
	faker *gofakeit.Faker
	loc   *time.Location
}

// NewLedgerGenerator creates a generator. A zero seed draws from the clock.
func NewLedgerGenerator(seed int64, loc *time.Location) LedgerGeneratorInterface {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ledgerGenerator{
		faker: gofakeit.New(uint64(seed)),
		loc:   loc,
	}
}

// GenerateNamedPeriods returns a 25th-to-24th period for every month of yearCE
func (g *ledgerGenerator) GenerateNamedPeriods(yearCE int) []models.NamedPeriod {
	periods := make([]models.NamedPeriod, 0, 12)
	for _, month := range calendar.Months() {
		start := time.Date(yearCE, time.Month(month.Number()-1), periodStartDay, 0, 0, 0, 0, g.loc)
		end := time.Date(yearCE, time.Month(month.Number()), periodEndDay, 0, 0, 0, 0, g.loc)
		periods = append(periods, models.NamedPeriod{
			Year:      yearCE,
			Month:     month,
			StartDate: start,
			EndDate:   end,
		})
	}
	return periods
}

// GenerateCashTransactions spreads perMonth entries over each calendar month
func (g *ledgerGenerator) GenerateCashTransactions(yearCE, perMonth int) []models.Transaction {
	txs := make([]models.Transaction, 0, perMonth*12)
	for _, month := range calendar.Months() {
		for i := 0; i < perMonth; i++ {
			isIncome := g.faker.Float64Range(0, 1) < incomeRatio
			category := g.pick(cashExpenseCategories)
			if isIncome {
				category = g.pick(cashIncomeCategories)
			}
			txs = append(txs, g.newTransaction(models.KindCash, g.dayIn(yearCE, month), category, isIncome, false))
		}
	}
	return txs
}

// GenerateCreditTransactions spreads perMonth entries over each billing cycle of yearCE
func (g *ledgerGenerator) GenerateCreditTransactions(yearCE, perMonth int) []models.Transaction {
	txs := make([]models.Transaction, 0, perMonth*12)
	for _, cycle := range calendar.BillingCycles(yearCE, g.loc) {
		days := int(cycle.End.Sub(cycle.Start).Hours() / 24)
		for i := 0; i < perMonth; i++ {
			date := cycle.Start.AddDate(0, 0, g.faker.IntRange(0, days))
			isCashback := g.faker.Float64Range(0, 1) < cashbackRatio
			category := g.pick(creditExpenseCategories)
			if isCashback {
				category = creditCashbackCategory
			}
			txs = append(txs, g.newTransaction(models.KindCredit, date, category, false, isCashback))
		}
	}
	return txs
}

// GenerateBloodPressureRecords returns one record per day starting at start
func (g *ledgerGenerator) GenerateBloodPressureRecords(start time.Time, days int) []models.BloodPressureRecord {
	records := make([]models.BloodPressureRecord, 0, days)
	first := calendar.StartOfDay(start.In(g.loc))
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		record := models.BloodPressureRecord{
			Date:       day,
			MorningBP1: g.reading(),
			EveningBP1: g.reading(),
		}
		if g.faker.Bool() {
			record.MorningBP2 = g.reading()
		}
		if g.faker.Bool() {
			record.EveningBP2 = g.reading()
		}
		records = append(records, record)
	}
	return records
}

func (g *ledgerGenerator) newTransaction(kind models.TransactionKind, date time.Time, category CategoryInfo, isIncome, isCashback bool) models.Transaction {
	amount := decimal.NewFromFloat(g.faker.Float64Range(category.Min, category.Max)).Round(2)
	return models.Transaction{
		ID:         uuid.New(),
		Kind:       kind,
		Date:       date,
		Amount:     amount,
		IsIncome:   isIncome,
		IsCashback: isCashback,
		Details:    category.Details,
		Remark:     g.faker.RandomString(remarks),
	}
}

func (g *ledgerGenerator) dayIn(yearCE int, month calendar.Month) time.Time {
	last := time.Date(yearCE, time.Month(month.Number())+1, 0, 0, 0, 0, 0, g.loc).Day()
	return time.Date(yearCE, time.Month(month.Number()), g.faker.IntRange(1, last), 0, 0, 0, 0, g.loc)
}

func (g *ledgerGenerator) pick(categories []CategoryInfo) CategoryInfo {
	return categories[g.faker.IntRange(0, len(categories)-1)]
}

func (g *ledgerGenerator) reading() string {
	return fmt.Sprintf("%d/%d P%d",
		g.faker.IntRange(105, 145),
		g.faker.IntRange(65, 92),
		g.faker.IntRange(58, 96))
}
