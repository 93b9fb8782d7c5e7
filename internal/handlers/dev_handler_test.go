package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"household-ledger/internal/dto"
	"household-ledger/internal/services"
	"household-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevHandler_SeedWithoutBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service_mocks.NewMockDemoDataServiceInterface(ctrl)
	svc.EXPECT().
		Seed(gomock.Any(), &dto.SeedRequest{}).
		Return(&services.SeedResult{YearBE: 2568, NamedPeriods: 12, CashTransactions: 240}, nil)
	handler := NewDevHandler(svc)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/dev/seed", nil, "")
	require.NoError(t, handler.Seed(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got services.SeedResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(rec).Data, &got))
	assert.Equal(t, 12, got.NamedPeriods)
	assert.Equal(t, 240, got.CashTransactions)
}

func TestDevHandler_SeedPassesOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service_mocks.NewMockDemoDataServiceInterface(ctrl)
	svc.EXPECT().
		Seed(gomock.Any(), &dto.SeedRequest{YearBE: 2566, CashPerMonth: 5, Seed: 42, SkipNamedPeriods: true}).
		Return(&services.SeedResult{YearBE: 2566}, nil)
	handler := NewDevHandler(svc)

	body := `{"yearBE":2566,"cashPerMonth":5,"seed":42,"skipNamedPeriods":true}`
	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/dev/seed", nil, body)
	require.NoError(t, handler.Seed(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDevHandler_SeedRejectsOutOfRangeOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewDevHandler(service_mocks.NewMockDemoDataServiceInterface(ctrl))

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/dev/seed", nil, `{"cashPerMonth":5000}`)
	require.NoError(t, handler.Seed(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDevHandler_SeedDataSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service_mocks.NewMockDemoDataServiceInterface(ctrl)
	svc.EXPECT().Seed(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: disk full", services.ErrDataSource))
	handler := NewDevHandler(svc)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/dev/seed", nil, "")
	require.NoError(t, handler.Seed(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
