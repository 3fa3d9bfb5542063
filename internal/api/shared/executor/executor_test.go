package executor_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/revenue-dashboard/internal/api/shared/executor"
	apierrors "github.com/finsight/revenue-dashboard/internal/api/shared/errors"
	"github.com/finsight/revenue-dashboard/internal/domain"
	"github.com/finsight/revenue-dashboard/internal/logger"
	"github.com/finsight/revenue-dashboard/internal/mocks"
	"github.com/finsight/revenue-dashboard/internal/providers/vendors/mercury"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func breakdown(date string, totalMRR int64) domain.MonthlyBreakdown {
	total := decimal.NewFromInt(totalMRR)
	return domain.MonthlyBreakdown{
		Date:     domain.Month(date),
		Existing: total,
		TotalMRR: total,
		ARR:      total.Mul(decimal.NewFromInt(12)),
	}
}

func TestGetCombinedSeries_MergesBothSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pw := mocks.NewMockProfitwellClient(ctrl)
	atl := mocks.NewMockAtlassianClient(ctrl)

	pw.EXPECT().GetMRRBreakdown(gomock.Any(), 6).Return([]domain.MonthlyBreakdown{
		breakdown("2024-05", 4800),
		breakdown("2024-06", 5000),
	}, nil)
	atl.EXPECT().GetMRRBreakdown(gomock.Any(), 6).Return([]domain.MonthlyBreakdown{
		breakdown("2024-05", 900),
		breakdown("2024-06", 1100),
	}, nil)

	exec := executor.NewExecutor(pw, atl, nil, nil)
	response, err := exec.GetCombinedSeries(context.Background(), 6)
	require.NoError(t, err)

	require.Len(t, response.Data, 2)
	assert.True(t, response.Sources.Profitwell)
	assert.True(t, response.Sources.Atlassian)
	assert.True(t, response.Data[1].Combined.TotalMRR.Equal(decimal.NewFromInt(6100)))
}

func TestGetCombinedSeries_DegradesErroredSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pw := mocks.NewMockProfitwellClient(ctrl)
	atl := mocks.NewMockAtlassianClient(ctrl)

	pw.EXPECT().GetMRRBreakdown(gomock.Any(), 6).Return([]domain.MonthlyBreakdown{
		breakdown("2024-06", 5000),
	}, nil)
	atl.EXPECT().GetMRRBreakdown(gomock.Any(), 6).Return(nil, errors.New("export timed out"))

	exec := executor.NewExecutor(pw, atl, nil, nil)
	response, err := exec.GetCombinedSeries(context.Background(), 6)
	require.NoError(t, err)

	require.Len(t, response.Data, 1)
	assert.True(t, response.Sources.Profitwell)
	assert.False(t, response.Sources.Atlassian)
	assert.True(t, response.Data[0].Atlassian.TotalMRR.IsZero())
	assert.True(t, response.Data[0].Combined.TotalMRR.Equal(decimal.NewFromInt(5000)))
}

func TestGetCombinedSeries_UnconfiguredSources(t *testing.T) {
	exec := executor.NewExecutor(nil, nil, nil, nil)
	response, err := exec.GetCombinedSeries(context.Background(), 6)
	require.NoError(t, err)
	assert.Empty(t, response.Data)
	assert.False(t, response.Sources.Profitwell)
	assert.False(t, response.Sources.Atlassian)
}

func TestGetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pw := mocks.NewMockProfitwellClient(ctrl)
	atl := mocks.NewMockAtlassianClient(ctrl)

	pw.EXPECT().GetMRRBreakdown(gomock.Any(), 6).Return([]domain.MonthlyBreakdown{
		breakdown("2024-05", 4000),
		breakdown("2024-06", 5000),
	}, nil)
	atl.EXPECT().GetMRRBreakdown(gomock.Any(), 6).Return(nil, errors.New("unavailable"))

	exec := executor.NewExecutor(pw, atl, nil, nil)
	response, err := exec.GetSummary(context.Background(), 6)
	require.NoError(t, err)

	require.NotNil(t, response.Data)
	assert.True(t, response.Data.CurrentMRR.Equal(decimal.NewFromInt(5000)))
	assert.True(t, response.Data.MonthlyGrowth.Equal(decimal.NewFromInt(25)))
	assert.True(t, response.Data.ProfitwellPercentage.Equal(decimal.NewFromInt(100)))
	assert.True(t, response.Data.AtlassianPercentage.IsZero())
}

func TestGetSummary_NoData(t *testing.T) {
	exec := executor.NewExecutor(nil, nil, nil, nil)
	_, err := exec.GetSummary(context.Background(), 6)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeNoData, apiErr.Code)
}

func TestGetProfitwellSeries_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pw := mocks.NewMockProfitwellClient(ctrl)
	pw.EXPECT().GetMRRBreakdown(gomock.Any(), 3).Return(nil, errors.New("401"))

	exec := executor.NewExecutor(pw, nil, nil, nil)
	_, err := exec.GetProfitwellSeries(context.Background(), 3)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeUpstreamError, apiErr.Code)
}

func TestGetBankBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mc := mocks.NewMockMercuryClient(ctrl)
	mc.EXPECT().GetBankBalances(gomock.Any()).Return([]mercury.BankBalance{
		{Source: "mercury", AccountName: "Operating", Balance: decimal.NewFromInt(100000), Currency: "USD"},
	}, nil)

	exec := executor.NewExecutor(nil, nil, mc, nil)
	response, err := exec.GetBankBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "Operating", response.Data[0].AccountName)
}

func TestGetBankBalances_NotConfigured(t *testing.T) {
	exec := executor.NewExecutor(nil, nil, nil, nil)
	_, err := exec.GetBankBalances(context.Background())

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeUpstreamError, apiErr.Code)
}

func TestGetBurnRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mc := mocks.NewMockMercuryClient(ctrl)
	mc.EXPECT().GetBurnRateMetrics(gomock.Any(), 3).Return([]mercury.BurnRateMetrics{
		{Period: "2024-06", TotalBurn: decimal.NewFromInt(4200), TransactionCount: 7},
	}, nil)

	exec := executor.NewExecutor(nil, nil, mc, nil)
	response, err := exec.GetBurnRate(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, response.Data, 1)
	assert.Equal(t, domain.Month("2024-06"), response.Data[0].Period)
}

func TestProxyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	strategy := mocks.NewMockStrategy(ctrl)
	strategy.EXPECT().
		Get(gomock.Any(), "/metrics/monthly/", nil).
		Return([]byte(`{"data":{}}`), nil)

	exec := executor.NewExecutor(nil, nil, nil, map[string]executor.ProxyTarget{
		"profitwell": {Strategy: strategy, AllowedPrefixes: []string{"/metrics/", "/customers/"}},
	})

	body, err := exec.ProxyRequest(context.Background(), "profitwell", "/metrics/monthly/")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"data":{}}`), body)
}

func TestProxyRequest_UnknownVendor(t *testing.T) {
	exec := executor.NewExecutor(nil, nil, nil, nil)
	_, err := exec.ProxyRequest(context.Background(), "stripe", "/charges")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeBadRequest, apiErr.Code)
}

func TestProxyRequest_DisallowedEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := executor.NewExecutor(nil, nil, nil, map[string]executor.ProxyTarget{
		"profitwell": {Strategy: mocks.NewMockStrategy(ctrl), AllowedPrefixes: []string{"/metrics/"}},
	})

	_, err := exec.ProxyRequest(context.Background(), "profitwell", "/company/settings")
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeBadRequest, apiErr.Code)
}

func TestProxyRequest_RejectsTraversal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := executor.NewExecutor(nil, nil, nil, map[string]executor.ProxyTarget{
		"profitwell": {Strategy: mocks.NewMockStrategy(ctrl), AllowedPrefixes: []string{"/metrics/"}},
	})

	_, err := exec.ProxyRequest(context.Background(), "profitwell", "/metrics/../internal")
	assert.Error(t, err)
}
