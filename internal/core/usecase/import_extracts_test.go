package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/etl/regions"
)

type fakeSource struct {
	files map[string][]map[string]string
}

func (f *fakeSource) List(pattern string) ([]string, error) {
	var names []string
	for name := range f.files {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeSource) ReadRows(ctx context.Context, path string, fn func(row map[string]string) error) error {
	for _, row := range f.files[path] {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

type fakeTransactionStorage struct {
	batches     [][]domain.Transaction
	failAtBatch int // 1-indexed, 0 disables
}

func (f *fakeTransactionStorage) Search(ctx context.Context, filters domain.TransactionFilters, page domain.PageRequest) (*domain.Page[domain.Transaction], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTransactionStorage) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeTransactionStorage) BatchInsert(ctx context.Context, records []domain.Transaction) error {
	if f.failAtBatch > 0 && len(f.batches)+1 == f.failAtBatch {
		return errors.New("storage unavailable")
	}
	cp := make([]domain.Transaction, len(records))
	copy(cp, records)
	f.batches = append(f.batches, cp)
	return nil
}

type fakeReporter struct {
	reports []domain.IngestReport
}

func (f *fakeReporter) ReportIngestRun(ctx context.Context, report domain.IngestReport) error {
	f.reports = append(f.reports, report)
	return nil
}

func txRow(district, date, price string) map[string]string {
	return map[string]string{
		"鄉鎮市區":  district,
		"交易年月日": date,
		"總價元":   price,
	}
}

func TestImportTransactionsBatchesAndSkips(t *testing.T) {
	table, err := regions.Load()
	require.NoError(t, err)

	rows := []map[string]string{
		txRow("大安區", "1130101", "10000000"),
		txRow("大安區", "1130102", "11000000"),
		txRow("火星區", "1130103", "12000000"), // unknown district, skipped
		txRow("大安區", "garbage", "13000000"),  // bad date, skipped
		txRow("板橋區", "1130105", "14000000"),
	}
	src := &fakeSource{files: map[string][]map[string]string{"a.csv": rows}}
	storage := &fakeTransactionStorage{}
	reporter := &fakeReporter{}

	uc := NewImportTransactionsUseCase(src, storage, reporter, table)
	report, err := uc.Execute(context.Background(), "*.csv", 2)
	require.NoError(t, err)

	assert.Equal(t, "transactions", report.Category)
	assert.Equal(t, 1, report.Files)
	assert.Equal(t, 5, report.RowsRead)
	assert.Equal(t, 2, report.RowsSkipped)
	assert.Equal(t, 3, report.RowsSaved)
	assert.Equal(t, 2, report.Batches)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	require.Len(t, storage.batches, 2)
	assert.Len(t, storage.batches[0], 2)
	assert.Len(t, storage.batches[1], 1)
	assert.Equal(t, "新北市", storage.batches[1][0].City)

	require.Len(t, reporter.reports, 1)
	assert.Equal(t, 3, reporter.reports[0].RowsSaved)
}

func TestImportAbortsOnBatchFailure(t *testing.T) {
	table, err := regions.Load()
	require.NoError(t, err)

	rows := []map[string]string{
		txRow("大安區", "1130101", "10000000"),
		txRow("大安區", "1130102", "11000000"),
		txRow("大安區", "1130103", "12000000"),
		txRow("大安區", "1130104", "13000000"),
	}
	src := &fakeSource{files: map[string][]map[string]string{"a.csv": rows}}
	storage := &fakeTransactionStorage{failAtBatch: 2}
	reporter := &fakeReporter{}

	uc := NewImportTransactionsUseCase(src, storage, reporter, table)
	report, err := uc.Execute(context.Background(), "*.csv", 2)
	require.Error(t, err)
	assert.Nil(t, report)

	// The first batch stays committed, nothing is reported.
	require.Len(t, storage.batches, 1)
	assert.Empty(t, reporter.reports)
}

func TestImportRejectsEmptyPattern(t *testing.T) {
	table, err := regions.Load()
	require.NoError(t, err)

	src := &fakeSource{files: map[string][]map[string]string{}}
	uc := NewImportTransactionsUseCase(src, &fakeTransactionStorage{}, nil, table)

	_, err = uc.Execute(context.Background(), "missing/*.csv", 2)
	assert.Error(t, err)
}
