package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lvr-storage-service/internal/etl/regions"
)

func regionTable(t *testing.T) *regions.Table {
	t.Helper()
	table, err := regions.Load()
	require.NoError(t, err)
	return table
}

func validTransactionRow() map[string]string {
	return map[string]string{
		"鄉鎮市區":        "大安區",
		"交易年月日":       "1130215",
		"總價元":         "25000000",
		"單價元平方公尺":     "350000",
		"建物移轉總面積平方公尺": "71.4",
		"建物現況格局-房":    "3",
		"建物現況格局-廳":    "2",
		"建物現況格局-隔間":   "有",
		"有無管理組織":      "無",
		"電梯":          "有",
		"建築完成年月":      "0850712",
		"土地位置建物門牌":    "臺北市大安區和平東路一段",
	}
}

func TestTransactionAssembly(t *testing.T) {
	table := regionTable(t)

	rec, ok := Transaction(validTransactionRow(), table)
	require.True(t, ok)
	assert.Equal(t, "臺北市", rec.City)
	assert.Equal(t, "大安區", rec.District)
	assert.Equal(t, "1130215", rec.TransactionDate)
	assert.Equal(t, 25000000.0, rec.TotalPriceNTD)
	require.NotNil(t, rec.UnitPriceNTD)
	assert.Equal(t, 350000.0, *rec.UnitPriceNTD)
	require.NotNil(t, rec.BuildingRooms)
	assert.Equal(t, 3, *rec.BuildingRooms)
	require.NotNil(t, rec.BuildingCompartments)
	assert.True(t, *rec.BuildingCompartments)
	require.NotNil(t, rec.HasManagement)
	assert.False(t, *rec.HasManagement)
	require.NotNil(t, rec.HasElevator)
	assert.True(t, *rec.HasElevator)
	// Construction date keeps its raw text, leading zero included.
	require.NotNil(t, rec.ConstructionCompleteDate)
	assert.Equal(t, "0850712", *rec.ConstructionCompleteDate)
	assert.Nil(t, rec.Remarks)
	assert.Nil(t, rec.ParkingType)
}

func TestTransactionRejectsRow(t *testing.T) {
	table := regionTable(t)

	tests := []struct {
		name   string
		mutate func(row map[string]string)
	}{
		{"missing district", func(row map[string]string) { delete(row, "鄉鎮市區") }},
		{"blank district", func(row map[string]string) { row["鄉鎮市區"] = "  " }},
		{"unknown district", func(row map[string]string) { row["鄉鎮市區"] = "不存在區" }},
		{"missing date", func(row map[string]string) { delete(row, "交易年月日") }},
		{"garbage date", func(row map[string]string) { row["交易年月日"] = "民國113年" }},
		{"missing price", func(row map[string]string) { delete(row, "總價元") }},
		{"garbage price", func(row map[string]string) { row["總價元"] = "面議" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validTransactionRow()
			tt.mutate(row)
			rec, ok := Transaction(row, table)
			assert.False(t, ok)
			assert.Nil(t, rec)
		})
	}
}

func TestPresaleAssembly(t *testing.T) {
	table := regionTable(t)

	row := map[string]string{
		"鄉鎮市區":  "板橋區",
		"交易年月日": "1121230",
		"總價元":   "18800000",
		"建案名稱":  "幸福華廈",
		"棟及號":   "A棟12號",
		"解約情形":  "",
	}
	rec, ok := Presale(row, table)
	require.True(t, ok)
	assert.Equal(t, "新北市", rec.City)
	require.NotNil(t, rec.ProjectName)
	assert.Equal(t, "幸福華廈", *rec.ProjectName)
	require.NotNil(t, rec.BuildingNumber)
	assert.Equal(t, "A棟12號", *rec.BuildingNumber)
	assert.Nil(t, rec.TerminationStatus)
}

func TestRentalAssembly(t *testing.T) {
	table := regionTable(t)

	row := map[string]string{
		"鄉鎮市區":  "西屯區",
		"租賃年月日": "1130801",
		"總額元":   "32000",
		"有無附傢俱": "有",
		"有無管理員": "無",
		"有無電梯":  "有",
		"出租型態":  "整層住家",
		"租賃期間":  "1130801~1140731",
	}
	rec, ok := Rental(row, table)
	require.True(t, ok)
	assert.Equal(t, "臺中市", rec.City)
	assert.Equal(t, "1130801", rec.RentalDate)
	assert.Equal(t, 32000.0, rec.MonthlyRentNTD)
	require.NotNil(t, rec.HasFurniture)
	assert.True(t, *rec.HasFurniture)
	require.NotNil(t, rec.HasManager)
	assert.False(t, *rec.HasManager)
	require.NotNil(t, rec.HasElevator)
	assert.True(t, *rec.HasElevator)
	require.NotNil(t, rec.RentalType)
	assert.Equal(t, "整層住家", *rec.RentalType)
}

func TestRentalRejectsMissingRent(t *testing.T) {
	table := regionTable(t)

	row := map[string]string{
		"鄉鎮市區":  "西屯區",
		"租賃年月日": "1130801",
	}
	rec, ok := Rental(row, table)
	assert.False(t, ok)
	assert.Nil(t, rec)
}
