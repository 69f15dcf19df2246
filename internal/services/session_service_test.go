package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KayisiMuhendisi/Adisyon/internal/models"
	"github.com/KayisiMuhendisi/Adisyon/internal/repositories"
)

func newTestSession(t *testing.T) (SessionService, CatalogService) {
	t.Helper()
	catalogRepo := repositories.NewCatalogRepository([]string{"İçecekler", "Ana Yemekler"})
	catalogService := NewCatalogService(catalogRepo)

	_, err := catalogService.AddProduct(AddProductRequest{Category: "İçecekler", Name: "Kola", Price: 50, Stock: 1})
	require.NoError(t, err)
	_, err = catalogService.AddProduct(AddProductRequest{Category: "Ana Yemekler", Name: "Pizza", Price: 150, Stock: 50})
	require.NoError(t, err)

	tableRepo := repositories.NewTableRepository(2, 1, 50)
	return NewSessionService(tableRepo, catalogService), catalogService
}

func TestOpenTableUnknownName(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("Masa 99")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestOpenTableSelectsWithoutCreating(t *testing.T) {
	session, _ := newTestSession(t)

	table, err := session.OpenTable("Masa 1")
	require.NoError(t, err)
	assert.Equal(t, "Masa 1", table.Name)
	assert.False(t, table.IsVIP)
	assert.Empty(t, table.Lines)

	tables := session.ListTables()
	require.Len(t, tables, 3)
	assert.Equal(t, "Masa 1", tables[0].Name)
	assert.Equal(t, "VIP Masa 1", tables[2].Name)
	assert.True(t, tables[2].IsVIP)
}

func TestAddProductRequiresActiveTable(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.AddProductToCurrentTable(AddOrderRequest{Product: "Kola", Price: 50})
	assert.ErrorIs(t, err, ErrNoActiveTable)
}

func TestStockGatesOrdering(t *testing.T) {
	session, catalog := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)

	table, err := session.AddProductToCurrentTable(AddOrderRequest{Product: "Kola", Price: 50})
	require.NoError(t, err)
	require.Len(t, table.Lines, 1)

	products := catalog.ListProducts("İçecekler")
	assert.Equal(t, 0, products[0].Stock)

	// The second order is rejected and the table keeps its single line.
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Kola", Price: 50})
	assert.ErrorIs(t, err, ErrOutOfStock)

	current, err := session.CurrentTable()
	require.NoError(t, err)
	require.Len(t, current.Lines, 1)
	assert.Equal(t, 1, current.Lines[0].Count)
	assert.Equal(t, 0, catalog.ListProducts("İçecekler")[0].Stock)
}

func TestUnknownProductRejectsOrder(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)

	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Ayran", Price: 20})
	assert.ErrorIs(t, err, ErrProductNotFound)

	current, err := session.CurrentTable()
	require.NoError(t, err)
	assert.Empty(t, current.Lines)
}

func TestRemoveItemDoesNotRestoreStock(t *testing.T) {
	session, catalog := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)

	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Kola", Price: 50})
	require.NoError(t, err)

	table, err := session.RemoveItemFromCurrentTable("Kola")
	require.NoError(t, err)
	assert.Empty(t, table.Lines)

	// The decrement stays in place after the removal.
	products := catalog.ListProducts("İçecekler")
	assert.Equal(t, 0, products[0].Stock)
}

func TestRemoveItemRequiresActiveTable(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.RemoveItemFromCurrentTable("Kola")
	assert.ErrorIs(t, err, ErrNoActiveTable)
}

func TestApplyDiscountRequiresActiveTable(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.ApplyDiscountToCurrentTable(0.9)
	assert.ErrorIs(t, err, ErrNoActiveTable)
}

func TestApplyDiscountRejectsBadFactor(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)

	_, err = session.ApplyDiscountToCurrentTable(0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = session.ApplyDiscountToCurrentTable(1.5)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplyDiscountRewritesLinePrices(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Pizza", Price: 150})
	require.NoError(t, err)

	table, err := session.ApplyDiscountToCurrentTable(0.9)
	require.NoError(t, err)
	assert.Equal(t, 135.0, table.Total)
}

func TestCloseTableSettlesIntoCash(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Pizza", Price: 150})
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Kola", Price: 50})
	require.NoError(t, err)

	settlement, err := session.CloseTable(models.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, 200.0, settlement.Amount)
	assert.Equal(t, "Masa 1", settlement.TableName)
	assert.Equal(t, models.PaymentCash, settlement.PaymentMethod)
	assert.NotEmpty(t, settlement.ID)
	assert.False(t, settlement.ClosedAt.IsZero())

	report := session.DailyReport()
	assert.Equal(t, 200.0, report.CashTotal)
	assert.Equal(t, 0.0, report.CardTotal)
	assert.Equal(t, 200.0, report.GrandTotal)

	// The table is cleared and the selection is unset.
	_, err = session.CurrentTable()
	assert.ErrorIs(t, err, ErrNoActiveTable)

	tables := session.ListTables()
	assert.False(t, tables[0].Occupied)
	assert.Equal(t, 0, tables[0].OrderCount)
}

func TestCloseVIPTableIncludesServiceFee(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("VIP Masa 1")
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Pizza", Price: 100})
	require.NoError(t, err)

	current, err := session.CurrentTable()
	require.NoError(t, err)
	assert.Equal(t, 150.0, current.Total)

	settlement, err := session.CloseTable(models.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, 150.0, settlement.Amount)

	report := session.DailyReport()
	assert.Equal(t, 150.0, report.CardTotal)
}

func TestCloseTableRequiresActiveTable(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.CloseTable(models.PaymentCash)
	assert.ErrorIs(t, err, ErrNoActiveTable)
}

func TestCloseTableRejectsUnknownPaymentMethod(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Pizza", Price: 150})
	require.NoError(t, err)

	_, err = session.CloseTable(models.PaymentMethod("cheque"))
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	// The rejected close leaves the session untouched.
	current, err := session.CurrentTable()
	require.NoError(t, err)
	assert.Len(t, current.Lines, 1)
	assert.Equal(t, 0.0, session.DailyReport().GrandTotal)
}

func TestDailyReportAccumulatesAcrossTables(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Pizza", Price: 150})
	require.NoError(t, err)
	_, err = session.CloseTable(models.PaymentCash)
	require.NoError(t, err)

	_, err = session.OpenTable("VIP Masa 1")
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Pizza", Price: 100})
	require.NoError(t, err)
	_, err = session.CloseTable(models.PaymentCard)
	require.NoError(t, err)

	report := session.DailyReport()
	assert.Equal(t, 150.0, report.CashTotal)
	assert.Equal(t, 150.0, report.CardTotal)
	assert.Equal(t, 300.0, report.GrandTotal)

	settlements := session.Settlements()
	require.Len(t, settlements, 2)
	assert.Equal(t, "Masa 1", settlements[0].TableName)
	assert.Equal(t, "VIP Masa 1", settlements[1].TableName)
}

func TestLinePriceCapturedAtOrderTime(t *testing.T) {
	session, catalog := newTestSession(t)

	_, err := session.OpenTable("Masa 1")
	require.NoError(t, err)
	_, err = session.AddProductToCurrentTable(AddOrderRequest{Product: "Pizza", Price: 150})
	require.NoError(t, err)

	// A stock correction after ordering changes the catalog only.
	_, err = catalog.UpdateStock("Pizza", 10)
	require.NoError(t, err)

	current, err := session.CurrentTable()
	require.NoError(t, err)
	assert.Equal(t, 150.0, current.Total)
}
