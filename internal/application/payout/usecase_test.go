package payout_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Chatarreria-api/internal/application/catalog"
	"github.com/jhoicas/Chatarreria-api/internal/application/payout"
	"github.com/jhoicas/Chatarreria-api/internal/domain"
	"github.com/jhoicas/Chatarreria-api/internal/domain/entity"
	"github.com/jhoicas/Chatarreria-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type fakePriceRepo struct {
	catalog entity.Catalog
	getErr  error
}

func (f *fakePriceRepo) GetAll() (entity.Catalog, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.catalog, nil
}

func (f *fakePriceRepo) ReplaceAll(c entity.Catalog) error {
	f.catalog = c
	return nil
}

type fakeTxRepo struct {
	appended  []entity.TransactionRecord
	appendErr error
}

func (f *fakeTxRepo) Append(records []entity.TransactionRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, records...)
	return nil
}

func (f *fakeTxRepo) List() ([]entity.TransactionRecord, error) {
	return f.appended, nil
}

func newUC(priceRepo *fakePriceRepo, txRepo *fakeTxRepo) *payout.PayoutUseCase {
	catalogUC := catalog.NewCatalogUseCase(priceRepo, logger.Nop())
	return payout.NewPayoutUseCase(catalogUC, txRepo, nil, time.UTC, logger.Nop())
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterPayout
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterPayout_UnaLineaConMontoCalculado(t *testing.T) {
	priceRepo := &fakePriceRepo{catalog: entity.Catalog{"Plastico": dec(t, "2.00")}}
	txRepo := &fakeTxRepo{}
	uc := newUC(priceRepo, txRepo)

	txID, receipt, err := uc.RegisterPayout("Alice", map[string]string{"Plastico": "5"})
	require.NoError(t, err)
	require.NotEmpty(t, txID)

	require.Len(t, txRepo.appended, 1)
	rec := txRepo.appended[0]
	assert.Equal(t, txID, rec.TransactionID)
	assert.Equal(t, "Alice", rec.Actor)
	assert.Equal(t, "Plastico", rec.Material)
	assert.True(t, rec.Amount.Equal(dec(t, "10.00")))
	assert.True(t, receipt.Total.Equal(dec(t, "10.00")))
}

func TestRegisterPayout_IDsDistintosEntreLlamadas(t *testing.T) {
	priceRepo := &fakePriceRepo{catalog: entity.Catalog{"Cobre": dec(t, "6.00")}}
	txRepo := &fakeTxRepo{}
	uc := newUC(priceRepo, txRepo)

	id1, _, err := uc.RegisterPayout("Alice", map[string]string{"Cobre": "1"})
	require.NoError(t, err)
	id2, _, err := uc.RegisterPayout("Alice", map[string]string{"Cobre": "1"})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2, "cada llamada genera un id de transacción nuevo")
}

func TestRegisterPayout_LineasCompartenIDYFecha(t *testing.T) {
	priceRepo := &fakePriceRepo{catalog: entity.Catalog{
		"Cobre":    dec(t, "6.00"),
		"Aluminio": dec(t, "1.75"),
	}}
	txRepo := &fakeTxRepo{}
	uc := newUC(priceRepo, txRepo)

	txID, _, err := uc.RegisterPayout("Bob", map[string]string{
		"Cobre":    "2",
		"Aluminio": "3",
	})
	require.NoError(t, err)

	require.Len(t, txRepo.appended, 2)
	assert.Equal(t, txID, txRepo.appended[0].TransactionID)
	assert.Equal(t, txID, txRepo.appended[1].TransactionID)
	assert.True(t, txRepo.appended[0].Date.Equal(txRepo.appended[1].Date),
		"todas las líneas de un pesaje comparten la misma marca de tiempo")
}

func TestRegisterPayout_DescartaPesosNoPositivosEInvalidos(t *testing.T) {
	priceRepo := &fakePriceRepo{catalog: entity.Catalog{
		"Cobre":    dec(t, "6.00"),
		"Plastico": dec(t, "2.50"),
		"Hierro":   dec(t, "0.90"),
	}}
	txRepo := &fakeTxRepo{}
	uc := newUC(priceRepo, txRepo)

	_, receipt, err := uc.RegisterPayout("Alice", map[string]string{
		"Cobre":    "2",
		"Plastico": "0",
		"Hierro":   "no-numerico", // política: inválido vale 0 y la línea se descarta
	})
	require.NoError(t, err)

	require.Len(t, txRepo.appended, 1)
	assert.Equal(t, "Cobre", txRepo.appended[0].Material)
	require.Len(t, receipt.Lines, 1)
}

func TestRegisterPayout_SinLineasValidas(t *testing.T) {
	priceRepo := &fakePriceRepo{catalog: entity.Catalog{"Cobre": dec(t, "6.00")}}
	txRepo := &fakeTxRepo{}
	uc := newUC(priceRepo, txRepo)

	_, _, err := uc.RegisterPayout("Alice", map[string]string{"Cobre": "0"})
	assert.ErrorIs(t, err, domain.ErrEmptyPayout)
	assert.Empty(t, txRepo.appended, "nada debe persistirse")
}

func TestRegisterPayout_ActorVacio(t *testing.T) {
	uc := newUC(&fakePriceRepo{}, &fakeTxRepo{})

	_, _, err := uc.RegisterPayout("  ", map[string]string{"Cobre": "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterPayout_ErrorDePersistenciaSeReporta(t *testing.T) {
	priceRepo := &fakePriceRepo{catalog: entity.Catalog{"Cobre": dec(t, "6.00")}}
	txRepo := &fakeTxRepo{appendErr: errors.New("hoja bloqueada")}
	uc := newUC(priceRepo, txRepo)

	_, _, err := uc.RegisterPayout("Alice", map[string]string{"Cobre": "1"})
	assert.Error(t, err)
}

// Catálogo inaccesible: el registro no falla, las líneas se valorizan a 0.
func TestRegisterPayout_CatalogoInaccesibleValorizaACero(t *testing.T) {
	priceRepo := &fakePriceRepo{getErr: errors.New("credenciales inválidas")}
	txRepo := &fakeTxRepo{}
	uc := newUC(priceRepo, txRepo)

	_, receipt, err := uc.RegisterPayout("Alice", map[string]string{"Cobre": "3"})
	require.NoError(t, err)

	require.Len(t, receipt.Lines, 1)
	assert.True(t, receipt.Lines[0].UnitPrice.IsZero())
	assert.True(t, receipt.Total.IsZero())
	require.Len(t, txRepo.appended, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildReceipt
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReceipt_NoPersisteNada(t *testing.T) {
	priceRepo := &fakePriceRepo{catalog: entity.Catalog{"Cobre": dec(t, "6.00")}}
	txRepo := &fakeTxRepo{}
	uc := newUC(priceRepo, txRepo)

	receipt, err := uc.BuildReceipt("Alice", map[string]string{"Cobre": "2"})
	require.NoError(t, err)

	assert.True(t, receipt.Total.Equal(dec(t, "12.00")))
	assert.Empty(t, txRepo.appended, "calcular un recibo no escribe en el log")
}

func TestBuildReceipt_ActorVacio(t *testing.T) {
	uc := newUC(&fakePriceRepo{}, &fakeTxRepo{})

	_, err := uc.BuildReceipt("", map[string]string{"Cobre": "2"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
