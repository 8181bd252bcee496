package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/estoque-api/internal/application/usecase"
	"github.com/jcastano/estoque-api/internal/domain"
	"github.com/jcastano/estoque-api/internal/domain/entity"
	"github.com/jcastano/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el puerto ProductRepository y el TxRunner.
// El fake guarda y devuelve copias para poder verificar que una operación
// fallida no tocó el "almacenamiento".
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	seq      int64
	products map[int64]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]entity.Product)}
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(f.products))
	for id := int64(1); id <= f.seq; id++ {
		if p, ok := f.products[id]; ok {
			cp := p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (f *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeProductRepo) SearchByName(_ context.Context, name string) ([]*entity.Product, error) {
	var list []*entity.Product
	for id := int64(1); id <= f.seq; id++ {
		p, ok := f.products[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			cp := p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeProductRepo) Save(_ context.Context, product *entity.Product) (*entity.Product, error) {
	if product.ID == 0 {
		f.seq++
		product.ID = f.seq
	}
	f.products[product.ID] = *product
	cp := *product
	return &cp, nil
}

func (f *fakeProductRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeProductRepo) DeleteByID(_ context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra el mismo fake; los
// tests de atomicidad dependen de que el caso de uso no escriba antes de
// validar, no de un rollback real.
type fakeTxRunner struct {
	repo *fakeProductRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repo repository.ProductRepository) error) error {
	return fn(f.repo)
}

func newUseCase() (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return usecase.NewProductUseCase(repo, &fakeTxRunner{repo: repo}), repo
}

func newProduct(name string, price float64, quantity int) *entity.Product {
	return &entity.Product{
		Name:        name,
		Description: "producto de prueba",
		Price:       decimal.NewFromFloat(price),
		Quantity:    quantity,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Save: validación de invariantes
// ──────────────────────────────────────────────────────────────────────────────

// Un precio negativo se rechaza con ErrInvalidInput y no genera escrituras.
func TestSave_PrecioNegativo(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Save(context.Background(), newProduct("Tornillos", -1.50, 10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, repo.products, "un save inválido no debe escribir nada")
}

// Una cantidad negativa se rechaza con ErrInvalidInput y no genera escrituras.
func TestSave_CantidadNegativa(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Save(context.Background(), newProduct("Tornillos", 1.50, -3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, repo.products)
}

// Un save válido asigna ID, fija la fecha de registro y el producto se puede
// recuperar con los mismos campos.
func TestSave_Valido_RoundTrip(t *testing.T) {
	uc, _ := newUseCase()

	saved, err := uc.Save(context.Background(), newProduct("Tornillos", 1.50, 10))
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotZero(t, saved.ID, "el ID lo asigna el almacenamiento")
	assert.False(t, saved.RegisteredAt.IsZero(), "la fecha de registro se fija al crear")

	got, err := uc.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tornillos", got.Name)
	assert.Equal(t, "producto de prueba", got.Description)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(1.50)))
	assert.Equal(t, 10, got.Quantity)
}

// Precio cero y cantidad cero son válidos: los invariantes son >= 0.
func TestSave_CeroEsValido(t *testing.T) {
	uc, _ := newUseCase()

	saved, err := uc.Save(context.Background(), newProduct("Muestra gratis", 0, 0))
	require.NoError(t, err)
	assert.True(t, saved.Price.IsZero())
	assert.Zero(t, saved.Quantity)
}

// Save con ID existente actualiza el registro completo sin cambiar la fecha
// de registro original.
func TestSave_Update(t *testing.T) {
	uc, _ := newUseCase()

	saved, err := uc.Save(context.Background(), newProduct("Tornillos", 1.50, 10))
	require.NoError(t, err)
	registered := saved.RegisteredAt

	saved.Name = "Tornillos galvanizados"
	saved.Price = decimal.NewFromFloat(2.25)
	updated, err := uc.Save(context.Background(), saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "Tornillos galvanizados", updated.Name)
	assert.Equal(t, registered, updated.RegisteredAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search: criterio vacío y matching case-insensitive
// ──────────────────────────────────────────────────────────────────────────────

// Criterio vacío, nulo o solo espacios devuelve lo mismo que List.
func TestSearch_CriterioVacioDevuelveTodo(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	for _, name := range []string{"Martillo", "Destornillador", "Taladro"} {
		_, err := uc.Save(ctx, newProduct(name, 9.99, 5))
		require.NoError(t, err)
	}
	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	for _, q := range []string{"", "   ", "\t"} {
		got, err := uc.Search(ctx, q)
		require.NoError(t, err)
		assert.Len(t, got, len(all), "criterio %q debe equivaler a listar todo", q)
	}
}

// El matching es por substring case-insensitive en cualquier posición.
func TestSearch_CaseInsensitive(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Save(ctx, newProduct("Martillo", 9.99, 5))
	require.NoError(t, err)
	_, err = uc.Save(ctx, newProduct("Destornillador", 4.99, 5))
	require.NoError(t, err)

	for _, q := range []string{"TORNILL", "tornill", "ToRnIlL"} {
		got, err := uc.Search(ctx, q)
		require.NoError(t, err)
		require.Len(t, got, 1, "criterio %q", q)
		assert.Equal(t, "Destornillador", got[0].Name)
	}

	none, err := uc.Search(ctx, "sierra")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar un ID inexistente falla con ErrNotFound y no altera lo guardado.
func TestDelete_NoExiste(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	_, err := uc.Save(ctx, newProduct("Martillo", 9.99, 5))
	require.NoError(t, err)

	err = uc.Delete(ctx, 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Len(t, repo.products, 1)
}

// Eliminar un ID existente quita exactamente ese registro.
func TestDelete_Existente(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	a, err := uc.Save(ctx, newProduct("Martillo", 9.99, 5))
	require.NoError(t, err)
	b, err := uc.Save(ctx, newProduct("Taladro", 59.99, 2))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, a.ID))

	gone, err := uc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "la ausencia se representa como nil, no como error")

	still, err := uc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sell
// ──────────────────────────────────────────────────────────────────────────────

// Vender más de lo disponible falla con StockError llevando la cantidad
// disponible sin cambios; el stock queda intacto.
func TestSell_StockInsuficiente(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.Save(ctx, newProduct("Martillo", 9.99, 5))
	require.NoError(t, err)

	_, err = uc.Sell(ctx, p.ID, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 5, stockErr.Available, "el error lleva la cantidad disponible original")

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity, "el stock no debe cambiar")
}

// Vender una cantidad válida decrementa exactamente esa cantidad y no toca
// los demás campos.
func TestSell_DecrementaExacto(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.Save(ctx, newProduct("Martillo", 9.99, 5))
	require.NoError(t, err)

	updated, err := uc.Sell(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
	assert.Equal(t, p.Name, updated.Name)
	assert.True(t, p.Price.Equal(updated.Price))
	assert.Equal(t, p.RegisteredAt, updated.RegisteredAt)
}

// Vender el stock completo deja la cantidad en cero (el límite es inclusivo).
func TestSell_TodoElStock(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.Save(ctx, newProduct("Martillo", 9.99, 5))
	require.NoError(t, err)

	updated, err := uc.Sell(ctx, p.ID, 5)
	require.NoError(t, err)
	assert.Zero(t, updated.Quantity)
}

// Vender sobre un ID inexistente falla con ErrNotFound.
func TestSell_ProductoNoExiste(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Sell(context.Background(), 42, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Una cantidad vendida negativa se rechaza antes de tocar la DB.
func TestSell_CantidadNegativa(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.Save(ctx, newProduct("Martillo", 9.99, 5))
	require.NoError(t, err)

	_, err = uc.Sell(ctx, p.ID, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: crear → vender → sobrevender → eliminar → re-eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenarioCompleto(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	widget := &entity.Product{
		Name:        "Widget",
		Description: "basic widget",
		Price:       decimal.NewFromFloat(9.99),
		Quantity:    10,
	}
	saved, err := uc.Save(ctx, widget)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Equal(t, 10, saved.Quantity)

	afterSale, err := uc.Sell(ctx, saved.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, afterSale.Quantity)

	_, err = uc.Sell(ctx, saved.ID, 100)
	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 7, stockErr.Available)

	require.NoError(t, uc.Delete(ctx, saved.ID))

	gone, err := uc.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	err = uc.Delete(ctx, saved.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
