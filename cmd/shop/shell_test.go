package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"shopstream/internal/catalog"
	infraRepo "shopstream/internal/infra/repository"
	"shopstream/internal/infra/ui"
	"shopstream/internal/usecase"
	"shopstream/internal/usecase/auth"
	"shopstream/internal/validator"
)

// scriptにある行を順に流し、終了後のcartを返す
func runScript(t *testing.T, script string) (*usecase.CartUsecase, string) {
	t.Helper()
	ctx := context.Background()

	log := zap.NewNop()
	blobs := infraRepo.NewBlobMemoryStore()
	productRepo := infraRepo.NewStaticProductRepository(catalog.Products())

	hasher := auth.NewBcryptPasswordHasher(4)
	userRepo, err := infraRepo.NewStaticUserRepository(catalog.Users(), hasher)
	assert.NoError(t, err)

	idGen := &auth.UUIDGenerator{}
	clock := &auth.SystemClock{}
	issuer := auth.NewJWTIssuer("test_secret", 15*time.Minute, idGen)

	notifier := ui.NewConsoleNotifier(log)
	nav := ui.NewConsoleNavigator(log)
	v := validator.NewStorefrontValidator()

	session := usecase.NewSessionUsecase(userRepo, blobs, auth.NewBcryptPasswordVerifier(), issuer, clock, v, nav, log, 0)
	cart := usecase.NewCartUsecase(blobs, notifier, log)
	products := usecase.NewProductUsecase(productRepo)
	orders := usecase.NewOrderUsecase(session, cart, notifier, nav)

	assert.NoError(t, session.Hydrate(ctx))
	assert.NoError(t, cart.Hydrate(ctx))

	var out bytes.Buffer
	runShell(ctx, strings.NewReader(script), &out, session, cart, products, orders, nil)
	return cart, out.String()
}

func TestShell_QtyZeroRemovesLine(t *testing.T) {
	cart, _ := runScript(t, "add 1 2\nqty 1 0\nquit\n")
	assert.Empty(t, cart.Items())
}

func TestShell_QtySetsAbsoluteValue(t *testing.T) {
	cart, _ := runScript(t, "add 1 2\nqty 1 5\nquit\n")

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].Quantity)
}

func TestShell_QtyRejectsNonNumeric(t *testing.T) {
	cart, out := runScript(t, "add 1 2\nqty 1 lots\nquit\n")

	// 解釈できない数量は何も変えない
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Contains(t, out, "quantity must be a whole number")
}

func TestShell_AddCoercesLooseQuantity(t *testing.T) {
	cart, _ := runScript(t, "add 1 abc\nquit\n")

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Quantity)
}
