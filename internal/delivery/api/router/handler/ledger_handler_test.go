package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guildbook/internal/delivery/api/middleware"
	"guildbook/internal/delivery/api/validator"
	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/ledger"
	"guildbook/internal/domain/service"
	mockService "guildbook/internal/mocks/service"
	mockUsecase "guildbook/internal/mocks/usecase"
	"guildbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken     = "session-token"
	testSessionID = "session-1"
	testGuildID   = "guild-1"
)

type ledgerFixture struct {
	echo     *echo.Echo
	handler  *LedgerHandler
	auth     *middleware.AuthMiddleware
	ledgerUC *mockUsecase.MockLedgerUsecase
	qrSvc    *mockService.MockQRCodeService
	state    *entity.GuildState
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{
		GuildID:   testGuildID,
		SessionID: testSessionID,
		Roles:     []string{"guild"},
	}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).Return(nil, assert.AnError).Maybe()

	ledgerUC := mockUsecase.NewMockLedgerUsecase(t)
	qrSvc := mockService.NewMockQRCodeService(t)

	e := echo.New()
	e.Validator = validator.New()

	return &ledgerFixture{
		echo: e,
		handler: NewLedgerHandler(LedgerHandlerParams{
			LedgerUC:  ledgerUC,
			QRCodeSvc: qrSvc,
			Logger:    slog.New(slog.DiscardHandler),
		}),
		auth:     middleware.NewAuthMiddleware(tokenSvc),
		ledgerUC: ledgerUC,
		qrSvc:    qrSvc,
		state:    entity.NewGuildState(testGuildID, "Lâmina Rubra"),
	}
}

// expectApply runs mutations against a real ledger built from the fixture state.
func (f *ledgerFixture) expectApply(operation string) {
	f.ledgerUC.EXPECT().Apply(mock.Anything, testSessionID, operation, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, fn usecase.Mutation) (*entity.GuildState, error) {
			l := ledger.New(f.state.Clone())
			if err := fn(l); err != nil {
				return nil, err
			}
			f.state = l.State()

			return l.State(), nil
		})
}

func (f *ledgerFixture) do(method, path, pattern string, h echo.HandlerFunc, body string, authed bool) *httptest.ResponseRecorder {
	f.echo.Add(method, pattern, h, f.auth.Authenticate)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type mutationEnvelope struct {
	Data struct {
		State  entity.GuildState `json:"state"`
		Result json.RawMessage   `json:"result"`
	} `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestLedgerHandler_Deposit(t *testing.T) {
	f := newLedgerFixture(t)
	f.expectApply("finance.deposit")

	rec := f.do(http.MethodPost, "/deposit", "/deposit", f.handler.Deposit,
		`{"amount":150,"currency":"TS","reason":"espólio"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[mutationEnvelope](t, rec)
	assert.Equal(t, 150.0, body.Data.State.Wallet.TS)
	require.Len(t, body.Data.State.Logs, 1)
	assert.Equal(t, entity.LogDeposito, body.Data.State.Logs[0].Category)
}

func TestLedgerHandler_Deposit_SaveFailedKeepsState(t *testing.T) {
	f := newLedgerFixture(t)
	f.ledgerUC.EXPECT().Apply(mock.Anything, testSessionID, "finance.deposit", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, fn usecase.Mutation) (*entity.GuildState, error) {
			l := ledger.New(f.state.Clone())
			require.NoError(t, fn(l))

			return l.State(), errors.Wrap(domainerrors.ErrSaveFailed, "db down")
		})

	rec := f.do(http.MethodPost, "/deposit", "/deposit", f.handler.Deposit,
		`{"amount":40,"currency":"TS"}`, true)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SAVE_FAILED", decode[errorEnvelope](t, rec).Error.Code)
	assert.Equal(t, 40.0, decode[mutationEnvelope](t, rec).Data.State.Wallet.TS)
}

func TestLedgerHandler_Withdraw_InsufficientFunds(t *testing.T) {
	f := newLedgerFixture(t)
	f.expectApply("finance.withdraw")

	rec := f.do(http.MethodPost, "/withdraw", "/withdraw", f.handler.Withdraw,
		`{"amount":10,"currency":"TO"}`, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "INSUFFICIENT_FUNDS", decode[errorEnvelope](t, rec).Error.Code)
}

func TestLedgerHandler_Deposit_ValidationFailed(t *testing.T) {
	f := newLedgerFixture(t)

	rec := f.do(http.MethodPost, "/deposit", "/deposit", f.handler.Deposit,
		`{"amount":10,"currency":"XP"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode[errorEnvelope](t, rec).Error.Code)
	f.ledgerUC.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerHandler_RequiresToken(t *testing.T) {
	f := newLedgerFixture(t)

	rec := f.do(http.MethodPost, "/deposit", "/deposit", f.handler.Deposit,
		`{"amount":10,"currency":"TS"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decode[errorEnvelope](t, rec).Error.Code)
}

func TestLedgerHandler_AddMember(t *testing.T) {
	f := newLedgerFixture(t)
	f.expectApply("members.add")

	rec := f.do(http.MethodPost, "/members", "/members", f.handler.AddMember, `{"name":"Arkam"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode[mutationEnvelope](t, rec)
	require.Len(t, body.Data.State.Members, 1)

	var member entity.Member
	require.NoError(t, json.Unmarshal(body.Data.Result, &member))
	assert.Equal(t, "Arkam", member.Name)
	assert.Equal(t, body.Data.State.Members[0].ID, member.ID)
}

func TestLedgerHandler_SellItem(t *testing.T) {
	f := newLedgerFixture(t)
	f.state.Items = entity.Items{{ID: "item-1", Name: "Rubi", Type: entity.ItemTypeTesouro, Quantity: 3, Value: 100}}
	f.expectApply("items.sell")

	rec := f.do(http.MethodPost, "/items/item-1/sell", "/items/:itemId/sell", f.handler.SellItem,
		`{"quantity":2,"percent":50}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[mutationEnvelope](t, rec)

	var sale SaleResult
	require.NoError(t, json.Unmarshal(body.Data.Result, &sale))
	assert.Equal(t, 100.0, sale.Proceeds)
	assert.Equal(t, 100.0, body.Data.State.Wallet.TS)
	require.Len(t, body.Data.State.Items, 1)
	assert.Equal(t, 1, body.Data.State.Items[0].Quantity)
}

func TestLedgerHandler_SellItem_RequiresPercent(t *testing.T) {
	f := newLedgerFixture(t)

	rec := f.do(http.MethodPost, "/items/item-1/sell", "/items/:itemId/sell", f.handler.SellItem,
		`{"quantity":2}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLedgerHandler_DeleteItem_BadQuantity(t *testing.T) {
	f := newLedgerFixture(t)

	rec := f.do(http.MethodDelete, "/items/item-1?qty=abc", "/items/:itemId", f.handler.DeleteItem, "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode[errorEnvelope](t, rec).Error.Code)
}

func TestLedgerHandler_RoomCapacity(t *testing.T) {
	f := newLedgerFixture(t)
	f.state.Bases = []*entity.Base{{
		ID:    "base-1",
		Name:  "Torre",
		Porte: entity.PorteBasica,
		Type:  entity.BaseTypeResidencia,
		Rooms: []*entity.Room{{ID: "room-1", Name: "Forja"}},
	}}
	f.ledgerUC.EXPECT().State(mock.Anything, testSessionID).Return(f.state, nil)

	rec := f.do(http.MethodGet, "/bases/base-1/capacity", "/bases/:baseId/capacity", f.handler.RoomCapacity, "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Data CapacityResponse `json:"data"`
	}](t, rec)
	assert.Equal(t, CapacityResponse{Used: 1, Slots: 4}, body.Data)
}

func TestLedgerHandler_ShareCode(t *testing.T) {
	f := newLedgerFixture(t)
	f.qrSvc.EXPECT().GenerateGuildQR(testGuildID).Return([]byte("png-bytes"), nil)

	rec := f.do(http.MethodGet, "/qr", "/qr", f.handler.ShareCode, "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestLedgerHandler_Logout(t *testing.T) {
	f := newLedgerFixture(t)
	f.ledgerUC.EXPECT().Logout(mock.Anything, testSessionID).Return(nil)

	rec := f.do(http.MethodPost, "/logout", "/logout", f.handler.Logout, "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
