package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/procurehq/procure/internal/entity"
	orderrepo "github.com/procurehq/procure/internal/repository/order"
	service "github.com/procurehq/procure/internal/service/order"
)

type fakeRepo struct {
	exists    bool
	insertErr error
	nextID    int64

	details *entity.OrderDetails
	count   int
}

func (f *fakeRepo) Insert(ctx context.Context, order *entity.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	order.ID = f.nextID
	return nil
}

func (f *fakeRepo) Exists(ctx context.Context, orderNo, orderYear string) (bool, error) {
	return f.exists, nil
}

func (f *fakeRepo) GetDetails(ctx context.Context, id int64) (*entity.OrderDetails, error) {
	if f.details == nil {
		return nil, orderrepo.ErrNotFound
	}
	return f.details, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	return f.count, nil
}

func newTestServer(r *fakeRepo) *echo.Echo {
	svc := service.NewService(r, zap.NewNop(), nil, service.Options{})
	e := echo.New()
	Register(e, NewHandler(svc))
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderReturnsAssignedID(t *testing.T) {
	e := newTestServer(&fakeRepo{})

	rec := doJSON(e, http.MethodPost, "/orders", `{"orderNo":"77","orderYear":"2024","orderDate":"2024-03-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			OrderID int64 `json:"orderID"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	require.Equal(t, int64(1), payload.Data.OrderID)
}

func TestCreateOrderValidationError(t *testing.T) {
	e := newTestServer(&fakeRepo{})

	rec := doJSON(e, http.MethodPost, "/orders", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload struct {
		Success bool `json:"success"`
		Error   struct {
			Kind    string         `json:"kind"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.False(t, payload.Success)
	require.Equal(t, "bad_request", payload.Error.Kind)

	violations, ok := payload.Error.Details["violations"].([]any)
	require.True(t, ok)
	require.Len(t, violations, 3)
}

func TestCreateOrderConflict(t *testing.T) {
	e := newTestServer(&fakeRepo{exists: true})

	rec := doJSON(e, http.MethodPost, "/orders", `{"orderNo":"77","orderYear":"2024","orderDate":"2024-03-15"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var payload struct {
		Error struct {
			Kind string `json:"kind"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "conflict", payload.Error.Kind)
}

func TestOrderDetails(t *testing.T) {
	details := &entity.OrderDetails{
		ProcedureName: "direct purchase",
		Committee:     "no committee",
		Department:    "no department",
		Username:      "admin",
	}
	details.ID = 7
	details.OrderNo = "77"
	details.OrderYear = "2024"
	details.Color = entity.ColorYellow

	e := newTestServer(&fakeRepo{details: details})

	req := httptest.NewRequest(http.MethodGet, "/orders/7/details", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data struct {
			OrderID   int64  `json:"orderID"`
			OrderNo   string `json:"orderNo"`
			Committee string `json:"committee"`
			Color     string `json:"color"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, int64(7), payload.Data.OrderID)
	require.Equal(t, "77", payload.Data.OrderNo)
	require.Equal(t, "no committee", payload.Data.Committee)
	require.Equal(t, entity.ColorYellow, payload.Data.Color)
}

func TestOrderDetailsNotFound(t *testing.T) {
	e := newTestServer(&fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/orders/9/details", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderDetailsBadID(t *testing.T) {
	e := newTestServer(&fakeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/orders/abc/details", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCountAllOrderNo(t *testing.T) {
	e := newTestServer(&fakeRepo{count: 12})

	req := httptest.NewRequest(http.MethodGet, "/orders/countAllOrderNo", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data struct {
			Count int `json:"countAllOrderNo"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 12, payload.Data.Count)
}
