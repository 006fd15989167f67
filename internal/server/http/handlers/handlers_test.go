package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/pkg/upload"
	"github.com/starbuy/shop/internal/server/http/dto"
	"github.com/starbuy/shop/internal/usecase"
	testhelpers "github.com/starbuy/shop/internal/test/facade"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newUploadStore(t *testing.T) *upload.Store {
	t.Helper()
	store, err := upload.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write([]byte("png-bytes")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUserHandlerGet(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{
		ResolveUserFn: func(_ context.Context, telegramID int64, username, firstName, ref string) (*model.User, error) {
			if username != "buyer" || ref != "REFZZZ999" {
				t.Fatalf("unexpected query params: %q %q", username, ref)
			}
			return &model.User{TelegramID: telegramID, Username: username, MainBalance: decimal.RequireFromString("10.50")}, nil
		},
	}
	handler := NewUserHandler(facade)

	resp := performRequest(t, http.MethodGet, "/user/:telegramID", "/user/7?username=buyer&ref=REFZZZ999", handler.Get, nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var user dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.TelegramID != 7 || !user.MainBalance.Equal(decimal.RequireFromString("10.50")) {
		t.Fatalf("unexpected body: %+v", user)
	}
}

func TestUserHandlerGetInvalidID(t *testing.T) {
	handler := NewUserHandler(&testhelpers.ShopFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/user/:telegramID", "/user/abc", handler.Get, nil, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCatalogHandlerPackages(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{
		PackagesFn: func(context.Context) ([]model.Package, error) {
			return []model.Package{{ID: 1, Name: "Starter", Price: decimal.RequireFromString("5.00")}}, nil
		},
	}
	handler := NewCatalogHandler(facade)

	resp := performRequest(t, http.MethodGet, "/packages", "/packages", handler.Packages, nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var packages []dto.PackageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &packages); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(packages) != 1 || packages[0].Name != "Starter" {
		t.Fatalf("unexpected body: %+v", packages)
	}
}

func TestCatalogHandlerSettings(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{
		StoreSettingsFn: func(context.Context) (model.Settings, error) {
			return model.Settings{"official_channel": "@shop"}, nil
		},
	}
	handler := NewCatalogHandler(facade)

	resp := performRequest(t, http.MethodGet, "/settings", "/settings", handler.Settings, nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var settings map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if settings["official_channel"] != "@shop" {
		t.Fatalf("unexpected body: %v", settings)
	}
}

func TestOrderHandlerPlace(t *testing.T) {
	var got usecase.PlaceRequest
	facade := &testhelpers.ShopFacadeStub{
		PlaceOrderFn: func(_ context.Context, req usecase.PlaceRequest) (*model.Order, error) {
			got = req
			return &model.Order{OrderID: "ORD00000001", Status: model.OrderStatusPending}, nil
		},
	}
	handler := NewOrderHandler(facade, newUploadStore(t))

	body, contentType := multipartBody(t, map[string]string{
		"telegramId":    "7",
		"packageId":     "2",
		"paymentMethod": "balance",
		"userInput":     "@target",
	}, "screenshot", "proof.png")
	resp := performRequest(t, http.MethodPost, "/order", "/order", handler.Place, body, contentType)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d body=%s", resp.Code, resp.Body.String())
	}
	if got.TelegramID != 7 || got.PackageID != 2 || got.Method != "balance" {
		t.Fatalf("unexpected request: %+v", got)
	}
	if got.ScreenshotPath == "" {
		t.Fatal("expected screenshot to be stored")
	}
}

func TestOrderHandlerPlaceWithoutScreenshot(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{}
	handler := NewOrderHandler(facade, newUploadStore(t))

	body, contentType := multipartBody(t, map[string]string{
		"telegramId":    "7",
		"packageId":     "2",
		"paymentMethod": "balance",
		"userInput":     "@target",
	}, "", "")
	resp := performRequest(t, http.MethodPost, "/order", "/order", handler.Place, body, contentType)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerPlaceFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"insufficient balance", domainErrors.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"insufficient stars", domainErrors.ErrInsufficientStars, http.StatusPaymentRequired},
		{"premium required", domainErrors.ErrPremiumRequired, http.StatusPaymentRequired},
		{"package unavailable", domainErrors.ErrPackageUnavailable, http.StatusBadRequest},
		{"unknown user", domainErrors.ErrNotFound, http.StatusNotFound},
		{"storage failure", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := &testhelpers.ShopFacadeStub{
				PlaceOrderFn: func(context.Context, usecase.PlaceRequest) (*model.Order, error) {
					return nil, tt.err
				},
			}
			handler := NewOrderHandler(facade, newUploadStore(t))
			body, contentType := multipartBody(t, map[string]string{
				"telegramId":    "7",
				"packageId":     "2",
				"paymentMethod": "balance",
				"userInput":     "@target",
			}, "screenshot", "proof.png")
			resp := performRequest(t, http.MethodPost, "/order", "/order", handler.Place, body, contentType)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerPlaceBadForm(t *testing.T) {
	handler := NewOrderHandler(&testhelpers.ShopFacadeStub{}, newUploadStore(t))

	body, contentType := multipartBody(t, map[string]string{"telegramId": "7"}, "", "")
	resp := performRequest(t, http.MethodPost, "/order", "/order", handler.Place, body, contentType)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerPlaceStars(t *testing.T) {
	var got usecase.PlaceRequest
	facade := &testhelpers.ShopFacadeStub{
		PlaceOrderFn: func(_ context.Context, req usecase.PlaceRequest) (*model.Order, error) {
			got = req
			return &model.Order{OrderID: "ORD00000002", Status: model.OrderStatusPending}, nil
		},
	}
	handler := NewOrderHandler(facade, newUploadStore(t))

	body, contentType := multipartBody(t, map[string]string{
		"telegramId": "7",
		"packageId":  "1",
		"userInput":  "@target",
	}, "screenshot", "proof.png")
	resp := performRequest(t, http.MethodPost, "/order-stars", "/order-stars", handler.PlaceStars, body, contentType)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got.Method != string(model.PaymentMethodStars) {
		t.Fatalf("expected stars method, got %q", got.Method)
	}
	if got.ScreenshotPath == "" {
		t.Fatal("expected screenshot to be stored")
	}
}

func TestOrderHandlerList(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{
		OrdersFn: func(_ context.Context, telegramID int64, limit int) ([]model.Order, error) {
			if telegramID != 7 || limit != historyLimit {
				t.Fatalf("unexpected args: id=%d limit=%d", telegramID, limit)
			}
			return []model.Order{{OrderID: "ORD00000001", Status: model.OrderStatusSuccess}}, nil
		},
	}
	handler := NewOrderHandler(facade, newUploadStore(t))

	resp := performRequest(t, http.MethodGet, "/orders/:telegramID", "/orders/7", handler.List, nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != string(model.OrderStatusSuccess) {
		t.Fatalf("unexpected body: %+v", orders)
	}
}

func TestDepositHandlerSubmit(t *testing.T) {
	var got usecase.SubmitRequest
	facade := &testhelpers.ShopFacadeStub{
		SubmitDepositFn: func(_ context.Context, req usecase.SubmitRequest) (*model.Deposit, error) {
			got = req
			return &model.Deposit{DepositID: "DEP00000001", Status: model.DepositStatusProcessing}, nil
		},
	}
	handler := NewDepositHandler(facade, newUploadStore(t))

	body, contentType := multipartBody(t, map[string]string{
		"telegramId": "7",
		"amount":     "15.00",
		"method":     "USDT",
		"reference":  "0xabc",
	}, "screenshot", "proof.png")
	resp := performRequest(t, http.MethodPost, "/deposit", "/deposit", handler.Submit, body, contentType)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d body=%s", resp.Code, resp.Body.String())
	}
	if !got.Amount.Equal(decimal.RequireFromString("15.00")) || got.Method != "USDT" {
		t.Fatalf("unexpected request: %+v", got)
	}
	if got.ScreenshotPath == "" {
		t.Fatal("expected screenshot to be stored")
	}
}

func TestDepositHandlerSubmitWithoutScreenshot(t *testing.T) {
	var got usecase.SubmitRequest
	facade := &testhelpers.ShopFacadeStub{
		SubmitDepositFn: func(_ context.Context, req usecase.SubmitRequest) (*model.Deposit, error) {
			got = req
			return &model.Deposit{DepositID: "DEP00000002", Status: model.DepositStatusProcessing}, nil
		},
	}
	handler := NewDepositHandler(facade, newUploadStore(t))

	body, contentType := multipartBody(t, map[string]string{
		"telegramId": "7",
		"amount":     "15.00",
		"method":     "USDT",
		"reference":  "0xabc",
	}, "", "")
	resp := performRequest(t, http.MethodPost, "/deposit", "/deposit", handler.Submit, body, contentType)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d body=%s", resp.Code, resp.Body.String())
	}
	if got.ScreenshotPath != "" {
		t.Fatalf("expected no screenshot path, got %q", got.ScreenshotPath)
	}
}

func TestDepositHandlerSubmitBadAmount(t *testing.T) {
	handler := NewDepositHandler(&testhelpers.ShopFacadeStub{}, newUploadStore(t))

	body, contentType := multipartBody(t, map[string]string{
		"telegramId": "7",
		"amount":     "abc",
		"method":     "USDT",
		"reference":  "0xabc",
	}, "screenshot", "proof.png")
	resp := performRequest(t, http.MethodPost, "/deposit", "/deposit", handler.Submit, body, contentType)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestDepositHandlerList(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{
		DepositsFn: func(_ context.Context, telegramID int64, limit int) ([]model.Deposit, error) {
			return []model.Deposit{{DepositID: "DEP00000001", Status: model.DepositStatusApproved}}, nil
		},
	}
	handler := NewDepositHandler(facade, newUploadStore(t))

	resp := performRequest(t, http.MethodGet, "/deposits/:telegramID", "/deposits/7", handler.List, nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var deposits []dto.DepositResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &deposits); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(deposits) != 1 || deposits[0].Status != string(model.DepositStatusApproved) {
		t.Fatalf("unexpected body: %+v", deposits)
	}
}

func TestReferralHandlerSummary(t *testing.T) {
	facade := &testhelpers.ShopFacadeStub{
		ReferralSummaryFn: func(_ context.Context, telegramID int64) (*model.ReferralSummary, error) {
			return &model.ReferralSummary{Code: "REFAAA111", Balance: decimal.RequireFromString("3.50"), Total: 4, Successful: 2}, nil
		},
	}
	handler := NewReferralHandler(facade)

	resp := performRequest(t, http.MethodGet, "/referrals/:telegramID", "/referrals/7", handler.Summary, nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var summary dto.ReferralResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.Code != "REFAAA111" || summary.Total != 4 {
		t.Fatalf("unexpected body: %+v", summary)
	}
}

func TestReferralHandlerTransfer(t *testing.T) {
	var gotAmount decimal.Decimal
	facade := &testhelpers.ShopFacadeStub{
		TransferReferralFn: func(_ context.Context, telegramID int64, amount decimal.Decimal) error {
			gotAmount = amount
			return nil
		},
	}
	handler := NewReferralHandler(facade)

	body, _ := json.Marshal(dto.TransferReferralRequest{TelegramID: 7, Amount: "2.50"})
	resp := performRequest(t, http.MethodPost, "/transfer-referral", "/transfer-referral", handler.Transfer, bytes.NewReader(body), "application/json")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !gotAmount.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("unexpected amount: %v", gotAmount)
	}
}

func TestReferralHandlerTransferFailures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad json", "{", nil, http.StatusBadRequest},
		{"bad amount", `{"telegramId":7,"amount":"abc"}`, nil, http.StatusBadRequest},
		{"insufficient", `{"telegramId":7,"amount":"5"}`, domainErrors.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"unknown user", `{"telegramId":7,"amount":"5"}`, domainErrors.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := &testhelpers.ShopFacadeStub{
				TransferReferralFn: func(context.Context, int64, decimal.Decimal) error {
					return tt.err
				},
			}
			handler := NewReferralHandler(facade)
			resp := performRequest(t, http.MethodPost, "/transfer-referral", "/transfer-referral", handler.Transfer, bytes.NewReader([]byte(tt.body)), "application/json")
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestWriteErrorStatuses(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domainErrors.ErrNotFound, http.StatusNotFound},
		{domainErrors.ErrInvalidInput, http.StatusBadRequest},
		{domainErrors.ErrInvalidAmount, http.StatusBadRequest},
		{domainErrors.ErrInvalidReference, http.StatusBadRequest},
		{domainErrors.ErrPackageUnavailable, http.StatusBadRequest},
		{domainErrors.ErrInsufficientBalance, http.StatusPaymentRequired},
		{domainErrors.ErrUnauthorized, http.StatusForbidden},
		{domainErrors.ErrAlreadyProcessed, http.StatusConflict},
		{domainErrors.ErrAlreadyExists, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			WriteError(c, tt.err)
			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
		})
	}
}
