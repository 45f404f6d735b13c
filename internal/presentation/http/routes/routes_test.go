package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/application/service"
	"github.com/nexyrt/agsa-finance/internal/config"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/nexyrt/agsa-finance/internal/domain/enum"
	"github.com/nexyrt/agsa-finance/internal/domain/repository/mocks"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/handler"
	"github.com/nexyrt/agsa-finance/pkg/pdf"
	"github.com/nexyrt/agsa-finance/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type noAssets struct{}

func (noAssets) ImageDataURI(string) string { return "" }

type routerFixture struct {
	router   *gin.Engine
	jwt      *utils.JWTManager
	invoices *mocks.MockInvoiceRepository
	profiles *mocks.MockCompanyProfileRepository
	users    *mocks.MockUserRepository
}

func newRouterFixture(t *testing.T) *routerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &routerFixture{
		jwt:      utils.NewJWTManager("test-secret", "agsa-finance", time.Hour, 24*time.Hour),
		invoices: mocks.NewMockInvoiceRepository(ctrl),
		profiles: mocks.NewMockCompanyProfileRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
	}

	fallback := config.DefaultCompanyFallback()
	resolver := service.NewCompanyInfoResolver(service.CompanyDefaults{
		Name:              fallback.Name,
		BankName:          fallback.BankName,
		BankAccountNumber: fallback.BankAccountNumber,
		BankAccountName:   fallback.BankAccountName,
		SignerName:        fallback.SignerName,
		SignerPosition:    fallback.SignerPosition,
	}, noAssets{})

	opts := pdf.DefaultOptions()
	opts.FontDir = t.TempDir()
	printService := service.NewInvoicePrintService(f.invoices, f.profiles, resolver, service.NewPDFRenderer(opts), zap.NewNop())
	authService := service.NewAuthService(f.users, f.jwt, zap.NewNop())

	f.router = Setup(&Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Invoice: handler.NewInvoiceHandler(printService),
		Company: handler.NewCompanyHandler(printService),
	}, &Deps{
		JWTManager: f.jwt,
		Cfg:        &config.Config{App: config.AppConfig{Name: "agsa-finance"}},
		Logger:     zap.NewNop(),
	})
	return f
}

func (f *routerFixture) token(t *testing.T, permissions ...string) string {
	token, err := f.jwt.GenerateAccessToken(uuid.New(), "finance@agsa.co.id", []string{"finance"}, permissions)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func printableInvoice() *entity.Invoice {
	client := &entity.Client{ID: uuid.New(), Name: "CV. Maju Jaya"}
	return &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV/2024:001",
		ClientID:      client.ID,
		IssueDate:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		Status:        enum.InvoiceStatusSent,
		Subtotal:      decimal.NewFromInt(1000000),
		TotalAmount:   decimal.NewFromInt(1090000),
		Client:        client,
		Items: []entity.InvoiceItem{
			{ServiceName: "Jasa pembukuan", Quantity: 1, Unit: "paket", UnitPrice: decimal.NewFromInt(1000000), Amount: decimal.NewFromInt(1000000), Client: client},
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	f := newRouterFixture(t)

	w := f.get(t, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "agsa-finance")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestInvoiceRoutes_RequireAuth(t *testing.T) {
	f := newRouterFixture(t)
	id := uuid.New()

	w := f.get(t, "/api/v1/invoices/"+id.String()+"/pdf", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.get(t, "/api/v1/invoices/"+id.String()+"/pdf", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.get(t, "/api/v1/invoices/"+id.String()+"/pdf", f.token(t, entity.PermissionViewInvoices))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDownloadPDF(t *testing.T) {
	f := newRouterFixture(t)
	invoice := printableInvoice()
	f.invoices.EXPECT().GetForPrint(gomock.Any(), invoice.ID).Return(invoice, nil)
	f.profiles.EXPECT().Current(gomock.Any()).Return(nil, nil)

	w := f.get(t, "/api/v1/invoices/"+invoice.ID.String()+"/pdf", f.token(t, entity.PermissionPrintInvoices))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Invoice-INV-2024-001.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestPreviewPDF(t *testing.T) {
	f := newRouterFixture(t)
	invoice := printableInvoice()
	f.invoices.EXPECT().GetForPrint(gomock.Any(), invoice.ID).Return(invoice, nil)
	f.profiles.EXPECT().Current(gomock.Any()).Return(nil, nil)

	w := f.get(t, "/api/v1/invoices/"+invoice.ID.String()+"/pdf/preview?dp_amount=500000", f.token(t, entity.PermissionViewInvoices))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "inline;"))
}

func TestPrintData(t *testing.T) {
	f := newRouterFixture(t)
	invoice := printableInvoice()
	f.invoices.EXPECT().GetForPrint(gomock.Any(), invoice.ID).Return(invoice, nil)
	f.profiles.EXPECT().Current(gomock.Any()).Return(nil, nil)

	w := f.get(t, "/api/v1/invoices/"+invoice.ID.String()+"/print-data?dp_amount=50000&pelunasan_amount=30000", f.token(t, entity.PermissionViewInvoices))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.True(t, body.Success)

	var data struct {
		Terbilang     string `json:"terbilang"`
		IsDownPayment bool   `json:"is_down_payment"`
		IsPelunasan   bool   `json:"is_pelunasan"`
		Company       struct {
			Name string `json:"name"`
		} `json:"company"`
		RegularItems    []json.RawMessage `json:"regular_items"`
		TaxDepositItems []json.RawMessage `json:"tax_deposit_items"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "Satu juta sembilan puluh ribu rupiah", data.Terbilang)
	assert.True(t, data.IsDownPayment)
	assert.False(t, data.IsPelunasan)
	assert.Equal(t, "PT. KINARA SADAYATRA NUSANTARA", data.Company.Name)
	assert.Len(t, data.RegularItems, 1)
	assert.NotNil(t, data.TaxDepositItems)
	assert.Empty(t, data.TaxDepositItems)
}

func TestPrintRoutes_BadRequest(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(t, entity.PermissionViewInvoices)

	w := f.get(t, "/api/v1/invoices/not-a-uuid/print-data", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.get(t, "/api/v1/invoices/"+uuid.NewString()+"/print-data?dp_amount=abc", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrintRoutes_NotFound(t *testing.T) {
	f := newRouterFixture(t)
	id := uuid.New()
	f.invoices.EXPECT().GetForPrint(gomock.Any(), id).Return(nil, nil)

	w := f.get(t, "/api/v1/invoices/"+id.String()+"/pdf", f.token(t, entity.PermissionPrintInvoices))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Invoice not found", decode(t, w).Message)
}

func TestCompanyProfile(t *testing.T) {
	f := newRouterFixture(t)
	f.profiles.EXPECT().Current(gomock.Any()).Return(&entity.CompanyProfile{Name: "PT. AGSA"}, nil)

	w := f.get(t, "/api/v1/company-profile", f.token(t, entity.PermissionViewInvoices))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"name":"PT. AGSA"`)
}

func TestLogin(t *testing.T) {
	f := newRouterFixture(t)
	hash, err := utils.HashPassword("rahasia123")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "Finance", Email: "finance@agsa.co.id", Password: hash}
	f.users.EXPECT().GetByEmail(gomock.Any(), "finance@agsa.co.id").Return(user, nil)
	f.users.EXPECT().GetWithRoles(gomock.Any(), user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"Finance@AGSA.co.id","password":"rahasia123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
		User        struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	_, err = f.jwt.ValidateAccessToken(data.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer", data.TokenType)
	assert.Equal(t, int64(3600), data.ExpiresIn)
	assert.Equal(t, "finance@agsa.co.id", data.User.Email)
}

func TestProfile(t *testing.T) {
	f := newRouterFixture(t)
	user := &entity.User{
		ID:    uuid.New(),
		Name:  "Finance",
		Email: "finance@agsa.co.id",
		Roles: []entity.Role{{
			Name:        "finance",
			Permissions: []entity.Permission{{Name: entity.PermissionViewInvoices}},
		}},
	}
	f.users.EXPECT().GetWithRoles(gomock.Any(), user.ID).Return(user, nil)
	token, err := f.jwt.GenerateAccessToken(user.ID, user.Email, []string{"finance"}, nil)
	require.NoError(t, err)

	w := f.get(t, "/api/v1/profile", token)

	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Name        string   `json:"name"`
		Roles       []string `json:"roles"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "Finance", data.Name)
	assert.Equal(t, []string{"finance"}, data.Roles)
	assert.Equal(t, []string{entity.PermissionViewInvoices}, data.Permissions)
}

func TestLogin_BadBody(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
