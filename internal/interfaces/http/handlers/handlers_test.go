package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authusecases "github.com/resumelift/resumelift/internal/application/auth/usecases"
	billingusecases "github.com/resumelift/resumelift/internal/application/billing/usecases"
	convusecases "github.com/resumelift/resumelift/internal/application/conversion/usecases"
	subusecases "github.com/resumelift/resumelift/internal/application/subscription/usecases"
	"github.com/resumelift/resumelift/internal/domain/subscription"
	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/shared/authorization"
	sharedConfig "github.com/resumelift/resumelift/internal/shared/config"
	"github.com/resumelift/resumelift/internal/shared/constants"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// asUser injects an authenticated identity the way the auth middleware does.
func asUser(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserSID, "user_test")
		c.Set(constants.ContextKeyUserRole, role)
		c.Next()
	}
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type stubSubscribeUC struct {
	ent *subscription.Entitlement
	err error
	cmd subusecases.SubscribeCommand
}

func (s *stubSubscribeUC) Execute(_ context.Context, cmd subusecases.SubscribeCommand) (*subscription.Entitlement, error) {
	s.cmd = cmd
	return s.ent, s.err
}

type stubChangePlanUC struct {
	ent *subscription.Entitlement
	err error
	cmd subusecases.ChangePlanCommand
}

func (s *stubChangePlanUC) Execute(_ context.Context, cmd subusecases.ChangePlanCommand) (*subscription.Entitlement, error) {
	s.cmd = cmd
	return s.ent, s.err
}

type stubEntitlementUC struct {
	ent    *subscription.Entitlement
	err    error
	userID uint
}

func (s *stubEntitlementUC) Execute(_ context.Context, userID uint) (*subscription.Entitlement, error) {
	s.userID = userID
	return s.ent, s.err
}

func proEntitlement() *subscription.Entitlement {
	return &subscription.Entitlement{
		EffectivePlan:  vo.TierPro,
		QuotaRemaining: 50,
		CanConsume:     true,
	}
}

func newSubscriptionEngine(h *SubscriptionHandler, authed bool) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/api/v1")
	if authed {
		group.Use(asUser(42, "user"))
	}
	group.GET("/entitlement", h.GetEntitlement)
	group.POST("/subscription", h.Subscribe)
	group.POST("/subscription/upgrade", h.Upgrade)
	group.POST("/subscription/downgrade", h.Downgrade)
	group.DELETE("/subscription", h.Cancel)
	return engine
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	t.Run("creates subscription", func(t *testing.T) {
		subscribeUC := &stubSubscribeUC{ent: proEntitlement()}
		h := NewSubscriptionHandler(subscribeUC, &stubChangePlanUC{}, &stubEntitlementUC{}, &stubEntitlementUC{}, testLogger())
		engine := newSubscriptionEngine(h, true)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/subscription",
			gin.H{"tier": "pro", "external_ref": "pay_123"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(42), subscribeUC.cmd.UserID)
		assert.Equal(t, "pro", subscribeUC.cmd.Tier)
		assert.Equal(t, "pay_123", subscribeUC.cmd.ExternalRef)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
	})

	t.Run("rejects unknown tier at binding", func(t *testing.T) {
		subscribeUC := &stubSubscribeUC{ent: proEntitlement()}
		h := NewSubscriptionHandler(subscribeUC, &stubChangePlanUC{}, &stubEntitlementUC{}, &stubEntitlementUC{}, testLogger())
		engine := newSubscriptionEngine(h, true)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/subscription", gin.H{"tier": "platinum"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, subscribeUC.cmd.Tier)
	})

	t.Run("maps conflict error", func(t *testing.T) {
		subscribeUC := &stubSubscribeUC{err: apperrors.NewConflictError("subscription already active")}
		h := NewSubscriptionHandler(subscribeUC, &stubChangePlanUC{}, &stubEntitlementUC{}, &stubEntitlementUC{}, testLogger())
		engine := newSubscriptionEngine(h, true)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/subscription", gin.H{"tier": "basic"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		h := NewSubscriptionHandler(&stubSubscribeUC{}, &stubChangePlanUC{}, &stubEntitlementUC{}, &stubEntitlementUC{}, testLogger())
		engine := newSubscriptionEngine(h, false)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/subscription", gin.H{"tier": "basic"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSubscriptionHandler_ChangePlan(t *testing.T) {
	t.Run("upgrade passes change type", func(t *testing.T) {
		changePlanUC := &stubChangePlanUC{ent: proEntitlement()}
		h := NewSubscriptionHandler(&stubSubscribeUC{}, changePlanUC, &stubEntitlementUC{}, &stubEntitlementUC{}, testLogger())
		engine := newSubscriptionEngine(h, true)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/subscription/upgrade", gin.H{"tier": "pro"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, subusecases.ChangeTypeUpgrade, changePlanUC.cmd.ChangeType)
	})

	t.Run("downgrade passes change type", func(t *testing.T) {
		changePlanUC := &stubChangePlanUC{ent: proEntitlement()}
		h := NewSubscriptionHandler(&stubSubscribeUC{}, changePlanUC, &stubEntitlementUC{}, &stubEntitlementUC{}, testLogger())
		engine := newSubscriptionEngine(h, true)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/subscription/downgrade", gin.H{"tier": "basic"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, subusecases.ChangeTypeDowngrade, changePlanUC.cmd.ChangeType)
	})
}

func TestSubscriptionHandler_GetEntitlement(t *testing.T) {
	getUC := &stubEntitlementUC{ent: proEntitlement()}
	h := NewSubscriptionHandler(&stubSubscribeUC{}, &stubChangePlanUC{}, &stubEntitlementUC{}, getUC, testLogger())
	engine := newSubscriptionEngine(h, true)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/entitlement", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), getUC.userID)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	ent := data["entitlement"].(map[string]any)
	assert.Equal(t, "pro", ent["effective_plan"])
	assert.Equal(t, float64(50), ent["quota_remaining"])
}

func TestSubscriptionHandler_Cancel(t *testing.T) {
	none := subscription.NoEntitlement()
	cancelUC := &stubEntitlementUC{ent: &none}
	h := NewSubscriptionHandler(&stubSubscribeUC{}, &stubChangePlanUC{}, cancelUC, &stubEntitlementUC{}, testLogger())
	engine := newSubscriptionEngine(h, true)

	w := doJSON(t, engine, http.MethodDelete, "/api/v1/subscription", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), cancelUC.userID)
}

type stubEntitlementLookupUC struct {
	ent *subscription.Entitlement
	err error
	sid string
}

func (s *stubEntitlementLookupUC) ExecuteBySID(_ context.Context, sid string) (*subscription.Entitlement, error) {
	s.sid = sid
	return s.ent, s.err
}

func newAdminEngine(h *AdminHandler, role string) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/api/v1/admin", asUser(42, role), authorization.RequireAdmin())
	group.GET("/users/:sid/entitlement", h.GetUserEntitlement)
	return engine
}

func TestAdminHandler_GetUserEntitlement(t *testing.T) {
	t.Run("admin reads another user's entitlement", func(t *testing.T) {
		lookupUC := &stubEntitlementLookupUC{ent: proEntitlement()}
		engine := newAdminEngine(NewAdminHandler(lookupUC, testLogger()), "super_admin")

		w := doJSON(t, engine, http.MethodGet, "/api/v1/admin/users/user_abc/entitlement", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user_abc", lookupUC.sid)

		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		ent := data["entitlement"].(map[string]any)
		assert.Equal(t, "pro", ent["effective_plan"])
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		lookupUC := &stubEntitlementLookupUC{ent: proEntitlement()}
		engine := newAdminEngine(NewAdminHandler(lookupUC, testLogger()), "user")

		w := doJSON(t, engine, http.MethodGet, "/api/v1/admin/users/user_abc/entitlement", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, lookupUC.sid)
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		lookupUC := &stubEntitlementLookupUC{err: apperrors.NewNotFoundError("user not found")}
		engine := newAdminEngine(NewAdminHandler(lookupUC, testLogger()), "super_admin")

		w := doJSON(t, engine, http.MethodGet, "/api/v1/admin/users/user_ghost/entitlement", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

type stubWebhookUC struct {
	err error
	cmd billingusecases.HandlePaymentEventCommand
}

func (s *stubWebhookUC) Execute(_ context.Context, cmd billingusecases.HandlePaymentEventCommand) error {
	s.cmd = cmd
	return s.err
}

func TestWebhookHandler_HandlePaymentEvent(t *testing.T) {
	newEngine := func(uc handlePaymentEventUseCase) *gin.Engine {
		engine := gin.New()
		engine.POST("/api/v1/webhooks/payment", NewWebhookHandler(uc, testLogger()).HandlePaymentEvent)
		return engine
	}

	t.Run("passes raw body and signature through", func(t *testing.T) {
		uc := &stubWebhookUC{}
		engine := newEngine(uc)

		payload := `{"external_ref":"evt_1","user_sid":"user_abc","tier":"pro"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader(payload))
		req.Header.Set(SignatureHeader, "deadbeef")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, payload, string(uc.cmd.Payload))
		assert.Equal(t, "deadbeef", uc.cmd.Signature)
	})

	t.Run("maps verification failure to 401", func(t *testing.T) {
		uc := &stubWebhookUC{err: apperrors.NewUnauthorizedError("payment event signature verification failed")}
		engine := newEngine(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader("{}"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type stubCreateConversionUC struct {
	result *convusecases.CreateConversionResult
	err    error
	cmd    convusecases.CreateConversionCommand
}

func (s *stubCreateConversionUC) Execute(_ context.Context, cmd convusecases.CreateConversionCommand) (*convusecases.CreateConversionResult, error) {
	s.cmd = cmd
	return s.result, s.err
}

type stubGetConversionUC struct {
	dto   *convusecases.ConversionDTO
	err   error
	query convusecases.GetConversionQuery
}

func (s *stubGetConversionUC) Execute(_ context.Context, q convusecases.GetConversionQuery) (*convusecases.ConversionDTO, error) {
	s.query = q
	return s.dto, s.err
}

type stubListConversionsUC struct {
	items []convusecases.ConversionDTO
	limit int
}

func (s *stubListConversionsUC) Execute(_ context.Context, _ uint, limit int) ([]convusecases.ConversionDTO, error) {
	s.limit = limit
	return s.items, nil
}

func newConversionEngine(h *ConversionHandler, role string) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/api/v1", asUser(42, role))
	group.POST("/conversions", h.CreateConversion)
	group.GET("/conversions", h.ListConversions)
	group.GET("/conversions/:sid", h.GetConversion)
	return engine
}

func TestConversionHandler_CreateConversion(t *testing.T) {
	t.Run("creates conversion", func(t *testing.T) {
		createUC := &stubCreateConversionUC{result: &convusecases.CreateConversionResult{
			Conversion:  convusecases.ConversionDTO{SID: "cv_1", TargetRole: "backend engineer"},
			Entitlement: *proEntitlement(),
		}}
		h := NewConversionHandler(createUC, &stubGetConversionUC{}, &stubListConversionsUC{}, testLogger())
		engine := newConversionEngine(h, "user")

		w := doJSON(t, engine, http.MethodPost, "/api/v1/conversions",
			gin.H{"target_role": "backend engineer", "source_text": "my cv text"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(42), createUC.cmd.UserID)
		assert.Equal(t, "backend engineer", createUC.cmd.TargetRole)
	})

	t.Run("maps quota exhaustion to 402", func(t *testing.T) {
		createUC := &stubCreateConversionUC{err: apperrors.NewQuotaExceededError("monthly quota exhausted")}
		h := NewConversionHandler(createUC, &stubGetConversionUC{}, &stubListConversionsUC{}, testLogger())
		engine := newConversionEngine(h, "user")

		w := doJSON(t, engine, http.MethodPost, "/api/v1/conversions",
			gin.H{"target_role": "backend engineer", "source_text": "my cv text"})

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		createUC := &stubCreateConversionUC{}
		h := NewConversionHandler(createUC, &stubGetConversionUC{}, &stubListConversionsUC{}, testLogger())
		engine := newConversionEngine(h, "user")

		w := doJSON(t, engine, http.MethodPost, "/api/v1/conversions", gin.H{"target_role": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestConversionHandler_GetConversion(t *testing.T) {
	getUC := &stubGetConversionUC{dto: &convusecases.ConversionDTO{SID: "cv_1"}}
	h := NewConversionHandler(&stubCreateConversionUC{}, getUC, &stubListConversionsUC{}, testLogger())
	engine := newConversionEngine(h, "super_admin")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/conversions/cv_1?format=html", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cv_1", getUC.query.SID)
	assert.Equal(t, uint(42), getUC.query.RequesterID)
	assert.True(t, getUC.query.RenderHTML)
	assert.True(t, getUC.query.Role.IsAdmin())
}

func TestConversionHandler_ListConversions(t *testing.T) {
	t.Run("passes limit through", func(t *testing.T) {
		listUC := &stubListConversionsUC{items: []convusecases.ConversionDTO{{SID: "cv_1"}, {SID: "cv_2"}}}
		h := NewConversionHandler(&stubCreateConversionUC{}, &stubGetConversionUC{}, listUC, testLogger())
		engine := newConversionEngine(h, "user")

		w := doJSON(t, engine, http.MethodGet, "/api/v1/conversions?limit=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, listUC.limit)

		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(2), data["count"])
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		h := NewConversionHandler(&stubCreateConversionUC{}, &stubGetConversionUC{}, &stubListConversionsUC{}, testLogger())
		engine := newConversionEngine(h, "user")

		w := doJSON(t, engine, http.MethodGet, "/api/v1/conversions?limit=lots", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type stubRegisterUC struct {
	dto *authusecases.UserDTO
	err error
}

func (s *stubRegisterUC) Execute(_ context.Context, _ authusecases.RegisterCommand) (*authusecases.UserDTO, error) {
	return s.dto, s.err
}

type stubLoginUC struct {
	result *authusecases.LoginResult
	err    error
}

func (s *stubLoginUC) Execute(_ context.Context, _ authusecases.LoginCommand) (*authusecases.LoginResult, error) {
	return s.result, s.err
}

type stubRefresher struct {
	pair *authusecases.TokenPair
	err  error
}

func (s *stubRefresher) Refresh(_ string) (*authusecases.TokenPair, error) {
	return s.pair, s.err
}

func newAuthEngine(h *AuthHandler) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/api/v1/auth")
	group.POST("/register", h.Register)
	group.POST("/login", h.Login)
	group.POST("/refresh", h.Refresh)
	group.POST("/logout", h.Logout)
	return engine
}

func testCookieConfig() sharedConfig.CookieConfig {
	return sharedConfig.CookieConfig{Path: "/", SameSite: "Lax"}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets auth cookies on success", func(t *testing.T) {
		loginUC := &stubLoginUC{result: &authusecases.LoginResult{
			User:   authusecases.UserDTO{SID: "user_1", Email: "a@example.com", Role: "user"},
			Tokens: authusecases.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 900},
		}}
		h := NewAuthHandler(&stubRegisterUC{}, loginUC, &stubRefresher{},
			sharedConfig.JWTConfig{AccessExpMinutes: 15, RefreshExpDays: 7}, testCookieConfig(), testLogger())
		engine := newAuthEngine(h)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
			gin.H{"email": "a@example.com", "password": "secret-password"})

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		names := make(map[string]string, len(cookies))
		for _, ck := range cookies {
			names[ck.Name] = ck.Value
		}
		assert.Equal(t, "acc", names["access_token"])
		assert.Equal(t, "ref", names["refresh_token"])
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		loginUC := &stubLoginUC{err: apperrors.NewUnauthorizedError("invalid email or password")}
		h := NewAuthHandler(&stubRegisterUC{}, loginUC, &stubRefresher{},
			sharedConfig.JWTConfig{}, testCookieConfig(), testLogger())
		engine := newAuthEngine(h)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
			gin.H{"email": "a@example.com", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("malformed email rejected at binding", func(t *testing.T) {
		h := NewAuthHandler(&stubRegisterUC{}, &stubLoginUC{}, &stubRefresher{},
			sharedConfig.JWTConfig{}, testCookieConfig(), testLogger())
		engine := newAuthEngine(h)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
			gin.H{"email": "not-an-email", "password": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("requires refresh cookie", func(t *testing.T) {
		h := NewAuthHandler(&stubRegisterUC{}, &stubLoginUC{}, &stubRefresher{},
			sharedConfig.JWTConfig{}, testCookieConfig(), testLogger())
		engine := newAuthEngine(h)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/refresh", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("reissues cookies from refresh token", func(t *testing.T) {
		refresher := &stubRefresher{pair: &authusecases.TokenPair{AccessToken: "acc2", RefreshToken: "ref2", ExpiresIn: 900}}
		h := NewAuthHandler(&stubRegisterUC{}, &stubLoginUC{}, refresher,
			sharedConfig.JWTConfig{AccessExpMinutes: 15, RefreshExpDays: 7}, testCookieConfig(), testLogger())
		engine := newAuthEngine(h)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "ref"})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var accessSeen bool
		for _, ck := range w.Result().Cookies() {
			if ck.Name == "access_token" && ck.Value == "acc2" {
				accessSeen = true
			}
		}
		assert.True(t, accessSeen)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns created user", func(t *testing.T) {
		registerUC := &stubRegisterUC{dto: &authusecases.UserDTO{SID: "user_1", Email: "a@example.com", Role: "user"}}
		h := NewAuthHandler(registerUC, &stubLoginUC{}, &stubRefresher{},
			sharedConfig.JWTConfig{}, testCookieConfig(), testLogger())
		engine := newAuthEngine(h)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register",
			gin.H{"email": "a@example.com", "password": "secret-password"})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		registerUC := &stubRegisterUC{err: apperrors.NewConflictError("email already registered")}
		h := NewAuthHandler(registerUC, &stubLoginUC{}, &stubRefresher{},
			sharedConfig.JWTConfig{}, testCookieConfig(), testLogger())
		engine := newAuthEngine(h)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register",
			gin.H{"email": "a@example.com", "password": "secret-password"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPlanHandler_ListPlans(t *testing.T) {
	listUC := &stubListPlansUC{plans: []subusecases.PlanDTO{
		{Tier: "basic", MonthlyQuota: 10},
		{Tier: "pro", MonthlyQuota: 50},
	}}
	engine := gin.New()
	engine.GET("/api/v1/plans", NewPlanHandler(listUC).ListPlans)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/plans", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	plans := data["plans"].([]any)
	assert.Len(t, plans, 2)
}

type stubListPlansUC struct {
	plans []subusecases.PlanDTO
}

func (s *stubListPlansUC) Execute(_ context.Context) []subusecases.PlanDTO {
	return s.plans
}
