package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"casamento/registry/internal/config"
	"casamento/registry/internal/metrics"
	"casamento/registry/internal/model"
	"casamento/registry/internal/repository"
	"casamento/registry/internal/service"
	jwtpkg "casamento/registry/pkg/jwt"
)

type apiEnv struct {
	router *gin.Engine
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, model.AutoMigrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         time.Hour,
		},
	}

	userRepo := repository.NewPGUserRepository(db)
	listRepo := repository.NewPGWeddingListRepository(db)
	itemRepo := repository.NewPGGiftItemRepository(db)
	reservationRepo := repository.NewPGReservationRepository(db)
	rsvpRepo := repository.NewPGRsvpRepository(db)
	catalogRepo := repository.NewPGCatalogRepository(db)
	stateStore := repository.NewMemoryStateStore()

	jwtManager := jwtpkg.NewManager("test-signing-key", "registry-test", 15*time.Minute, 24*time.Hour)

	authSvc := service.NewAuthService(userRepo, stateStore, jwtManager, 15*time.Minute)
	listSvc := service.NewListService(listRepo, itemRepo)
	reservationSvc := service.NewReservationService(reservationRepo)
	rsvpSvc := service.NewRsvpService(listRepo, rsvpRepo)
	trackingSvc := service.NewTrackingService(listRepo, rsvpRepo)
	guestSvc := service.NewGuestService(listRepo, reservationRepo, rsvpRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)

	router := SetupRouter(
		cfg,
		zap.NewNop(),
		jwtManager,
		metrics.NewCollector(),
		NewAuthHandler(authSvc),
		NewListHandler(listSvc, trackingSvc),
		NewGuestHandler(guestSvc, reservationSvc, rsvpSvc),
		NewCatalogHandler(catalogSvc),
	)
	return &apiEnv{router: router}
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func (e *apiEnv) signupAndLogin(t *testing.T, username, role string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "segredo123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"login":    username,
		"password": "segredo123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeData(t, rec)["access_token"].(string)
}

func TestFullReservationFlow(t *testing.T) {
	env := newAPIEnv(t)
	ownerToken := env.signupAndLogin(t, "casal", "CASAL")
	guestToken := env.signupAndLogin(t, "convidado", "CONVIDADO")

	rec := env.do(t, http.MethodPost, "/api/v1/lists", ownerToken, gin.H{"title": "Nossa Lista"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	list := decodeData(t, rec)
	listID := list["id"].(string)
	link := list["shareable_link"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/lists/"+listID+"/items", ownerToken, gin.H{"name": "Panela"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	itemID := decodeData(t, rec)["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/guest/items/"+itemID+"/reserve", guestToken, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reservationID := decodeData(t, rec)["id"].(string)

	// Second reserve attempt conflicts.
	rec = env.do(t, http.MethodPost, "/api/v1/guest/items/"+itemID+"/reserve", guestToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The shared view flags the caller's own reservation.
	rec = env.do(t, http.MethodGet, "/api/v1/guest/lists/"+link, guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeData(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "reserved", item["status"])
	assert.Equal(t, reservationID, item["my_reservation_id"])

	rec = env.do(t, http.MethodDelete, "/api/v1/guest/reservations/"+reservationID, guestToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/guest/lists/"+link, guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items = decodeData(t, rec)["items"].([]any)
	assert.Equal(t, "available", items[0].(map[string]any)["status"])
}

func TestRotateLinkInvalidatesOldOne(t *testing.T) {
	env := newAPIEnv(t)
	ownerToken := env.signupAndLogin(t, "casal", "CASAL")
	guestToken := env.signupAndLogin(t, "convidado", "CONVIDADO")

	rec := env.do(t, http.MethodPost, "/api/v1/lists", ownerToken, gin.H{"title": "Nossa Lista"})
	require.Equal(t, http.StatusCreated, rec.Code)
	list := decodeData(t, rec)
	listID := list["id"].(string)
	oldLink := list["shareable_link"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/lists/"+listID+"/generate-link", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	newLink := decodeData(t, rec)["shareable_link"].(string)
	require.NotEqual(t, oldLink, newLink)

	rec = env.do(t, http.MethodGet, "/api/v1/guest/lists/"+oldLink, guestToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/guest/lists/"+newLink, guestToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleEnforcement(t *testing.T) {
	env := newAPIEnv(t)
	ownerToken := env.signupAndLogin(t, "casal", "CASAL")
	guestToken := env.signupAndLogin(t, "convidado", "CONVIDADO")

	// A guest cannot create lists.
	rec := env.do(t, http.MethodPost, "/api/v1/lists", guestToken, gin.H{"title": "Invasao"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// An owner cannot use the guest surface.
	rec = env.do(t, http.MethodGet, "/api/v1/guest/me/details", ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No token at all.
	rec = env.do(t, http.MethodPost, "/api/v1/lists", "", gin.H{"title": "Anonimo"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRsvpEndpointUpserts(t *testing.T) {
	env := newAPIEnv(t)
	ownerToken := env.signupAndLogin(t, "casal", "CASAL")
	guestToken := env.signupAndLogin(t, "convidado", "CONVIDADO")

	rec := env.do(t, http.MethodPost, "/api/v1/lists", ownerToken, gin.H{"title": "Nossa Lista"})
	require.Equal(t, http.StatusCreated, rec.Code)
	listID := decodeData(t, rec)["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/guest/rsvps/"+listID, guestToken, gin.H{
		"status":            "confirmed",
		"additional_guests": "Ana, Bruno",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	firstID := decodeData(t, rec)["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/guest/rsvps/"+listID, guestToken, gin.H{"status": "declined"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, firstID, decodeData(t, rec)["id"].(string))

	// The owner's tracking view expands companions from the latest answer.
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/lists/%s/tracking", listID), ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rsvps := decodeData(t, rec)["rsvps"].([]any)
	assert.Len(t, rsvps, 1)
	assert.Equal(t, "declined", rsvps[0].(map[string]any)["status"])
}

func TestHealthzAndMetrics(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registry_http_requests_total")
}
