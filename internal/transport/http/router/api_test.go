package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staynest/internal/core/auth"
	"staynest/internal/domain"
	"staynest/internal/transport/http/router"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Listing{},
		&domain.Booking{},
		&domain.Review{},
	))

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "staynest-test", TTL: time.Hour}
	return router.NewAPIEngine(zap.NewNop(), db, jwter, nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func signup(t *testing.T, r *gin.Engine, name, email string) (token, userID string) {
	t.Helper()
	w, out := doJSON(t, r, http.MethodPost, "/api/auth/signup", "",
		fmt.Sprintf(`{"name":%q,"email":%q,"password":"supersafe"}`, name, email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token = out["token"].(string)
	userID = out["user"].(map[string]any)["id"].(string)
	return token, userID
}

func TestSignupLoginFlow(t *testing.T) {
	r := newTestEngine(t)

	token, _ := signup(t, r, "Alice", "alice@example.com")
	require.NotEmpty(t, token)

	// 重复注册
	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/signup", "",
		`{"name":"Alice","email":"alice@example.com","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"supersafe"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	wBadPw, badPw := doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"nope"}`)
	wNoUser, noUser := doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"ghost@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, wBadPw.Code)
	assert.Equal(t, http.StatusBadRequest, wNoUser.Code)
	assert.Equal(t, badPw["message"], noUser["message"], "login failures must be indistinguishable")
}

func TestAuthMiddlewareStatuses(t *testing.T) {
	r := newTestEngine(t)

	// 无凭证 401
	w, _ := doJSON(t, r, http.MethodGet, "/api/listings", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 坏凭证 403
	w, _ = doJSON(t, r, http.MethodGet, "/api/listings", "garbage.token.here", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

const listingBody = `{
	"title": "Sea view house",
	"description": "House with a view",
	"location": "Porto",
	"price": 189,
	"type": "house",
	"images": ["https://img.example/a.jpg"],
	"availableFrom": "2024-01-01T00:00:00Z",
	"availableTo": "2024-03-01T00:00:00Z"
}`

func TestListingLifecycleOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	ownerTok, ownerID := signup(t, r, "Helen", "helen@example.com")
	strangerTok, _ := signup(t, r, "Mallory", "mallory@example.com")

	w, created := doJSON(t, r, http.MethodPost, "/api/listings", ownerTok, listingBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := created["id"].(string)
	assert.Equal(t, ownerID, created["owner"])

	// 公共读
	w, got := doJSON(t, r, http.MethodGet, "/api/listings/"+id, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sea view house", got["title"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/listings/zz-not-an-id", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/listings/64a1b2c3d4e5f60718293a4b", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 他人改删 → 403
	w, _ = doJSON(t, r, http.MethodPut, "/api/listings/"+id, strangerTok, listingBody)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(t, r, http.MethodDelete, "/api/listings/"+id, strangerTok, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 搜索命中
	w, res := doJSON(t, r, http.MethodGet, "/api/listings/search?type=house&minPrice=100&maxPrice=200", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, res["listings"], 1)

	w, res = doJSON(t, r, http.MethodGet, "/api/listings/search?type=apartment", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, res["listings"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/listings/"+id, ownerTok, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingConflictOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	ownerTok, ownerID := signup(t, r, "Helen", "helen@example.com")
	guestTok, _ := signup(t, r, "Gary", "gary@example.com")
	otherTok, _ := signup(t, r, "Olive", "olive@example.com")

	w, created := doJSON(t, r, http.MethodPost, "/api/listings", ownerTok, listingBody)
	require.Equal(t, http.StatusCreated, w.Code)
	listingID := created["id"].(string)

	book := fmt.Sprintf(`{"listingId":%q,"dates":{"from":"2024-02-01T00:00:00Z","to":"2024-02-05T00:00:00Z"},"totalPrice":500,"guests":2}`, listingID)
	w, booking := doJSON(t, r, http.MethodPost, "/api/bookings", guestTok, book)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, ownerID, booking["hostId"])
	bookingID := booking["id"].(string)

	// 重叠 → 409
	w, _ = doJSON(t, r, http.MethodPost, "/api/bookings", otherTok, book)
	assert.Equal(t, http.StatusConflict, w.Code)

	// 他人删除 → 403
	w, _ = doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, otherTok, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 本人分页列表
	w, mine := doJSON(t, r, http.MethodGet, "/api/bookings?page=1&limit=10", guestTok, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, mine["bookings"], 1)
	p := mine["pagination"].(map[string]any)
	assert.EqualValues(t, 1, p["total"])
}

func TestReviewFlowOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	ownerTok, _ := signup(t, r, "Helen", "helen@example.com")
	authorTok, _ := signup(t, r, "Rita", "rita@example.com")

	w, created := doJSON(t, r, http.MethodPost, "/api/listings", ownerTok, listingBody)
	require.Equal(t, http.StatusCreated, w.Code)
	listingID := created["id"].(string)

	body := fmt.Sprintf(`{"title":"Great stay","comment":"Spotless","rating":5,"listingId":%q}`, listingID)
	w, review := doJSON(t, r, http.MethodPost, "/api/reviews", authorTok, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	bad := fmt.Sprintf(`{"title":"x","comment":"y","rating":7,"listingId":%q}`, listingID)
	w, _ = doJSON(t, r, http.MethodPost, "/api/reviews", authorTok, bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, list := doJSON(t, r, http.MethodGet, "/api/reviews?listingId="+listingID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, list["reviews"], 1)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/reviews/"+review["id"].(string), ownerTok, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
