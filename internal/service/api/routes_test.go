package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	"github.com/darkkaiser/dnf-profile-server/internal/pkg/version"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/handler/profile"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/handler/system"
	browsermocks "github.com/darkkaiser/dnf-profile-server/internal/service/browser/mocks"
	"github.com/darkkaiser/dnf-profile-server/internal/service/notification/mocks"
	"github.com/darkkaiser/dnf-profile-server/internal/service/probe"
	profilesvc "github.com/darkkaiser/dnf-profile-server/internal/service/profile"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fakeProbe struct{}

func (fakeProbe) Enabled() bool        { return false }
func (fakeProbe) Status() probe.Status { return probe.Status{} }

func newTestAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Browser: config.BrowserConfig{
			NavigationTimeout: time.Second,
			ReadyTimeout:      time.Second,
			RequestTimeout:    2 * time.Second,
		},
		Sites: config.SitesConfig{
			Dundam: config.DundamConfig{
				BaseURL:       "https://dundam.xyz/character",
				ReadySelector: "#content-container",
				Damage:        []config.SelectorCandidate{{Selector: ".total", Kind: config.KindTotalDamage}},
			},
			TaechoChannel: config.CaptureSiteConfig{
				URL:             "https://dfgear.xyz/taecho/channel",
				ReadySelector:   "#channel-board",
				CaptureSelector: "#channel-board",
			},
		},
		API: config.APIConfig{
			CORS: config.CORSConfig{AllowOrigins: []string{"*"}},
		},
	}
}

func newRoutedEcho(t *testing.T, launcher *browsermocks.MockLauncher) *echo.Echo {
	t.Helper()

	sender := mocks.NewMockSender()
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	RegisterRoutes(e,
		system.NewHandler(sender, fakeProbe{}, version.Info{Version: "v1.0.0"}),
		profile.NewHandler(profilesvc.NewService(newTestAppConfig(), launcher), sender),
	)

	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := newRoutedEcho(t, browsermocks.NewMockLauncher(browsermocks.Page{}))

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, path := range []string{
		"/",
		"/health",
		"/version",
		"/swagger/*",
		"/api/dunam",
		"/api/dfgear",
		"/api/taecho",
		"/api/adventure-stat",
		"/api/taecho-channel-image",
	} {
		assert.True(t, registered[http.MethodGet+" "+path], path)
	}
}

func TestRoutes_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("생존 확인", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		newRoutedEcho(t, browsermocks.NewMockLauncher(browsermocks.Page{})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constants.MsgLiveness, rec.Body.String())
	})

	t.Run("딜량 조회", func(t *testing.T) {
		t.Parallel()

		launcher := browsermocks.NewMockLauncher(browsermocks.Page{HTML: `<div class="total">123,456,789</div>`})
		rec := httptest.NewRecorder()
		newRoutedEcho(t, launcher).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dunam?server=cain&characterId=abc", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gjson.Get(rec.Body.String(), "success").Bool())
		assert.EqualValues(t, 123456789, gjson.Get(rec.Body.String(), "number").Uint())
		assert.EqualValues(t, 0, launcher.Active())
	})

	t.Run("채널 현황 캡처", func(t *testing.T) {
		t.Parallel()

		launcher := browsermocks.NewMockLauncher(browsermocks.Page{})
		rec := httptest.NewRecorder()
		newRoutedEcho(t, launcher).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/taecho-channel-image", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, browsermocks.PNGSignature, rec.Body.Bytes())
	})

	t.Run("Swagger 문서", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		newRoutedEcho(t, browsermocks.NewMockLauncher(browsermocks.Page{})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, gjson.Get(rec.Body.String(), "paths").Map(), "/api/dunam")
	})
}
