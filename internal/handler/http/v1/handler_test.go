package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/config"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service/mocks"
	"github.com/sentinel-dakar/flood_reporting_system/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPublicBaseURL = "http://localhost:8080"

type handlerMocks struct {
	auth          *mocks.MockAuthService
	alerts        *mocks.MockAlertService
	reports       *mocks.MockReportService
	relief        *mocks.MockReliefService
	notifications *mocks.MockNotificationService
	sensors       *mocks.MockSensorService
	tokens        *service.TokenManager
}

func newTestHandler(t *testing.T) (*handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		auth:          mocks.NewMockAuthService(ctrl),
		alerts:        mocks.NewMockAlertService(ctrl),
		reports:       mocks.NewMockReportService(ctrl),
		relief:        mocks.NewMockReliefService(ctrl),
		notifications: mocks.NewMockNotificationService(ctrl),
		sensors:       mocks.NewMockSensorService(ctrl),
		tokens:        service.NewTokenManager("test-secret", time.Hour),
	}

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	handler := NewHandler(HandlerDeps{
		AuthService:         m.auth,
		AlertService:        m.alerts,
		ReportService:       m.reports,
		ReliefService:       m.relief,
		NotificationService: m.notifications,
		SensorService:       m.sensors,
		Tokens:              m.tokens,
		Media:               storage.NewDiskMediaStore(t.TempDir(), testPublicBaseURL),
		Logger:              log,
		Config:              &config.Config{},
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(IdentifyMiddleware(m.tokens, log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// bearerFor issues a real token for a fresh user and returns it as a header.
func bearerFor(t *testing.T, tokens *service.TokenManager, user *models.User) map[string]string {
	t.Helper()
	token, err := tokens.Issue(user)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func staffUser() *models.User {
	return &models.User{ID: uuid.New(), Username: "agent", IsStaff: true}
}

func citizenUser() *models.User {
	return &models.User{ID: uuid.New(), Username: "awa"}
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string) (*bytes.Buffer, map[string]string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("file-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, map[string]string{"Content-Type": writer.FormDataContentType()}
}

func TestRegister_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New(), Username: "awa", Email: "awa@example.sn"}

	m.auth.EXPECT().
		Register(gomock.Any(), service.RegisterInput{
			Username: "awa",
			Email:    "awa@example.sn",
			Password: "motdepasse",
		}).
		Return(&service.AuthResult{Token: "signed-token", User: user}, nil).
		Times(1)

	body := `{"username": "awa", "email": "awa@example.sn", "password": "motdepasse"}`
	w := makeRequest(router, "POST", "/api/v1/auth/register", strings.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "awa", resp.User.Username)
}

func TestRegister_UsernameTaken(t *testing.T) {
	m, router := newTestHandler(t)

	m.auth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrUsernameTaken).
		Times(1)

	body := `{"username": "awa", "email": "awa@example.sn", "password": "motdepasse"}`
	w := makeRequest(router, "POST", "/api/v1/auth/register", strings.NewReader(body))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username already taken")
}

func TestRegister_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/auth/register", strings.NewReader(`{"username": "awa"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestRegister_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)

	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	// Password shorter than the minimum.
	body := `{"username": "awa", "email": "awa@example.sn", "password": "court"}`
	w := makeRequest(router, "POST", "/api/v1/auth/register", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := &models.User{ID: uuid.New(), Username: "awa"}

	m.auth.EXPECT().
		Login(gomock.Any(), "awa", "motdepasse").
		Return(&service.AuthResult{Token: "signed-token", User: user}, nil).
		Times(1)

	body := `{"username": "awa", "password": "motdepasse"}`
	w := makeRequest(router, "POST", "/api/v1/auth/login", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	m, router := newTestHandler(t)

	m.auth.EXPECT().
		Login(gomock.Any(), "awa", "mauvais").
		Return(nil, service.ErrInvalidCredentials).
		Times(1)

	body := `{"username": "awa", "password": "mauvais"}`
	w := makeRequest(router, "POST", "/api/v1/auth/login", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "identifiants invalides")
}

func TestIdentify_MalformedHeader(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/alertes", nil, map[string]string{"Authorization": "Token abc"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization header")
}

func TestIdentify_InvalidToken(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/alertes", nil, map[string]string{"Authorization": "Bearer not-a-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestListAlerts_Success(t *testing.T) {
	m, router := newTestHandler(t)
	alert := &models.Alert{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Level:      models.LevelHigh,
		Message:    "Montée des eaux à Médina",
		CreatedAt:  time.Now(),
	}

	m.alerts.EXPECT().
		ListAlerts(gomock.Any(), 1, 20).
		Return([]*models.Alert{alert}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/alertes", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, alert.ID, resp[0].ID)
	assert.Equal(t, "fort", resp[0].Level)
}

func TestGetAlert_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.alerts.EXPECT().GetAlert(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/alertes/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid alert ID")
}

func TestGetAlert_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.alerts.EXPECT().
		GetAlert(gomock.Any(), id).
		Return(nil, errors.New("no rows in result set")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/alertes/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "alert not found")
}

func TestSubmitReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	alertID := uuid.New()

	m.reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.SubmitReportInput) (*service.SubmitReportResult, error) {
			assert.Equal(t, "Rue inondée devant le marché", input.Description)
			assert.Equal(t, "inondation", input.IncidentType)
			assert.Equal(t, "Médina", input.LocationText)
			assert.Equal(t, "high", input.Severity)
			assert.Equal(t, "Awa", input.FirstName)
			require.Len(t, input.PhotoPaths, 1)
			assert.True(t, strings.HasPrefix(input.PhotoPaths[0], "/media/signalements/"))
			return &service.SubmitReportResult{
				ReportID:   reportID,
				AlertID:    alertID,
				Level:      models.LevelHigh,
				PhotoPaths: input.PhotoPaths,
			}, nil
		}).Times(1)

	body, headers := multipartBody(t, map[string]string{
		"description":   "Rue inondée devant le marché",
		"type_incident": "inondation",
		"location":      "Médina",
		"severity":      "high",
		"prenom":        "Awa",
		"nom":           "Diop",
		"phone":         "771234567",
	}, "photos", "rue.jpg")

	w := makeRequest(router, "POST", "/api/v1/signalements", body, headers)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, reportID, resp.SignalementID)
	assert.Equal(t, alertID, resp.AlerteID)
	assert.Equal(t, "fort", resp.Level)
	require.Len(t, resp.Photos, 1)
	assert.True(t, strings.HasPrefix(resp.Photos[0], testPublicBaseURL+"/media/signalements/"))
}

func TestSubmitReport_MissingDescription(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrDescriptionRequired).
		Times(1)

	body, headers := multipartBody(t, map[string]string{"severity": "low"}, "", "")
	w := makeRequest(router, "POST", "/api/v1/signalements", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "description is required")
}

func TestListReports_FilteredByAlertIsPublic(t *testing.T) {
	m, router := newTestHandler(t)
	alertID := uuid.New()

	m.reports.EXPECT().
		ListReports(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter *uuid.UUID) ([]*models.Report, error) {
			require.NotNil(t, filter)
			assert.Equal(t, alertID, *filter)
			return []*models.Report{{ID: uuid.New(), AlertID: filter, Status: models.StatusPending, Description: "Rue inondée"}}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/signalements?alerte_id="+alertID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "pending", resp[0].Status)
}

func TestListReports_InvalidAlertID(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/signalements?alerte_id=not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid alert ID")
}

func TestListReports_UnfilteredRequiresStaff(t *testing.T) {
	m, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/signalements", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "GET", "/api/v1/signalements", nil, bearerFor(t, m.tokens, citizenUser()))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "staff access required")

	m.reports.EXPECT().
		ListReports(gomock.Any(), nil).
		Return([]*models.Report{}, nil).
		Times(1)

	w = makeRequest(router, "GET", "/api/v1/signalements", nil, bearerFor(t, m.tokens, staffUser()))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListMyReports_RequiresAuth(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/signalements/mes", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestListMyReports_Success(t *testing.T) {
	m, router := newTestHandler(t)
	user := citizenUser()

	m.reports.EXPECT().
		ListMyReports(gomock.Any(), user.ID).
		Return([]*models.Report{{ID: uuid.New(), CreatedBy: &user.ID, Status: models.StatusPending, Description: "Cour inondée"}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/signalements/mes", nil, bearerFor(t, m.tokens, user))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestValidateReport_StaffOnly(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.notifications.EXPECT().ValidateReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/signalements/"+id.String()+"/validate", nil, bearerFor(t, m.tokens, citizenUser()))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestValidateReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.notifications.EXPECT().
		ValidateReport(gomock.Any(), id).
		Return(service.FanoutResult{Sent: 3, Removed: 1}, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/signalements/"+id.String()+"/validate", nil, bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp FanoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 3, resp.Sent)
	assert.Equal(t, 1, resp.Removed)
}

func TestValidateReport_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().ValidateReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/signalements/not-a-uuid/validate", nil, bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.notifications.EXPECT().
		ResolveReport(gomock.Any(), id).
		Return(nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/signalements/"+id.String()+"/resolve", nil, bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestSubmitDamage_MissingPropertyType(t *testing.T) {
	m, router := newTestHandler(t)

	m.relief.EXPECT().SubmitDamage(gomock.Any(), gomock.Any()).Times(0)

	body, headers := multipartBody(t, map[string]string{"remarks": "toit effondré"}, "", "")
	w := makeRequest(router, "POST", "/api/v1/degats", body, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "property_type is required")
}

func TestSubmitDamage_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.relief.EXPECT().
		SubmitDamage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, damage *models.DamageDeclaration) error {
			assert.Equal(t, "maison", damage.PropertyType)
			assert.Equal(t, 4, damage.PeopleAffected)
			require.Len(t, damage.Pieces, 1)
			assert.True(t, strings.HasPrefix(damage.Pieces[0].FilePath, "/media/degats/"))
			damage.ID = uuid.New()
			return nil
		}).Times(1)

	body, headers := multipartBody(t, map[string]string{
		"property_type":   "maison",
		"people_affected": "4",
	}, "pieces", "facture.pdf")

	w := makeRequest(router, "POST", "/api/v1/degats", body, headers)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp DamageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "maison", resp.PropertyType)
	require.Len(t, resp.Pieces, 1)
	assert.True(t, strings.HasPrefix(resp.Pieces[0], testPublicBaseURL+"/media/degats/"))
}

func TestListDamage_StaffOnly(t *testing.T) {
	m, router := newTestHandler(t)

	m.relief.EXPECT().ListDamage(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/degats", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitAssistance_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.relief.EXPECT().
		SubmitAssistance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *models.AssistanceRequest) error {
			assert.Equal(t, "Médina, rue 11", request.LocationText)
			assert.Equal(t, "evacuation", request.HelpType)
			assert.Equal(t, 5, request.PeopleCount)
			request.ID = uuid.New()
			return nil
		}).Times(1)

	body := `{"location": "Médina, rue 11", "help_type": "evacuation", "people_count": 5, "phone": "771234567"}`
	w := makeRequest(router, "POST", "/api/v1/assistance", strings.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AssistanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "evacuation", resp.HelpType)
}

func TestSubmitAssistance_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)

	m.relief.EXPECT().SubmitAssistance(gomock.Any(), gomock.Any()).Times(0)

	// Missing the required phone field.
	body := `{"location": "Médina", "help_type": "evacuation"}`
	w := makeRequest(router, "POST", "/api/v1/assistance", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribe_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().
		Subscribe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.SubscribeInput) (*models.PushSubscription, error) {
			assert.Equal(t, "https://push.example.org/reg/abc", input.Endpoint)
			assert.Equal(t, "p256dh-key", input.P256dh)
			assert.Equal(t, "auth-secret", input.Auth)
			assert.Nil(t, input.UserID)
			return &models.PushSubscription{ID: 1, Endpoint: input.Endpoint}, nil
		}).Times(1)

	body := `{"endpoint": "https://push.example.org/reg/abc", "keys": {"p256dh": "p256dh-key", "auth": "auth-secret"}}`
	w := makeRequest(router, "POST", "/api/v1/notifications/subscribe", strings.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestSubscribe_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Times(0)

	body := `{"endpoint": "https://push.example.org/reg/abc", "keys": {"p256dh": ""}}`
	w := makeRequest(router, "POST", "/api/v1/notifications/subscribe", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePresence_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().
		UpdatePresence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.PresenceInput) (int64, error) {
			assert.Equal(t, "https://push.example.org/reg/abc", input.Endpoint)
			assert.InDelta(t, 14.6928, input.Latitude, 1e-9)
			assert.InDelta(t, -17.4467, input.Longitude, 1e-9)
			assert.Equal(t, "Plateau", input.Locality)
			return 1, nil
		}).Times(1)

	body := `{"endpoint": "https://push.example.org/reg/abc", "lat": 14.6928, "lng": -17.4467, "locality": "Plateau"}`
	w := makeRequest(router, "POST", "/api/v1/notifications/presence", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":1`)
}

func TestAlertAreaPush_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()

	m.notifications.EXPECT().
		AlertArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.AlertAreaInput) (service.FanoutResult, error) {
			require.NotNil(t, input.ReportID)
			assert.Equal(t, reportID, *input.ReportID)
			assert.InDelta(t, 2.5, input.RadiusKm, 1e-9)
			return service.FanoutResult{Sent: 2}, nil
		}).Times(1)

	body := `{"signalement_id": "` + reportID.String() + `", "radius_km": 2.5}`
	w := makeRequest(router, "POST", "/api/v1/notifications/alert-area/push", strings.NewReader(body), bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp FanoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 2, resp.Sent)
}

func TestAlertAreaPush_NoReferenceLocation(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().
		AlertArea(gomock.Any(), gomock.Any()).
		Return(service.FanoutResult{}, service.ErrNoReferenceLocation).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/notifications/alert-area/push", strings.NewReader(`{}`), bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no reference location")
}

func TestAlertAreaPush_StaffOnly(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().AlertArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/notifications/alert-area/push", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTestPush_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().
		BroadcastTest(gomock.Any()).
		Return(service.FanoutResult{Sent: 4, Removed: 1}, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/notifications/test", nil, bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp FanoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Sent)
	assert.Equal(t, 1, resp.Removed)
}

func TestVAPIDPublicKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.notifications.EXPECT().PublicKey().Return("BPublicKey").Times(1)

	w := makeRequest(router, "GET", "/api/v1/notifications/vapid-public-key", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BPublicKey")
}

func TestCreateSensor_StaffOnly(t *testing.T) {
	m, router := newTestHandler(t)

	m.sensors.EXPECT().CreateSensor(gomock.Any(), gomock.Any()).Times(0)

	body := `{"code": "NIV-OUEST-01", "location_id": "` + uuid.NewString() + `", "sensor_type": "water_level"}`
	w := makeRequest(router, "POST", "/api/v1/capteurs", strings.NewReader(body))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSensor_Success(t *testing.T) {
	m, router := newTestHandler(t)
	locationID := uuid.New()

	m.sensors.EXPECT().
		CreateSensor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sensor *models.Sensor) error {
			assert.Equal(t, "NIV-OUEST-01", sensor.Code)
			assert.Equal(t, locationID, sensor.LocationID)
			sensor.ID = uuid.New()
			return nil
		}).Times(1)

	body := `{"code": "NIV-OUEST-01", "location_id": "` + locationID.String() + `", "sensor_type": "water_level"}`
	w := makeRequest(router, "POST", "/api/v1/capteurs", strings.NewReader(body), bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SensorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NIV-OUEST-01", resp.Code)
}

func TestRecordMeasurement_Success(t *testing.T) {
	m, router := newTestHandler(t)
	sensorID := uuid.New()

	m.sensors.EXPECT().
		RecordMeasurement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, measurement *models.Measurement) error {
			assert.Equal(t, sensorID, measurement.SensorID)
			assert.InDelta(t, 1.82, measurement.Value, 1e-9)
			assert.Equal(t, "m", measurement.Unit)
			measurement.ID = 7
			return nil
		}).Times(1)

	body := `{"sensor_id": "` + sensorID.String() + `", "value": 1.82, "unit": "m"}`
	w := makeRequest(router, "POST", "/api/v1/mesures", strings.NewReader(body), bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp MeasurementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
}

func TestGetStats_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().
		Stats(gomock.Any()).
		Return(&service.ReportStats{Pending: 3, Verified: 2, Resolved: 1, Total: 6}, nil).
		Times(1)
	m.notifications.EXPECT().
		SubscriberCount(gomock.Any()).
		Return(12, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, bearerFor(t, m.tokens, staffUser()))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Pending)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 12, resp.Subscriptions)
}

func TestGetStats_RequiresStaff(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().Stats(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/stats", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
