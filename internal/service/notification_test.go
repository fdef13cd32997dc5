package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/push"
	pushmocks "github.com/sentinel-dakar/flood_reporting_system/internal/push/mocks"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service/mocks"
	webhookmocks "github.com/sentinel-dakar/flood_reporting_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notificationMocks struct {
	subs      *mocks.MockSubscriptionRepository
	reports   *mocks.MockReportRepository
	alerts    *mocks.MockAlertRepository
	sender    *pushmocks.MockSender
	publisher *webhookmocks.MockPublisher
}

func newTestNotificationService(t *testing.T, opts service.NotificationServiceOptions) (service.NotificationService, notificationMocks) {
	ctrl := gomock.NewController(t)
	m := notificationMocks{
		subs:      mocks.NewMockSubscriptionRepository(ctrl),
		reports:   mocks.NewMockReportRepository(ctrl),
		alerts:    mocks.NewMockAlertRepository(ctrl),
		sender:    pushmocks.NewMockSender(ctrl),
		publisher: webhookmocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewNotificationService(m.subs, m.reports, m.alerts, m.sender, m.publisher, logger, opts)
	return svc, m
}

func locatedSub(id int64, lat, lng float64) *models.PushSubscription {
	return &models.PushSubscription{
		ID:        id,
		Endpoint:  "https://push.example.test/" + uuid.NewString(),
		P256dh:    "p256dh-key",
		Auth:      "auth-key",
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func TestBroadcastTest_PrunesGoneSubscriptions(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{})

	subs := []*models.PushSubscription{
		{ID: 1, Endpoint: "https://push.example.test/a"},
		{ID: 2, Endpoint: "https://push.example.test/b"},
		{ID: 3, Endpoint: "https://push.example.test/c"},
	}
	m.subs.EXPECT().ListAll(gomock.Any()).Return(subs, nil).Times(1)
	m.sender.EXPECT().Send(gomock.Any(), subs[0], gomock.Any()).Return(nil).Times(1)
	m.sender.EXPECT().Send(gomock.Any(), subs[1], gomock.Any()).Return(push.ErrSubscriptionGone).Times(1)
	m.sender.EXPECT().Send(gomock.Any(), subs[2], gomock.Any()).Return(nil).Times(1)
	m.subs.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil).Times(1)

	result, err := svc.BroadcastTest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Removed)
}

func TestBroadcastTest_PayloadContents(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{})

	subs := []*models.PushSubscription{{ID: 1, Endpoint: "https://push.example.test/a"}}
	m.subs.EXPECT().ListAll(gomock.Any()).Return(subs, nil).Times(1)
	m.sender.EXPECT().
		Send(gomock.Any(), subs[0], gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.PushSubscription, payload []byte) error {
			var decoded map[string]string
			require.NoError(t, json.Unmarshal(payload, &decoded))
			assert.Equal(t, "Test Sentinel Dakar", decoded["title"])
			assert.Equal(t, "Notification de test", decoded["body"])
			assert.Equal(t, "/alertes", decoded["url"])
			return nil
		}).Times(1)

	_, err := svc.BroadcastTest(context.Background())
	require.NoError(t, err)
}

func TestBroadcastTest_DeliveryFailureSkipsSubscription(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{})

	subs := []*models.PushSubscription{
		{ID: 1, Endpoint: "https://push.example.test/a"},
		{ID: 2, Endpoint: "https://push.example.test/b"},
	}
	m.subs.EXPECT().ListAll(gomock.Any()).Return(subs, nil).Times(1)
	m.sender.EXPECT().Send(gomock.Any(), subs[0], gomock.Any()).Return(errors.New("push service 500")).Times(1)
	m.sender.EXPECT().Send(gomock.Any(), subs[1], gomock.Any()).Return(nil).Times(1)

	result, err := svc.BroadcastTest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Removed)
}

func TestAlertArea_RadiusFiltering(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{DefaultRadiusKm: 1.5})

	reportID := uuid.New()
	ref := geo.Coordinates{Latitude: 14.6928, Longitude: -17.4467}
	near := locatedSub(1, ref.Latitude+0.012591, ref.Longitude) // ~1.4 km
	far := locatedSub(2, ref.Latitude+0.014389, ref.Longitude)  // ~1.6 km

	m.reports.EXPECT().ReportCoordinates(gomock.Any(), reportID).Return(ref, nil).Times(1)
	m.subs.EXPECT().ListLocated(gomock.Any()).Return([]*models.PushSubscription{near, far}, nil).Times(1)
	m.sender.EXPECT().Send(gomock.Any(), near, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.AlertArea(context.Background(), service.AlertAreaInput{ReportID: &reportID})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Removed)
}

func TestAlertArea_DefaultPayload(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{DefaultRadiusKm: 1.5})

	reportID := uuid.New()
	ref := geo.Coordinates{Latitude: 14.6928, Longitude: -17.4467}
	sub := locatedSub(1, ref.Latitude, ref.Longitude)

	m.reports.EXPECT().ReportCoordinates(gomock.Any(), reportID).Return(ref, nil).Times(1)
	m.subs.EXPECT().ListLocated(gomock.Any()).Return([]*models.PushSubscription{sub}, nil).Times(1)
	m.sender.EXPECT().
		Send(gomock.Any(), sub, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.PushSubscription, payload []byte) error {
			var decoded map[string]string
			require.NoError(t, json.Unmarshal(payload, &decoded))
			assert.Equal(t, "Alerte Inondation", decoded["title"])
			assert.Equal(t, "Risque élevé dans votre zone. Restez vigilants.", decoded["body"])
			assert.Equal(t, "/alertes", decoded["url"])
			return nil
		}).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.AlertArea(context.Background(), service.AlertAreaInput{ReportID: &reportID})
	require.NoError(t, err)
}

func TestAlertArea_AlertFallbackForReference(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{DefaultRadiusKm: 1.5})

	reportID := uuid.New()
	alertID := uuid.New()
	ref := geo.Coordinates{Latitude: 14.6928, Longitude: -17.4467}

	m.reports.EXPECT().ReportCoordinates(gomock.Any(), reportID).Return(geo.Coordinates{}, errors.New("not found")).Times(1)
	m.alerts.EXPECT().AlertCoordinates(gomock.Any(), alertID).Return(ref, nil).Times(1)
	m.subs.EXPECT().ListLocated(gomock.Any()).Return(nil, nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.AlertArea(context.Background(), service.AlertAreaInput{ReportID: &reportID, AlertID: &alertID})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
}

func TestAlertArea_NoReferenceLocation(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{DefaultRadiusKm: 1.5})

	m.subs.EXPECT().ListLocated(gomock.Any()).Times(0)
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AlertArea(context.Background(), service.AlertAreaInput{})

	assert.ErrorIs(t, err, service.ErrNoReferenceLocation)
}

func TestValidateReport_MarksVerifiedAndBroadcasts(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{})

	reportID := uuid.New()
	subs := []*models.PushSubscription{{ID: 1, Endpoint: "https://push.example.test/a"}}

	m.reports.EXPECT().UpdateReportStatus(gomock.Any(), reportID, models.StatusVerified).Return(nil).Times(1)
	m.subs.EXPECT().ListAll(gomock.Any()).Return(subs, nil).Times(1)
	m.sender.EXPECT().
		Send(gomock.Any(), subs[0], gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.PushSubscription, payload []byte) error {
			var decoded map[string]string
			require.NoError(t, json.Unmarshal(payload, &decoded))
			assert.Equal(t, "Alerte validée", decoded["title"])
			assert.Contains(t, decoded["body"], reportID.String())
			return nil
		}).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.ValidateReport(context.Background(), reportID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestValidateReport_UnknownReport(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{})

	reportID := uuid.New()
	m.reports.EXPECT().UpdateReportStatus(gomock.Any(), reportID, models.StatusVerified).Return(errors.New("report not found")).Times(1)
	m.subs.EXPECT().ListAll(gomock.Any()).Times(0)

	_, err := svc.ValidateReport(context.Background(), reportID)

	assert.Error(t, err)
}

func TestUpdatePresence_MatchesUserDevices(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{PresenceMatchUser: true})

	userID := uuid.New()
	m.subs.EXPECT().
		UpdatePresence(gomock.Any(), "https://push.example.test/a", &userID, 14.7, -17.4, "Médina").
		Return(int64(2), nil).
		Times(1)

	updated, err := svc.UpdatePresence(context.Background(), service.PresenceInput{
		Endpoint:  "https://push.example.test/a",
		Latitude:  14.7,
		Longitude: -17.4,
		Locality:  "Médina",
		UserID:    &userID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
}

func TestUpdatePresence_EndpointOnlyWhenDisabled(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{PresenceMatchUser: false})

	userID := uuid.New()
	m.subs.EXPECT().
		UpdatePresence(gomock.Any(), "https://push.example.test/a", nil, 14.7, -17.4, "").
		Return(int64(1), nil).
		Times(1)

	updated, err := svc.UpdatePresence(context.Background(), service.PresenceInput{
		Endpoint:  "https://push.example.test/a",
		Latitude:  14.7,
		Longitude: -17.4,
		UserID:    &userID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestSubscribe_Upserts(t *testing.T) {
	svc, m := newTestNotificationService(t, service.NotificationServiceOptions{})

	m.subs.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub *models.PushSubscription) error {
			assert.Equal(t, "https://push.example.test/a", sub.Endpoint)
			assert.Equal(t, "p256dh-key", sub.P256dh)
			assert.Equal(t, "auth-key", sub.Auth)
			sub.ID = 7
			return nil
		}).Times(1)

	sub, err := svc.Subscribe(context.Background(), service.SubscribeInput{
		Endpoint: "https://push.example.test/a",
		P256dh:   "p256dh-key",
		Auth:     "auth-key",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), sub.ID)
}

func TestPublicKey(t *testing.T) {
	svc, _ := newTestNotificationService(t, service.NotificationServiceOptions{VAPIDPublicKey: "BPublicKey"})

	assert.Equal(t, "BPublicKey", svc.PublicKey())
}
