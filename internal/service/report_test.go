package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	geomocks "github.com/sentinel-dakar/flood_reporting_system/internal/geocoding/mocks"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service/mocks"
	webhookmocks "github.com/sentinel-dakar/flood_reporting_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportService(t *testing.T) (service.ReportService, *mocks.MockReportRepository, *geomocks.MockResolver, *webhookmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	geocoderMock := geomocks.NewMockResolver(ctrl)
	publisherMock := webhookmocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewReportService(repoMock, geocoderMock, publisherMock, logger)
	return svc, repoMock, geocoderMock, publisherMock
}

func TestSubmitReport_ParseableCoordinatesSkipGeocoder(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
			assert.InDelta(t, 14.6928, loc.Latitude, 1e-9)
			assert.InDelta(t, -17.4467, loc.Longitude, 1e-9)
			assert.Equal(t, "14.6928,-17.4467", loc.Name)
			loc.ID = uuid.New()
			alert.ID = uuid.New()
			report.ID = uuid.New()
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description:  "Rue inondée",
		LocationText: "14.6928,-17.4467",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.ReportID)
	assert.NotEqual(t, uuid.Nil, result.AlertID)
}

func TestSubmitReport_GeocoderFallback(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().
		Resolve(gomock.Any(), "Médina").
		Return(geo.Coordinates{Latitude: 14.676, Longitude: -17.451}, true).
		Times(1)
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
			assert.Equal(t, "Médina", loc.Name)
			assert.InDelta(t, 14.676, loc.Latitude, 1e-9)
			assert.InDelta(t, -17.451, loc.Longitude, 1e-9)
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description:  "Eau stagnante",
		LocationText: "Médina",
	})

	require.NoError(t, err)
}

func TestSubmitReport_UnresolvedFallsBackToNeutral(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().
		Resolve(gomock.Any(), "Plateau").
		Return(geo.Coordinates{}, false).
		Times(1)
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
			assert.Equal(t, "Plateau", loc.Name)
			assert.Equal(t, 0.0, loc.Latitude)
			assert.Equal(t, 0.0, loc.Longitude)
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description:  "Inondation",
		LocationText: "Plateau",
	})

	require.NoError(t, err)
}

func TestSubmitReport_EmptyLocationSkipsGeocoder(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
			assert.Equal(t, "Zone non précisée", loc.Name)
			assert.Equal(t, 0.0, loc.Latitude)
			assert.Equal(t, 0.0, loc.Longitude)
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description: "Inondation sans localisation",
	})

	require.NoError(t, err)
}

func TestSubmitReport_EmptyDescription(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description: "   ",
	})

	assert.ErrorIs(t, err, service.ErrDescriptionRequired)
}

func TestSubmitReport_SeverityMapping(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(geo.Coordinates{}, false).AnyTimes()
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
			assert.Equal(t, models.LevelHigh, alert.Level)
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description: "Montée rapide des eaux",
		Severity:    "  HIGH  ",
	})

	require.NoError(t, err)
	assert.Equal(t, models.LevelHigh, result.Level)
}

func TestSubmitReport_MessageComposition(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(geo.Coordinates{}, false).AnyTimes()
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
			assert.Equal(t, "Rue inondée\n\nType: inondation\nContact: Awa Diop\nTéléphone: 771234567", alert.Message)
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description:  "Rue inondée",
		IncidentType: "inondation",
		FirstName:    "Awa",
		LastName:     "Diop",
		Phone:        "771234567",
	})

	require.NoError(t, err)
}

func TestSubmitReport_MessageWithoutDetails(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(geo.Coordinates{}, false).AnyTimes()
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
			assert.Equal(t, "Rue inondée", alert.Message)
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description: "Rue inondée",
	})

	require.NoError(t, err)
}

func TestSubmitReport_PublisherFailureDoesNotFail(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(geo.Coordinates{}, false).AnyTimes()
	repoMock.EXPECT().CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description: "Inondation",
	})

	require.NoError(t, err)
}

func TestSubmitReport_RepositoryFailure(t *testing.T) {
	svc, repoMock, geocoderMock, publisherMock := newTestReportService(t)

	geocoderMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(geo.Coordinates{}, false).AnyTimes()
	repoMock.EXPECT().
		CreateReportGraph(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("db error")).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SubmitReport(context.Background(), service.SubmitReportInput{
		Description: "Inondation",
	})

	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	svc, repoMock, _, _ := newTestReportService(t)

	repoMock.EXPECT().
		CountReportsByStatus(gomock.Any()).
		Return(map[models.ReportStatus]int{
			models.StatusPending:  3,
			models.StatusVerified: 2,
			models.StatusResolved: 1,
		}, nil).
		Times(1)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 2, stats.Verified)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 6, stats.Total)
}
