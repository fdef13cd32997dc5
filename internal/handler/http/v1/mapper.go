package v1

import (
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/storage"
)

// ModelToUserResponse maps an account to its public profile.
func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsStaff,
	}
}

// ModelToAlertResponse maps an alert to its API shape.
func ModelToAlertResponse(alert *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:         alert.ID,
		LocationID: alert.LocationID,
		Level:      string(alert.Level),
		Message:    alert.Message,
		CreatedAt:  alert.CreatedAt,
	}
}

// ModelsToAlertResponses maps a slice of alerts.
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// ModelToReportResponse maps a report, resolving photo paths to absolute URLs.
func ModelToReportResponse(report *models.Report, media storage.MediaStore) *ReportResponse {
	resp := &ReportResponse{
		ID:           report.ID,
		LocationID:   report.LocationID,
		AlerteID:     report.AlertID,
		Status:       string(report.Status),
		IncidentType: report.IncidentType,
		LocationText: report.LocationText,
		Severity:     report.Severity,
		Description:  report.Description,
		FirstName:    report.FirstName,
		LastName:     report.LastName,
		Phone:        report.Phone,
		CreatedAt:    report.CreatedAt,
	}
	for _, photo := range report.Photos {
		resp.Photos = append(resp.Photos, media.AbsoluteURL(photo.FilePath))
	}
	return resp
}

// ModelsToReportResponses maps a slice of reports.
func ModelsToReportResponses(reports []*models.Report, media storage.MediaStore) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToReportResponse(report, media)
	}
	return responses
}

// ModelToDamageResponse maps a damage declaration.
func ModelToDamageResponse(damage *models.DamageDeclaration, media storage.MediaStore) *DamageResponse {
	resp := &DamageResponse{
		ID:              damage.ID,
		PropertyType:    damage.PropertyType,
		LossAmountText:  damage.LossAmountText,
		LossDescription: damage.LossDescription,
		PeopleAffected:  damage.PeopleAffected,
		Remarks:         damage.Remarks,
		CreatedAt:       damage.CreatedAt,
	}
	for _, piece := range damage.Pieces {
		resp.Pieces = append(resp.Pieces, media.AbsoluteURL(piece.FilePath))
	}
	return resp
}

// ModelsToDamageResponses maps a slice of damage declarations.
func ModelsToDamageResponses(declarations []*models.DamageDeclaration, media storage.MediaStore) []*DamageResponse {
	responses := make([]*DamageResponse, len(declarations))
	for i, damage := range declarations {
		responses[i] = ModelToDamageResponse(damage, media)
	}
	return responses
}

// ModelToAssistanceResponse maps an assistance request.
func ModelToAssistanceResponse(request *models.AssistanceRequest) *AssistanceResponse {
	return &AssistanceResponse{
		ID:           request.ID,
		LocationText: request.LocationText,
		HelpType:     request.HelpType,
		PeopleCount:  request.PeopleCount,
		Phone:        request.Phone,
		Availability: request.Availability,
		UrgencyNote:  request.UrgencyNote,
		CreatedAt:    request.CreatedAt,
	}
}

// ModelsToAssistanceResponses maps a slice of assistance requests.
func ModelsToAssistanceResponses(requests []*models.AssistanceRequest) []*AssistanceResponse {
	responses := make([]*AssistanceResponse, len(requests))
	for i, request := range requests {
		responses[i] = ModelToAssistanceResponse(request)
	}
	return responses
}

// ModelToSensorResponse maps a sensor.
func ModelToSensorResponse(sensor *models.Sensor) *SensorResponse {
	return &SensorResponse{
		ID:         sensor.ID,
		Code:       sensor.Code,
		LocationID: sensor.LocationID,
		SensorType: sensor.SensorType,
		CreatedAt:  sensor.CreatedAt,
	}
}

// ModelsToSensorResponses maps a slice of sensors.
func ModelsToSensorResponses(sensors []*models.Sensor) []*SensorResponse {
	responses := make([]*SensorResponse, len(sensors))
	for i, sensor := range sensors {
		responses[i] = ModelToSensorResponse(sensor)
	}
	return responses
}

// ModelToMeasurementResponse maps a sensor reading.
func ModelToMeasurementResponse(m *models.Measurement) *MeasurementResponse {
	return &MeasurementResponse{
		ID:         m.ID,
		SensorID:   m.SensorID,
		Value:      m.Value,
		Unit:       m.Unit,
		RecordedAt: m.RecordedAt,
	}
}

// ModelsToMeasurementResponses maps a slice of sensor readings.
func ModelsToMeasurementResponses(measurements []*models.Measurement) []*MeasurementResponse {
	responses := make([]*MeasurementResponse, len(measurements))
	for i, m := range measurements {
		responses[i] = ModelToMeasurementResponse(m)
	}
	return responses
}
