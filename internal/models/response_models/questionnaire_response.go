package response_models

import (
	"mcstudio/internal/models/db_models"
)

// Notification states for a created questionnaire response. Email delivery
// is best effort: the record is committed either way and the caller decides
// what to do with a failed notification.
const (
	NotificationsSent    = "sent"
	NotificationsFailed  = "failed"
	NotificationsSkipped = "skipped"
)

type QuestionnaireCreatedResponse struct {
	Response      *db_models.QuestionnaireResponse `json:"response"`
	Notifications string                           `json:"notifications"`
}

type QuestionnaireListResponse struct {
	Responses []db_models.QuestionnaireResponse `json:"responses"`
	Page      int                               `json:"page"`
	PageSize  int                               `json:"pageSize"`
}
