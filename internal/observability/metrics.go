package observability

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SubmissionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcstudio_submissions_created_total",
		Help: "Questionnaire responses persisted successfully.",
	})

	SubmissionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcstudio_submission_failures_total",
		Help: "Questionnaire submissions that failed to persist.",
	})

	EmailSendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcstudio_email_send_failures_total",
		Help: "Notification emails that failed to send.",
	})
)

// MetricsHandler exposes the prometheus registry.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
