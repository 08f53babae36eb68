package repositories

import (
	"context"

	"gorm.io/gorm"

	"mcstudio/internal/models/db_models"
)

type QuestionnaireRepositoryInterface interface {
	CreateResponse(ctx context.Context, response *db_models.QuestionnaireResponse) error
	ListResponses(ctx context.Context, page, pageSize int) ([]db_models.QuestionnaireResponse, error)
}

type QuestionnaireRepository struct {
	db *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{db: db}
}

// CreateResponse writes exactly one row. There is no upsert or dedup: a
// resubmission always creates a new record.
func (r *QuestionnaireRepository) CreateResponse(ctx context.Context, response *db_models.QuestionnaireResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *QuestionnaireRepository) ListResponses(ctx context.Context, page, pageSize int) ([]db_models.QuestionnaireResponse, error) {
	var responses []db_models.QuestionnaireResponse
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&responses).Error
	return responses, err
}
