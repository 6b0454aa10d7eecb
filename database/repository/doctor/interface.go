package doctorRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

var ErrDuplicateDoctor = errors.New("doctor already exists")

type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (*models.WriteResult, error)
	DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error)
}
