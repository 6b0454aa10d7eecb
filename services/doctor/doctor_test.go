package doctor

import (
	"context"
	"testing"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDoctorRepo struct {
	doctors []models.Doctor
}

func (m *memDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return m.doctors, nil
}

func (m *memDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) (*models.WriteResult, error) {
	for _, d := range m.doctors {
		if d.Email == doctor.Email {
			return nil, doctorRepo.ErrDuplicateDoctor
		}
	}
	m.doctors = append(m.doctors, *doctor)
	return &models.WriteResult{Acknowledged: true, InsertedID: doctor.Email}, nil
}

func (m *memDoctorRepo) DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error) {
	for i, d := range m.doctors {
		if d.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return &models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.WriteResult{Acknowledged: true}, nil
}

func TestDoctorLifecycle(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &memDoctorRepo{}}
	ctx := context.Background()

	_, err := svc.Add(ctx, models.Doctor{Name: "Dr. Who", Email: " who@x.com "})
	require.NoError(t, err)

	_, err = svc.Add(ctx, models.Doctor{Name: "Dr. Who Again", Email: "who@x.com"})
	assert.ErrorIs(t, err, ErrDoctorExists)

	doctors, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "who@x.com", doctors[0].Email)

	result, err := svc.DeleteByEmail(ctx, "who@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	_, err = svc.DeleteByEmail(ctx, "who@x.com")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
