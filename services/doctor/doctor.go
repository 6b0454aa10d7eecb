package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

var (
	ErrDoctorExists   = errors.New("doctor already exists")
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorService interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Add(ctx context.Context, doctor models.Doctor) (*models.WriteResult, error)
	DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) Add(ctx context.Context, doctor models.Doctor) (*models.WriteResult, error) {
	doctor.Email = strings.TrimSpace(doctor.Email)
	result, err := s.Repo.Create(ctx, &doctor)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDuplicateDoctor) {
			return nil, ErrDoctorExists
		}
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	return result, nil
}

func (s *DefaultDoctorService) DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error) {
	result, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to delete doctor: %w", err)
	}
	if result.DeletedCount == 0 {
		return nil, ErrDoctorNotFound
	}
	return result, nil
}
