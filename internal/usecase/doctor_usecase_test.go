package usecase

import (
	"context"
	"testing"

	"hospital-appointment/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorUsecase(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := &fakeDoctorRepo{doctors: map[int]*entity.Doctor{
		1: {ID: 1, FirstName: "Ayse", LastName: "Kaya", IsActive: true, Specialization: entity.Specialization{ID: 3, Name: "Cardiology"}},
		2: {ID: 2, FirstName: "Mehmet", LastName: "Demir", IsActive: false},
	}}
	uc := NewDoctorUsecase(db, newTestLogger(), repo)
	ctx := context.Background()

	list, err := uc.GetAll(ctx, &entity.DoctorFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Cardiology", list.Doctors[0].Specialization)

	doctor, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ayse", doctor.FirstName)

	_, err = uc.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
