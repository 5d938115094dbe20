package converter

import (
	"time"

	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/domain/entity"
)

// WorkingHourToResponse converts a WorkingHour entity to WorkingHourResponse DTO
func WorkingHourToResponse(workingHour *entity.WorkingHour) *dto.WorkingHourResponse {
	if workingHour == nil {
		return nil
	}

	return &dto.WorkingHourResponse{
		ID:        workingHour.ID,
		DoctorID:  workingHour.DoctorID,
		DayOfWeek: int(workingHour.DayOfWeek),
		DayName:   workingHour.DayOfWeek.String(),
		StartTime: workingHour.StartTime.String(),
		EndTime:   workingHour.EndTime.String(),
		IsActive:  workingHour.IsActive,
		CreatedAt: workingHour.CreatedAt,
		UpdatedAt: workingHour.UpdatedAt,
	}
}

func WorkingHoursToResponses(workingHours []entity.WorkingHour) []dto.WorkingHourResponse {
	responses := make([]dto.WorkingHourResponse, len(workingHours))
	for i := range workingHours {
		responses[i] = *WorkingHourToResponse(&workingHours[i])
	}
	return responses
}

// AvailabilityBlockToResponse renders block instants in loc
func AvailabilityBlockToResponse(block *entity.AvailabilityBlock, loc *time.Location) *dto.AvailabilityBlockResponse {
	if block == nil {
		return nil
	}

	return &dto.AvailabilityBlockResponse{
		ID:            block.ID,
		DoctorID:      block.DoctorID,
		StartDateTime: block.StartDateTime.In(loc),
		EndDateTime:   block.EndDateTime.In(loc),
		Description:   block.Description,
		Reason:        block.Reason,
		IsActive:      block.IsActive,
		CreatedAt:     block.CreatedAt,
	}
}

func AvailabilityBlocksToResponses(blocks []entity.AvailabilityBlock, loc *time.Location) []dto.AvailabilityBlockResponse {
	responses := make([]dto.AvailabilityBlockResponse, len(blocks))
	for i := range blocks {
		responses[i] = *AvailabilityBlockToResponse(&blocks[i], loc)
	}
	return responses
}
