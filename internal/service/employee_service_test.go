package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ADITHIYAN008/backend/internal/api/dto"
	"github.com/ADITHIYAN008/backend/internal/domain"
	"github.com/ADITHIYAN008/backend/internal/repository"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

func TestEmployeeCreate(t *testing.T) {
	svc := NewEmployeeService(repository.NewEmployeeStoreWith())

	t.Run("missing required fields", func(t *testing.T) {
		_, err := svc.Create(dto.EmployeeCreateRequest{ID: "EMP010"})
		require.Error(t, err)
		require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	})

	t.Run("create defaults team", func(t *testing.T) {
		user, err := svc.Create(dto.EmployeeCreateRequest{
			ID: "EMP010", Name: "A", Email: "a@tcs.com", Role: "Tester", Status: "Active",
		})
		require.NoError(t, err)
		require.Equal(t, domain.EmployeeDefaultTeam, user.Team)
		require.Equal(t, "Tester", user.Role)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		_, err := svc.Create(dto.EmployeeCreateRequest{ID: "EMP010", Name: "B", Email: "b@tcs.com"})
		require.Error(t, err)
		require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
	})
}

func TestEmployeeUpdate(t *testing.T) {
	svc := NewEmployeeService(repository.NewEmployeeStoreWith(domain.EmployeeUser{
		ID: "EMP010", Name: "A", Email: "a@tcs.com", Role: "Developer",
		Team: "Development", Status: "Active",
	}))

	t.Run("merges only supplied fields", func(t *testing.T) {
		user, err := svc.Update("EMP010", dto.EmployeeUpdateRequest{Status: strptr("Inactive")})
		require.NoError(t, err)
		require.Equal(t, "Inactive", user.Status)
		require.Equal(t, "A", user.Name)
		require.Equal(t, "a@tcs.com", user.Email)
		require.Equal(t, "Developer", user.Role)
	})

	t.Run("unknown id not found", func(t *testing.T) {
		_, err := svc.Update("EMP999", dto.EmployeeUpdateRequest{Status: strptr("Inactive")})
		require.Error(t, err)
		require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
	})
}

func TestEmployeeBulkUpload(t *testing.T) {
	store := repository.NewEmployeeStoreWith(domain.EmployeeUser{
		ID: "EMP001", Name: "Existing", Email: "e@tcs.com",
	})
	svc := NewEmployeeService(store)

	count := svc.BulkUpload([]dto.EmployeeCreateRequest{
		{ID: "EMP001", Name: "Should be skipped", Email: "x@tcs.com"},
		{ID: "EMP010", Name: "New", Email: "n@tcs.com"},
	})

	// count reports entries received, not inserted
	require.Equal(t, 2, count)

	list := store.List()
	require.Len(t, list, 2)
	require.Equal(t, "Existing", list[0].Name)

	added := list[1]
	require.Equal(t, "EMP010", added.ID)
	require.Equal(t, domain.EmployeeDefaultRole, added.Role)
	require.Equal(t, domain.EmployeeDefaultTeam, added.Team)
	require.Equal(t, domain.EmployeeDefaultStatus, added.Status)
}
