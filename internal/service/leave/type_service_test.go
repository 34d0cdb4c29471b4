package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/validator"
)

func TestTypeService_Create(t *testing.T) {
	svc := NewTypeService(newFakeTypeRepo())

	created, err := svc.Create(context.Background(), leave.CreateLeaveTypeRequest{
		Kind:         string(leave.KindAnnual),
		Name:         "Annual leave",
		ApproverRole: string(leave.ApproverManager),
		NoticeDays:   3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.Equal(t, leave.KindAnnual, created.Kind)
}

func TestTypeService_Create_UnknownKind(t *testing.T) {
	svc := NewTypeService(newFakeTypeRepo())

	_, err := svc.Create(context.Background(), leave.CreateLeaveTypeRequest{
		Kind:         "sabbatical",
		Name:         "Sabbatical",
		ApproverRole: string(leave.ApproverManager),
	})

	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "kind", errs[0].Field)
}

func TestTypeService_List_ActiveOnlyByDefault(t *testing.T) {
	active := annualType()
	retired := annualType()
	retired.ID = "lt-old"
	retired.Active = false

	svc := NewTypeService(newFakeTypeRepo(active, retired))

	visible, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTypeService_Update_Retire(t *testing.T) {
	repo := newFakeTypeRepo(annualType())
	svc := NewTypeService(repo)

	inactive := false
	updated, err := svc.Update(context.Background(), leave.UpdateLeaveTypeRequest{
		ID:     "lt-annual",
		Active: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestTypeService_Update_UnknownType(t *testing.T) {
	svc := NewTypeService(newFakeTypeRepo())

	_, err := svc.Update(context.Background(), leave.UpdateLeaveTypeRequest{ID: "missing"})

	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}
