package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/campusapps/studentdir/internal/data"
	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/mocks"
)

func TestDirectoryService_ListStudents_OrderedWithIndexes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStudentRepository(ctrl)
	repo.EXPECT().ListOrderedByName(gomock.Any()).Return([]*model.StudentProfile{
		{ID: "u2", Name: "Ana", NIM: "002"},
		{ID: "u1", Name: "Budi", NIM: "001"},
		{ID: "u3", Name: "Citra", NIM: "003"},
	}, nil)

	svc := NewDirectoryService(DirectoryServiceOptions{Students: repo})

	listing, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, listing.Total)
	require.Len(t, listing.Students, 3)

	// Display indexes are 1-based and follow the repository order.
	assert.Equal(t, 1, listing.Students[0].Index)
	assert.Equal(t, "Ana", listing.Students[0].Name)
	assert.Equal(t, 2, listing.Students[1].Index)
	assert.Equal(t, "Budi", listing.Students[1].Name)
	assert.Equal(t, 3, listing.Students[2].Index)
	assert.Equal(t, "Citra", listing.Students[2].Name)
}

func TestDirectoryService_ListStudents_EmptyStoreIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStudentRepository(ctrl)
	repo.EXPECT().ListOrderedByName(gomock.Any()).Return([]*model.StudentProfile{}, nil)

	svc := NewDirectoryService(DirectoryServiceOptions{Students: repo})

	listing, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, listing.Total)
	assert.Empty(t, listing.Students)
}

func TestDirectoryService_ListStudents_WrapsFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStudentRepository(ctrl)
	repoErr := errors.New("connection refused")
	repo.EXPECT().ListOrderedByName(gomock.Any()).Return(nil, repoErr)

	svc := NewDirectoryService(DirectoryServiceOptions{Students: repo})

	listing, err := svc.ListStudents(context.Background())
	assert.Nil(t, listing)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorIs(t, err, repoErr)
}

func TestDirectoryService_GetProfile_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStudentRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "u1").Return(&model.StudentProfile{
		ID: "u1", Name: "Ana", NIM: "001", Email: "ana@example.com",
	}, nil)

	svc := NewDirectoryService(DirectoryServiceOptions{Students: repo})

	profile, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ana", profile.Name)
}

func TestDirectoryService_GetProfile_AbsentRecordIsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStudentRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "u-none").Return(nil, data.ErrStudentNotFound)

	svc := NewDirectoryService(DirectoryServiceOptions{Students: repo})

	profile, err := svc.GetProfile(context.Background(), "u-none")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestDirectoryService_GetProfile_WrapsFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStudentRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "u1").Return(nil, errors.New("connection refused"))

	svc := NewDirectoryService(DirectoryServiceOptions{Students: repo})

	profile, err := svc.GetProfile(context.Background(), "u1")
	assert.Nil(t, profile)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
