package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/henkobit/inventario/internal/models"
)

func TestUserDirectoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.User{
		{ID: 2, NombreUsuario: "maria"},
		{ID: 1, NombreUsuario: "admin", EsAdmin: true},
	}

	reader := NewMockUserDirectoryReader(ctrl)
	reader.EXPECT().List(gomock.Any()).Return(users, nil)

	svc := NewUserDirectoryService(reader, NewMockUserDirectoryWriter(ctrl))
	got, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserDirectoryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		usuario   string
		setupMock func(writer *MockUserDirectoryWriter)
		wantID    int64
		wantErr   error
	}{
		{
			name:    "new user",
			usuario: "maria",
			setupMock: func(writer *MockUserDirectoryWriter) {
				writer.EXPECT().Save(gomock.Any(), "maria", false).Return(int64(5), nil)
			},
			wantID: 5,
		},
		{
			name:    "duplicate username",
			usuario: "maria",
			setupMock: func(writer *MockUserDirectoryWriter) {
				writer.EXPECT().Save(gomock.Any(), "maria", false).Return(int64(0), nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name:    "save failure",
			usuario: "maria",
			setupMock: func(writer *MockUserDirectoryWriter) {
				writer.EXPECT().Save(gomock.Any(), "maria", false).Return(int64(0), errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockUserDirectoryWriter(ctrl)
			tt.setupMock(writer)

			svc := NewUserDirectoryService(NewMockUserDirectoryReader(ctrl), writer)
			id, err := svc.Create(context.Background(), tt.usuario)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestUserDirectoryService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		setupMock func(reader *MockUserDirectoryReader, writer *MockUserDirectoryWriter)
		wantErr   error
	}{
		{
			name: "regular user deleted",
			id:   5,
			setupMock: func(reader *MockUserDirectoryReader, writer *MockUserDirectoryWriter) {
				reader.EXPECT().GetByID(gomock.Any(), int64(5)).
					Return(&models.User{ID: 5, NombreUsuario: "maria"}, nil)
				writer.EXPECT().Delete(gomock.Any(), int64(5)).Return(true, nil)
			},
		},
		{
			name: "unknown id",
			id:   99,
			setupMock: func(reader *MockUserDirectoryReader, writer *MockUserDirectoryWriter) {
				reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "seeded admin is protected",
			id:   1,
			setupMock: func(reader *MockUserDirectoryReader, writer *MockUserDirectoryWriter) {
				reader.EXPECT().GetByID(gomock.Any(), int64(1)).
					Return(&models.User{ID: 1, NombreUsuario: "admin", EsAdmin: true}, nil)
			},
			wantErr: ErrProtectedAdmin,
		},
		{
			name: "henkobit is protected",
			id:   2,
			setupMock: func(reader *MockUserDirectoryReader, writer *MockUserDirectoryWriter) {
				reader.EXPECT().GetByID(gomock.Any(), int64(2)).
					Return(&models.User{ID: 2, NombreUsuario: "henkobit", EsAdmin: true}, nil)
			},
			wantErr: ErrProtectedAdmin,
		},
		{
			name: "row vanished between lookup and delete",
			id:   5,
			setupMock: func(reader *MockUserDirectoryReader, writer *MockUserDirectoryWriter) {
				reader.EXPECT().GetByID(gomock.Any(), int64(5)).
					Return(&models.User{ID: 5, NombreUsuario: "maria"}, nil)
				writer.EXPECT().Delete(gomock.Any(), int64(5)).Return(false, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "lookup failure",
			id:   5,
			setupMock: func(reader *MockUserDirectoryReader, writer *MockUserDirectoryWriter) {
				reader.EXPECT().GetByID(gomock.Any(), int64(5)).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockUserDirectoryReader(ctrl)
			writer := NewMockUserDirectoryWriter(ctrl)
			tt.setupMock(reader, writer)

			svc := NewUserDirectoryService(reader, writer)
			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
