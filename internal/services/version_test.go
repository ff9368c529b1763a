package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/divergent-flow/internal/models"
	"github.com/sbilibin2017/divergent-flow/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestVersionService_GetVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockVersionReader(ctrl)
	svc := services.NewVersionService(mockReader)

	tests := []struct {
		name    string
		info    *models.VersionInfo
		err     error
		wantErr error
	}{
		{name: "ok", info: &models.VersionInfo{Version: "1.0.0", Service: "divergent-flow-core"}},
		{name: "reader error", err: errors.New("boom"), wantErr: errors.New("boom")},
		{name: "no info", wantErr: services.ErrVersionUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetVersionInfo(gomock.Any()).Return(tt.info, tt.err)

			info, err := svc.GetVersion(context.Background())
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.info, info)
		})
	}
}
