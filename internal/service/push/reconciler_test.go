package push

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/birthday-notifier/internal/mocks/service/push"
)

func TestReconciler_Unregister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := mocks.NewMockprofileRepository(ctrl)
	r := NewReconciler(profiles)

	profiles.EXPECT().DisablePush(gomock.Any(), []string{"T", "U"}).Return(int64(2), nil)

	n, err := r.Unregister(context.Background(), []string{"T", "", "U", "T"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestReconciler_UnregisterNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewReconciler(mocks.NewMockprofileRepository(ctrl))

	n, err := r.Unregister(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestReconciler_UnregisterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := mocks.NewMockprofileRepository(ctrl)
	r := NewReconciler(profiles)

	profiles.EXPECT().DisablePush(gomock.Any(), []string{"T"}).Return(int64(0), errors.New("deadlock"))

	_, err := r.Unregister(context.Background(), []string{"T"})
	assert.ErrorContains(t, err, "deadlock")
}
