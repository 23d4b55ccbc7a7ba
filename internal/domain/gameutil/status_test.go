package gameutil

import (
	"math/big"
	"testing"

	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/pkg/enum"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	type args struct {
		cancelled bool
		complete  bool
		endorsed  bool
	}
	tests := []struct {
		name string
		args args
		want model.GameStatus
	}{
		{name: "cancelled wins over everything", args: args{true, true, true}, want: StatusCancelled},
		{name: "cancelled and not endorsed", args: args{true, false, false}, want: StatusCancelled},
		{name: "cancelled only", args: args{true, false, true}, want: StatusCancelled},
		{name: "completed", args: args{false, true, true}, want: StatusCompleted},
		{name: "completed without endorsements", args: args{false, true, false}, want: StatusCompleted},
		{name: "active", args: args{false, false, true}, want: StatusActive},
		{name: "pending", args: args{false, false, false}, want: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.args.cancelled, tt.args.complete, tt.args.endorsed)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIsEndorsed(t *testing.T) {
	three, ok := new(big.Int).SetString("3", 10)
	require.True(t, ok)

	require.True(t, IsEndorsed(three, big.NewInt(3)))
	require.True(t, IsEndorsed(big.NewInt(0), nil))
	require.False(t, IsEndorsed(big.NewInt(2), big.NewInt(3)))
	require.False(t, IsEndorsed(big.NewInt(4), big.NewInt(3)))
}

func TestStatusEnum(t *testing.T) {
	status, err := enum.ToEnum[model.GameStatus]("pending")
	require.NoError(t, err)
	require.Equal(t, StatusPending, status)

	_, err = enum.ToEnum[model.GameStatus]("unknown")
	require.Error(t, err)

	require.True(t, IsOpen(StatusActive))
	require.True(t, IsOpen(StatusPending))
	require.False(t, IsOpen(StatusCancelled))
	require.False(t, IsOpen(StatusCompleted))
}
