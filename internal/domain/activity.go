package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/pkg/pubsub"
	"github.com/socialharmony/backend/pkg/xcontext"
)

// NewActivityHandler returns a subscriber handler which refreshes the stored view of the game
// every received activity refers to.
func NewActivityHandler(gameDomain GameDomain) pubsub.SubscribeHandler {
	return func(ctx context.Context, pack *pubsub.Pack, t time.Time) {
		var activity model.GameActivity
		if err := json.Unmarshal(pack.Msg, &activity); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot unmarshal game activity: %v", err)
			return
		}

		xcontext.Logger(ctx).Infof("Received %s of %s on game %s at %s",
			activity.Action, activity.User, activity.Game, t.Format(time.RFC3339))

		_, err := gameDomain.GetGame(ctx, &model.GetGameRequest{ID: activity.Game})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot refresh game %s: %v", activity.Game, err)
		}
	}
}
