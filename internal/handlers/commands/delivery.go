package commands

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/minority/internal/models"
)

// deliver sends messages in order. Channel messages go one at a time; a run
// of consecutive private messages is fanned out, and the run completes before
// the next channel message.
func (r *Router) deliver(ctx context.Context, messages []*models.Message) int {
	delivered := 0

	for i := 0; i < len(messages); {
		if messages[i].Recipient != models.RecipientPlayer {
			if r.send(ctx, messages[i]) {
				delivered++
			}
			i++
			continue
		}

		j := i
		for j < len(messages) && messages[j].Recipient == models.RecipientPlayer {
			j++
		}
		delivered += r.fanOut(ctx, messages[i:j])
		i = j
	}

	return delivered
}

// fanOut delivers private messages concurrently. A failed delivery never
// cancels the others.
func (r *Router) fanOut(ctx context.Context, batch []*models.Message) int {
	if len(batch) == 1 {
		if r.send(ctx, batch[0]) {
			return 1
		}
		return 0
	}

	var delivered atomic.Int64

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for _, m := range batch {
		g.Go(func() error {
			if r.send(ctx, m) {
				delivered.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(delivered.Load())
}

func (r *Router) send(ctx context.Context, m *models.Message) bool {
	var err error
	switch m.Recipient {
	case models.RecipientPlayer:
		err = r.sender.SendToPlayer(ctx, m.PlayerID, m.Text)
	default:
		err = r.sender.SendToChannel(ctx, m.ChannelID, m.Text)
	}

	if err != nil {
		r.logger.Warn("message dropped",
			"recipient", m.Recipient, "channel", m.ChannelID, "player", m.PlayerID, "error", err)
		return false
	}
	return true
}
