package lifecycle

import (
	"fmt"
	"math"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/entities"
	"github.com/chumchon-net/chumchon/internal/errs"
	"github.com/chumchon-net/chumchon/internal/guard"
)

// Send posts content of sender to g. Membership of sender must be checked by the caller.
func Send(g *entities.Group, group, sender address.Address, content string, now int64) (*entities.Message, error) {
	if err := guard.MaxLen(content, entities.MaxMessageLen, errs.ErrContentTooLong); err != nil {
		return nil, err
	}
	if g.IsChannel && g.Creator != sender {
		return nil, errs.ErrChannelPostingRestricted
	}

	m := &entities.Message{
		Group:     group,
		Sender:    sender,
		Content:   content,
		Timestamp: now,
		Index:     g.MessageCount,
	}

	g.MessageCount++
	g.LastMessageAt = now

	return m, nil
}

// Tip records amount tipped to m. The transfer itself belongs to the caller.
func Tip(m *entities.Message, amount uint64) error {
	if amount == 0 {
		return errs.ErrInvalidAmount
	}

	if m.TipsReceived > math.MaxUint64-amount {
		return fmt.Errorf("%w: tips received overflow", errs.ErrInvalidAmount)
	}
	m.TipsReceived += amount

	return nil
}
