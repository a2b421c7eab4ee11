package types_test

import (
	"testing"
	"time"

	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestComicDate(t *testing.T) {
	t.Run("valid date passes", func(t *testing.T) {
		d := gt.R1(types.NewComicDate("2026-03-01")).NoError(t)
		gt.V(t, d.String()).Equal("2026-03-01")
		gt.NoError(t, d.Validate())
	})

	t.Run("wrong layout fails", func(t *testing.T) {
		_, err := types.NewComicDate("03/01/2026")
		gt.Error(t, err)
	})

	t.Run("impossible day fails", func(t *testing.T) {
		_, err := types.NewComicDate("2026-02-30")
		gt.Error(t, err)
	})

	t.Run("window covers the full UTC day", func(t *testing.T) {
		d := gt.R1(types.NewComicDate("2026-03-01")).NoError(t)
		start, end := d.Window()
		gt.V(t, start).Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		gt.V(t, end).Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	})
}

func TestYesterdayUTC(t *testing.T) {
	t.Run("mid day", func(t *testing.T) {
		now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
		gt.V(t, types.YesterdayUTC(now)).Equal(types.ComicDate("2026-03-14"))
	})

	t.Run("month boundary", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 0, 0, 1, 0, time.UTC)
		gt.V(t, types.YesterdayUTC(now)).Equal(types.ComicDate("2026-02-28"))
	})

	t.Run("non UTC clock is normalized", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		// 08:00 JST is 23:00 UTC of the previous day
		now := time.Date(2026, 3, 15, 8, 0, 0, 0, jst)
		gt.V(t, types.YesterdayUTC(now)).Equal(types.ComicDate("2026-03-13"))
	})
}

func TestDeliveryChannel(t *testing.T) {
	for _, ch := range []types.DeliveryChannel{types.ChannelIssue, types.ChannelSlack, types.ChannelLocal} {
		gt.NoError(t, ch.Validate())
	}
	gt.Error(t, types.DeliveryChannel("carrier-pigeon").Validate())
}
