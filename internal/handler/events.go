package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/sse"

	"CoBag/internal/realtime"
	"CoBag/internal/service"
	"CoBag/pkg/response"
)

const streamHeartbeatInterval = 30 * time.Second

// StreamMatchEvents 订阅一个匹配的实时变更流（SSE）。
// 推送是 at-most-once 的，断线重连后客户端先拉取当前状态再续订。
// GET /v1/matches/:match_id/events
func StreamMatchEvents(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	// 复用详情查询做参与方鉴权
	if _, err := service.Match().Get(ctx, userID, matchID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	events, cancel := realtime.Subscribe(ctx, matchID)
	defer cancel()

	stream := sse.NewStream(c)
	heartbeat := time.NewTicker(streamHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			if err := stream.Publish(toSSEEvent(event)); err != nil {
				return
			}
		case <-heartbeat.C:
			// 心跳探测断线，Publish 失败说明客户端已走
			if err := stream.Publish(&sse.Event{Event: "ping", Data: []byte("{}")}); err != nil {
				return
			}
		}
	}
}

func toSSEEvent(event realtime.MatchEvent) *sse.Event {
	payload, _ := json.Marshal(event)
	return &sse.Event{
		ID:    event.EventID,
		Event: event.Kind,
		Data:  payload,
	}
}
