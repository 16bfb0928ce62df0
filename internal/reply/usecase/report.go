package usecase

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/model"
	"icook-chatbot/pkg/sensor"
)

const maxSensorBubbles = 2

func (uc *implUseCase) composeLatestNews(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	return []messaging_api.MessageInterface{uc.templates.News}, nil
}

// composeSensorStatus renders the latest field telemetry as one card per
// station. An empty snapshot list degrades to a plain text notice.
func (uc *implUseCase) composeSensorStatus(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	snapshots, err := uc.sensors.Snapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch sensor snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		return []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: "目前沒有茶園感測資料，請稍後再試，謝謝您！"},
		}, nil
	}

	if len(snapshots) > maxSensorBubbles {
		snapshots = snapshots[:maxSensorBubbles]
	}
	bubbles := make([]messaging_api.FlexBubble, 0, len(snapshots))
	for _, s := range snapshots {
		bubbles = append(bubbles, snapshotBubble(s))
	}

	return []messaging_api.MessageInterface{
		messaging_api.FlexMessage{
			AltText: "🍃為您呈現目前茶園狀態",
			Contents: messaging_api.FlexCarousel{
				Contents: bubbles,
			},
		},
	}, nil
}

func snapshotBubble(s sensor.Snapshot) messaging_api.FlexBubble {
	rows := make([]messaging_api.FlexComponentInterface, 0, len(s.Rows()))
	for _, r := range s.Rows() {
		rows = append(rows, messaging_api.FlexBox{
			Layout: "horizontal",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexText{
					Text:  r.Label,
					Size:  "sm",
					Color: "#111111",
				},
				messaging_api.FlexText{
					Text:  r.Value,
					Size:  "sm",
					Color: "#111111",
					Align: "end",
				},
			},
		})
	}

	body := []messaging_api.FlexComponentInterface{
		messaging_api.FlexText{
			Text:   s.Station,
			Weight: "bold",
			Size:   "xl",
			Wrap:   true,
		},
		messaging_api.FlexText{
			Text:  fmt.Sprintf("觀測時間：%s", formatDate(s.RecordedAt)),
			Size:  "sm",
			Color: "#ADADAD",
		},
		messaging_api.FlexSeparator{Margin: "md"},
		messaging_api.FlexBox{
			Layout:   "vertical",
			Margin:   "md",
			Contents: rows,
		},
	}

	return messaging_api.FlexBubble{
		Body: &messaging_api.FlexBox{
			Layout:   "vertical",
			Spacing:  "sm",
			Contents: body,
		},
	}
}
