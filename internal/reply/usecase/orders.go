package usecase

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/model"
	"icook-chatbot/pkg/market"
)

// composeOrderInstructions asks the user to submit their phone number.
func (uc *implUseCase) composeOrderInstructions(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	name := uc.displayName(ctx, sc.UserID)
	return []messaging_api.MessageInterface{
		messaging_api.TextMessage{
			Text: fmt.Sprintf("嗨～%s😀感謝您訂購愛料理市集商品📱查詢商品訂單進度，請留言【電話號碼】（範例：0912345678）將為您呈現訂購資訊，謝謝您！✨✨✨", name),
		},
	}, nil
}

// composeOrderLookup looks up orders by the phone number in the event payload.
// No orders yields the static no-orders template; otherwise up to eleven order
// cards plus a trailing "view all orders" card.
func (uc *implUseCase) composeOrderLookup(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	resp, err := uc.orders.Orders(ctx, ev.Payload, sc.UserID)
	if err != nil {
		return nil, fmt.Errorf("order lookup failed: %w", err)
	}

	if len(resp.Orders) == 0 {
		return []messaging_api.MessageInterface{uc.templates.NoOrders}, nil
	}

	orders := resp.Orders
	if len(orders) > maxCarouselItems {
		orders = orders[:maxCarouselItems]
	}

	bubbles := make([]messaging_api.FlexBubble, 0, len(orders)+1)
	for _, o := range orders {
		bubbles = append(bubbles, orderBubble(o))
	}
	bubbles = append(bubbles, viewAllOrdersBubble())

	return []messaging_api.MessageInterface{
		messaging_api.FlexMessage{
			AltText: "為您呈現目前愛料理市集訂單狀態，謝謝！",
			Contents: messaging_api.FlexCarousel{
				Contents: bubbles,
			},
		},
	}, nil
}

func orderBubble(o market.Order) messaging_api.FlexBubble {
	return messaging_api.FlexBubble{
		Hero: messaging_api.FlexImage{
			Url:         o.Product.CoverURL,
			Size:        "full",
			AspectRatio: "20:13",
			AspectMode:  "cover",
			Action: messaging_api.UriAction{
				Label: "訂單圖片",
				Uri:   externalURL(o.Product.URL),
			},
		},
		Body: &messaging_api.FlexBox{
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexText{
					Text:   o.Product.Name,
					Wrap:   true,
					Weight: "bold",
					Size:   "xl",
				},
				messaging_api.FlexBox{
					Layout: "vertical",
					Contents: []messaging_api.FlexComponentInterface{
						orderDetailText(fmt.Sprintf("訂購時間：%s", formatDate(o.PaidAt))),
						orderDetailText(fmt.Sprintf("訂單狀態：%s", statusLabel(o.Status))),
						orderDetailText(fmt.Sprintf("商品金額：$%s", formatPrice(o.Total))),
					},
				},
			},
		},
		Footer: &messaging_api.FlexBox{
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexButton{
					Action: messaging_api.UriAction{
						Label: "商品館",
						Uri:   externalURL(o.Product.URL),
					},
				},
				messaging_api.FlexButton{
					Action: messaging_api.UriAction{
						Label: "訂單網址",
						Uri:   externalURL(o.URL),
					},
				},
			},
		},
	}
}

func orderDetailText(text string) messaging_api.FlexText {
	return messaging_api.FlexText{
		Text:  text,
		Wrap:  true,
		Size:  "sm",
		Color: "#ADADAD",
	}
}

func viewAllOrdersBubble() messaging_api.FlexBubble {
	return messaging_api.FlexBubble{
		Hero: messaging_api.FlexImage{
			Url:         viewOrdersImageURL,
			Size:        "full",
			AspectRatio: "20:13",
			AspectMode:  "cover",
			Action: messaging_api.UriAction{
				Label: "訂單圖片",
				Uri:   externalURL(marketOrdersURL),
			},
		},
		Body: &messaging_api.FlexBox{
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexText{
					Text:   "查看完整訂單",
					Wrap:   true,
					Weight: "bold",
					Size:   "xl",
				},
				messaging_api.FlexBox{
					Layout: "vertical",
					Contents: []messaging_api.FlexComponentInterface{
						orderDetailText("如需查看更多訂單，請點下方「前往訂單區」將為您呈現完整訂單，謝謝您！"),
					},
				},
			},
		},
		Footer: &messaging_api.FlexBox{
			Layout:  "vertical",
			Spacing: "sm",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexButton{
					Action: messaging_api.UriAction{
						Label: "前往訂單區",
						Uri:   externalURL(marketOrdersURL),
					},
				},
			},
		},
	}
}
