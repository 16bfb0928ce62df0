package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"icook-chatbot/internal/model"
	"icook-chatbot/internal/reply"
	"icook-chatbot/pkg/icook"
)

// composeRecipeDetail renders the full recipe carousel for the recipe id
// carried in the postback payload: cover card, ingredients card, one or two
// step cards and the author card.
func (uc *implUseCase) composeRecipeDetail(ctx context.Context, sc model.Scope, ev model.Event) ([]messaging_api.MessageInterface, error) {
	id := strings.TrimSpace(ev.Payload)
	if id == "" {
		return nil, reply.ErrEmptyRecipeID
	}

	detail, err := uc.recipes.Recipe(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch recipe %s: %w", id, err)
	}

	bubbles := []messaging_api.FlexBubble{
		coverBubble(detail),
		ingredientsBubble(detail),
	}
	if len(detail.Recipe.Steps) > 0 {
		bubbles = append(bubbles, stepBubble(detail.Recipe.Steps[0], "", false))
	}
	if len(detail.Recipe.Steps) > 1 {
		bubbles = append(bubbles, stepBubble(detail.Recipe.Steps[1], detail.Recipe.URL, true))
	}
	bubbles = append(bubbles, authorBubble(detail))

	return []messaging_api.MessageInterface{
		messaging_api.FlexMessage{
			AltText: "✨為您呈現搜尋的食譜",
			Contents: messaging_api.FlexCarousel{
				Contents: bubbles,
			},
			QuickReply: uc.keywordQuickReply(ctx),
		},
	}, nil
}

// coverBubble overlays the recipe title and author strip on the cover photo,
// with the brand badge pinned to the top-left corner.
func coverBubble(d *icook.RecipeDetail) messaging_api.FlexBubble {
	authorURL := userProfileURL(d.User.Username)

	return messaging_api.FlexBubble{
		Body: &messaging_api.FlexBox{
			Layout:     "vertical",
			PaddingAll: "0px",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexImage{
					Url:         d.Recipe.Cover.URL,
					Size:        "full",
					AspectMode:  "cover",
					AspectRatio: "2:3",
					Gravity:     "top",
				},
				messaging_api.FlexBox{
					Layout:          "vertical",
					Position:        "absolute",
					OffsetBottom:    "0px",
					OffsetStart:     "0px",
					OffsetEnd:       "0px",
					BackgroundColor: "#03303Acc",
					PaddingAll:      "20px",
					PaddingTop:      "18px",
					Contents: []messaging_api.FlexComponentInterface{
						messaging_api.FlexBox{
							Layout: "vertical",
							Contents: []messaging_api.FlexComponentInterface{
								messaging_api.FlexText{
									Text:   d.Recipe.Name,
									Size:   "xl",
									Color:  "#ffffff",
									Weight: "bold",
								},
							},
						},
						messaging_api.FlexBox{
							Layout:   "horizontal",
							Position: "relative",
							Width:    "250px",
							Margin:   "md",
							Contents: []messaging_api.FlexComponentInterface{
								messaging_api.FlexBox{
									Layout:       "vertical",
									CornerRadius: "100px",
									Width:        "72px",
									Height:       "72px",
									Contents: []messaging_api.FlexComponentInterface{
										messaging_api.FlexImage{
											Url:        d.User.AvatarImageURL,
											AspectMode: "cover",
											Size:       "full",
											Action: messaging_api.UriAction{
												Label: "action",
												Uri:   authorURL,
											},
										},
									},
								},
								messaging_api.FlexBox{
									Layout: "vertical",
									Margin: "xxl",
									Contents: []messaging_api.FlexComponentInterface{
										messaging_api.FlexBox{
											Layout: "vertical",
											Contents: []messaging_api.FlexComponentInterface{
												messaging_api.FlexText{
													Text:  d.User.Nickname,
													Wrap:  true,
													Color: "#ebebeb",
													Action: messaging_api.UriAction{
														Label: "action",
														Uri:   authorURL,
													},
												},
											},
										},
										messaging_api.FlexBox{
											Layout:  "horizontal",
											Spacing: "lg",
											Contents: []messaging_api.FlexComponentInterface{
												messaging_api.FlexText{
													Text:  fmt.Sprintf("%d 食譜", d.User.RecipesCount),
													Color: "#8E8E8E",
													Size:  "sm",
												},
												messaging_api.FlexText{
													Text:    fmt.Sprintf("%d 粉絲", d.User.FollowersCount),
													Gravity: "bottom",
													Color:   "#8E8E8E",
													Size:    "sm",
												},
											},
										},
									},
								},
							},
						},
					},
				},
				messaging_api.FlexBox{
					Layout:          "baseline",
					Position:        "absolute",
					CornerRadius:    "20px",
					OffsetTop:       "18px",
					OffsetStart:     "18px",
					Height:          "25px",
					Width:           "70px",
					BackgroundColor: "#ff334b",
					Contents: []messaging_api.FlexComponentInterface{
						messaging_api.FlexIcon{
							Url:         icookBadgeIconURL,
							OffsetStart: "7px",
							OffsetTop:   "6px",
							Size:        "sm",
						},
						messaging_api.FlexText{
							Text:      "愛料理",
							Size:      "xs",
							Align:     "center",
							Color:     "#ebebeb",
							OffsetTop: "3px",
						},
					},
				},
			},
		},
	}
}

// ingredientsBubble lists up to ten ingredient rows. Servings and cook time
// appear under the heading only when the recipe carries both.
func ingredientsBubble(d *icook.RecipeDetail) messaging_api.FlexBubble {
	body := []messaging_api.FlexComponentInterface{
		messaging_api.FlexText{
			Text:   "食材",
			Weight: "bold",
			Size:   "xxl",
			Margin: "md",
		},
	}
	if d.Recipe.Servings != nil && d.Recipe.Time != nil {
		body = append(body, messaging_api.FlexBox{
			Layout: "horizontal",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexText{
					Text:  fmt.Sprintf("%d 人份", *d.Recipe.Servings),
					Size:  "md",
					Color: "#aaaaaa",
					Wrap:  true,
				},
				messaging_api.FlexText{
					Text:  fmt.Sprintf("%d 分鐘", *d.Recipe.Time),
					Size:  "md",
					Color: "#aaaaaa",
				},
			},
		})
	}
	body = append(body,
		messaging_api.FlexSeparator{Margin: "md"},
		messaging_api.FlexBox{
			Layout:   "vertical",
			Margin:   "md",
			Contents: ingredientRows(d.Recipe.IngredientGroups),
		},
	)

	return messaging_api.FlexBubble{
		Body: &messaging_api.FlexBox{
			Layout:   "vertical",
			Contents: body,
		},
		Footer: linkFooter("觀看完整食材請點下方", "全部食材", d.Recipe.URL),
		Styles: &messaging_api.FlexBubbleStyles{
			Footer: &messaging_api.FlexBlockStyle{Separator: false},
		},
	}
}

// ingredientRows flattens the grouped ingredient list into name/quantity rows,
// capped per group and overall.
func ingredientRows(groups []icook.IngredientGroup) []messaging_api.FlexComponentInterface {
	if len(groups) > maxIngredientGroups {
		groups = groups[:maxIngredientGroups]
	}

	rows := make([]messaging_api.FlexComponentInterface, 0, maxIngredientRows)
	for _, g := range groups {
		ingredients := g.Ingredients
		if len(ingredients) > maxIngredientsPerGrp {
			ingredients = ingredients[:maxIngredientsPerGrp]
		}
		for _, in := range ingredients {
			rows = append(rows, messaging_api.FlexBox{
				Layout: "horizontal",
				Contents: []messaging_api.FlexComponentInterface{
					messaging_api.FlexText{
						Text:  in.Name,
						Size:  "sm",
						Color: "#111111",
					},
					messaging_api.FlexText{
						Text:  in.Quantity,
						Size:  "sm",
						Color: "#111111",
						Align: "end",
					},
				},
			})
		}
	}
	if len(rows) > maxIngredientRows {
		rows = rows[:maxIngredientRows]
	}
	return rows
}

// stepBubble renders a single preparation step. The last shown step links out
// to the full instructions.
func stepBubble(step icook.Step, recipeURL string, withFooter bool) messaging_api.FlexBubble {
	b := messaging_api.FlexBubble{
		Body: &messaging_api.FlexBox{
			Layout: "vertical",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexText{
					Text:   fmt.Sprintf("步驟 %d", step.Position),
					Weight: "bold",
					Size:   "xxl",
					Margin: "md",
					Color:  "#aaaaaa",
				},
				messaging_api.FlexBox{
					Layout: "horizontal",
					Margin: "md",
					Contents: []messaging_api.FlexComponentInterface{
						stepCoverImage(step),
						messaging_api.FlexBox{
							Layout: "vertical",
							Margin: "md",
							Width:  "170px",
							Contents: []messaging_api.FlexComponentInterface{
								messaging_api.FlexText{
									Text: flattenStepBody(step.Body),
									Wrap: true,
									Size: "md",
								},
							},
						},
					},
				},
			},
		},
	}
	if withFooter {
		b.Footer = linkFooter("觀看完整步驟請點下方", "全部步驟", recipeURL)
		b.Styles = &messaging_api.FlexBubbleStyles{
			Footer: &messaging_api.FlexBlockStyle{Separator: false},
		}
	}
	return b
}

func stepCoverImage(step icook.Step) messaging_api.FlexImage {
	url := defaultStepImageURL
	if step.Cover != nil {
		url = step.Cover.Small.URL
	}
	return messaging_api.FlexImage{
		Url:        url,
		AspectMode: "cover",
	}
}

// linkFooter is the shared "caption, separator, secondary button" footer of
// the ingredients and step cards.
func linkFooter(caption, label, uri string) *messaging_api.FlexBox {
	return &messaging_api.FlexBox{
		Layout: "vertical",
		Contents: []messaging_api.FlexComponentInterface{
			messaging_api.FlexBox{
				Layout:     "vertical",
				AlignItems: "center",
				Contents: []messaging_api.FlexComponentInterface{
					messaging_api.FlexText{
						Text:  caption,
						Color: "#aaaaaa",
					},
				},
			},
			messaging_api.FlexSeparator{},
			messaging_api.FlexBox{
				Layout:     "vertical",
				PaddingAll: "md",
				Contents: []messaging_api.FlexComponentInterface{
					messaging_api.FlexButton{
						Style: "secondary",
						Action: messaging_api.UriAction{
							Label: label,
							Uri:   uri,
						},
					},
				},
			},
		},
	}
}

// authorBubble closes the carousel with the author profile and a follow button.
func authorBubble(d *icook.RecipeDetail) messaging_api.FlexBubble {
	return messaging_api.FlexBubble{
		Hero: messaging_api.FlexBox{
			Layout: "vertical",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexImage{
					Url:         d.Recipe.Cover.URL,
					Size:        "full",
					AspectRatio: "25:15",
					AspectMode:  "cover",
				},
			},
		},
		Body: &messaging_api.FlexBox{
			Layout: "horizontal",
			Height: "78px",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexBox{
					Layout:       "vertical",
					CornerRadius: "xxl",
					Width:        "50px",
					Height:       "50px",
					Contents: []messaging_api.FlexComponentInterface{
						messaging_api.FlexImage{
							Url:        d.Recipe.User.AvatarImageURL,
							Size:       "full",
							AspectMode: "cover",
						},
					},
				},
				messaging_api.FlexBox{
					Layout:      "vertical",
					AlignItems:  "flex-start",
					OffsetStart: "50px",
					Contents: []messaging_api.FlexComponentInterface{
						messaging_api.FlexText{
							Text:   d.User.Nickname,
							Weight: "bold",
							Size:   "xl",
							Align:  "center",
						},
						messaging_api.FlexText{
							Text:  fmt.Sprintf("%d 食譜   %d 粉絲", d.User.RecipesCount, d.User.FollowersCount),
							Color: "#aaaaaa",
							Size:  "sm",
						},
					},
				},
			},
		},
		Footer: &messaging_api.FlexBox{
			Layout:         "horizontal",
			JustifyContent: "center",
			Contents: []messaging_api.FlexComponentInterface{
				messaging_api.FlexBox{
					Layout:          "vertical",
					Width:           "65px",
					AlignItems:      "center",
					BackgroundColor: "#66B3FF",
					CornerRadius:    "md",
					OffsetBottom:    "10px",
					Height:          "50px",
					JustifyContent:  "center",
					Contents: []messaging_api.FlexComponentInterface{
						messaging_api.FlexButton{
							Height: "sm",
							Color:  "#FFFFFF",
							Action: messaging_api.UriAction{
								Label: "追蹤",
								Uri:   userProfileURL(d.User.Username),
							},
						},
					},
				},
			},
		},
	}
}
