package usecase

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Display limits. Carousels carry at most eleven data cards before the
// trailing "see more" card; search carousels carry ten with no trailing card.
const (
	maxQuickReplyKeywords = 10
	maxCarouselItems      = 11
	maxSearchItems        = 10
	maxIngredientRows     = 10
	maxIngredientsPerGrp  = 8
	maxIngredientGroups   = 10
	maxStepBodyRunes      = 110
	maxTitleRunes         = 12
)

// Static asset URLs shared by the composers.
const (
	popularRecipesURL   = "https://icook.tw/recipes/popular"
	marketOrdersURL     = "https://market.icook.tw/orders"
	userProfileBaseURL  = "https://icook.tw/users/"
	defaultStepImageURL = "https://i.imgur.com/JWKFBJI.png"
	seeMoreImageURL     = "https://i.imgur.com/WQAyOW2.png"
	viewOrdersImageURL  = "https://i.imgur.com/KF0fkhl.png"
	icookBadgeIconURL   = "https://i.imgur.com/COhsfHZ.png"
)

// statusLabels maps upstream order statuses to user-facing labels. Statuses
// outside the table render as an empty string rather than leaking upstream
// vocabulary into chat.
var statusLabels = map[string]string{
	"preparing": "待出貨",
	"delivered": "已出貨",
}

func statusLabel(status string) string {
	return statusLabels[status]
}

// formatPrice renders an amount with thousands separators: 12345 → "12,345".
func formatPrice(total int64) string {
	return humanize.Comma(total)
}

// formatDate truncates an ISO timestamp to its calendar date.
func formatDate(ts string) string {
	date, _, _ := strings.Cut(ts, "T")
	return date
}

// truncateRunes cuts s to at most max runes.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// flattenStepBody collapses newlines to a delimiter and bounds the length.
func flattenStepBody(body string) string {
	return truncateRunes(strings.ReplaceAll(body, "\n", " - "), maxStepBodyRunes)
}

// externalURL marks a link to open in the external browser instead of the
// in-app webview.
func externalURL(u string) string {
	return u + "?openExternalBrowser=1"
}

func userProfileURL(username string) string {
	return externalURL(userProfileBaseURL + username)
}
