package router

import (
	"regexp"

	"icook-chatbot/internal/model"
)

var phoneRe = regexp.MustCompile(PhonePattern)

// MatchPhone reports whether text is a mobile number eligible for order lookup.
func MatchPhone(text string) bool {
	return phoneRe.MatchString(text)
}

// Classify determines the intent of one inbound event.
//
// Text messages are evaluated in a fixed priority order: exact keywords first,
// then the phone pattern, then the free-text search path. The order matters
// because any keyword or phone number is also valid free text.
func (r *KeywordRouter) Classify(ev model.Event) Intent {
	switch ev.Kind {
	case model.EventKindFollow:
		return IntentGreeting

	case model.EventKindPostback:
		if ev.Payload == PostbackSearch {
			return IntentShowSearchPrompt
		}
		// Any other postback data is a recipe identifier.
		return IntentShowRecipeDetail

	case model.EventKindMessage:
		switch ev.Payload {
		case KeywordRecommend:
			return IntentShowRecommendations
		case KeywordOrderQuery, KeywordOrderQuery2:
			return IntentQueryOrderInstructions
		}
		if MatchPhone(ev.Payload) {
			return IntentLookupOrderByPhone
		}
		if r.features.News && ev.Payload == KeywordNews {
			return IntentShowLatestNews
		}
		if r.features.Sensor && (ev.Payload == KeywordSensor || ev.Payload == KeywordSensorTest) {
			return IntentShowSensorStatus
		}
		return IntentSearchRecipeByKeyword
	}

	// Unrecognized event kinds are dropped without a reply.
	return IntentNone
}
