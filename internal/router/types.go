package router

// Intent represents the classified purpose of one inbound event.
type Intent string

const (
	IntentNone                   Intent = "NONE"
	IntentGreeting               Intent = "GREETING"
	IntentShowRecommendations    Intent = "SHOW_RECOMMENDATIONS"
	IntentQueryOrderInstructions Intent = "QUERY_ORDER_INSTRUCTIONS"
	IntentLookupOrderByPhone     Intent = "LOOKUP_ORDER_BY_PHONE"
	IntentSearchRecipeByKeyword  Intent = "SEARCH_RECIPE_BY_KEYWORD"
	IntentShowRecipeDetail       Intent = "SHOW_RECIPE_DETAIL"
	IntentShowSearchPrompt       Intent = "SHOW_SEARCH_PROMPT"
	IntentShowLatestNews         Intent = "SHOW_LATEST_NEWS"
	IntentShowSensorStatus       Intent = "SHOW_SENSOR_STATUS"
	IntentFallback               Intent = "FALLBACK"
)

// Features gates the deployment-variant keywords.
type Features struct {
	News   bool
	Sensor bool
}
