package router

// Exact-match keyword triggers.
const (
	KeywordRecommend   = "推薦菜單"
	KeywordOrderQuery  = "查詢訂單"
	KeywordOrderQuery2 = "訂單查詢"
	KeywordNews        = "最新消息"
	KeywordSensor      = "茶園狀態"
	KeywordSensorTest  = "test"

	// PostbackSearch is the reserved postback token that opens the search prompt;
	// any other postback data is a recipe identifier.
	PostbackSearch = "搜尋"
)

// PhonePattern matches Taiwanese mobile numbers: exactly 10 digits, "09" prefix.
const PhonePattern = `^09\d{8}$`
