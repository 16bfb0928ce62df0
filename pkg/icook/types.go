package icook

// hotKeywordsResponse is the body of GET /api/v1/keywords/hot_keywords.
type hotKeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// SearchResult is the body of GET /api/v1/recipes/search.json.
type SearchResult struct {
	Recipes []RecipeSummary `json:"recipes"`
}

// RecipeSummary is one recipe thumbnail from a keyword search.
type RecipeSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Cover Cover  `json:"cover"`
}

// Cover is an image reference.
type Cover struct {
	URL string `json:"url"`
}

// homepageResponse is the body of GET /api/v1/homepage_v2.json.
type homepageResponse struct {
	Stories []SeasonalStory `json:"stories"`
}

// SeasonalStory is one homepage story block with its item list.
type SeasonalStory struct {
	Link  string         `json:"link"`
	Items []SeasonalItem `json:"items"`
}

// SeasonalItem is one entry of a homepage story.
type SeasonalItem struct {
	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
}

// RecipeDetail is the body of GET /api/v1/recipes/{id}.json.
type RecipeDetail struct {
	Recipe Recipe `json:"recipe"`
	User   Author `json:"user"`
}

// Recipe is the full recipe document.
type Recipe struct {
	Name             string            `json:"name"`
	URL              string            `json:"url"`
	Servings         *int64            `json:"servings"`
	Time             *int64            `json:"time"`
	Cover            Cover             `json:"cover"`
	IngredientGroups []IngredientGroup `json:"ingredient_groups"`
	Steps            []Step            `json:"steps"`
	User             Author            `json:"user"`
}

// IngredientGroup groups ingredients under one heading.
type IngredientGroup struct {
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient is one ingredient row.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Step is one preparation step. Cover is nil when the author uploaded no photo.
type Step struct {
	Position int        `json:"position"`
	Body     string     `json:"body"`
	Cover    *StepCover `json:"cover"`
}

// StepCover holds the step photo variants.
type StepCover struct {
	Small Cover `json:"small"`
}

// Author is the recipe author profile.
type Author struct {
	Nickname       string `json:"nickname"`
	Username       string `json:"username"`
	RecipesCount   int    `json:"recipes_count"`
	FollowersCount int    `json:"followers_count"`
	AvatarImageURL string `json:"avatar_image_url"`
}
