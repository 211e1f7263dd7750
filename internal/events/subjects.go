package events

const (
	SubjectRecommendServed  = "phonefinder.recommend.served"
	SubjectCategoriesListed = "phonefinder.categories.listed"

	StreamName   = "PHONEFINDER_EVENTS"
	StreamMaxAge = "168h" // 7 days
)
