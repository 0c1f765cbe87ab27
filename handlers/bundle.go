package handlers

// HandlerBundle groups every handler the route registration needs.
type HandlerBundle struct {
	Search   *SearchHandler
	Provider *ProviderHandler
	Category *CategoryHandler
	Feedback *FeedbackHandler
	Admin    *AdminHandler
	Storage  *StorageHandler
}
