package routes

const (
	// Health
	Health = "/health"

	// Quote endpoints ({type} is a quote line: limo, motorcoach, ambulance,
	// taxi, rideshare or nemt)
	QuoteSubmit = "/api/quotes/{type}"
	QuoteList   = "/api/quotes/{type}"
	QuoteStatus = "/api/quotes/transport/{id}/status"

	// Inquiry endpoints
	Contact         = "/api/contact"
	ServiceRequests = "/api/service-requests"

	// Admin session endpoints
	AdminLogin  = "/api/admin/login"
	AdminLogout = "/api/admin/logout"
	AdminStatus = "/api/admin/status"

	// Editable site copy, blog and news
	Content    = "/api/content/{key}"
	Blog       = "/api/blog"
	BlogBySlug = "/api/blog/{slug}"
	News       = "/api/news"
	NewsBySlug = "/api/news/{slug}"

	// Object storage glue for quote document uploads
	ObjectsUpload   = "/api/objects/upload"
	ObjectsFinalize = "/api/objects/finalize"
	ObjectsServe    = "/objects/{path:.+}"
)
