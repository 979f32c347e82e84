package bucket

// Item is a single bucket-list entry. The remote store owns the canonical
// copy; ID is the store-assigned child key and never travels on the wire.
type Item struct {
	ID          string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	DateAdded   Timestamp `json:"dateAdded"`
}

// Seed is a title/description pair used for default and sample items.
type Seed struct {
	Title       string
	Description string
}

// DefaultItems are written once on the first launch of the app on a device.
var DefaultItems = []Seed{
	{Title: "Travel to Japan", Description: "Explore Tokyo and Kyoto."},
	{Title: "Learn to Play Guitar", Description: "Take lessons and practice daily."},
	{Title: "Start a Blog", Description: "Write about your experiences."},
}

// SampleItems populate the list on demand, behind an explicit confirmation.
var SampleItems = []Seed{
	{Title: "Visit the Grand Canyon", Description: "Experience the vastness of nature."},
	{Title: "Learn a New Language", Description: "Become fluent in Spanish."},
	{Title: "Run a Marathon", Description: "Complete a full marathon."},
	{Title: "Write a Book", Description: "Share your stories with the world."},
}
