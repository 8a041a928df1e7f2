package domain

// AppID is the locally generated identity of a DisplayItem.
// It is never derived from the server id and never reused.
type AppID string

// RemoteUser represents a user entry returned by the search endpoint
type RemoteUser struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url"`
	ProfileURL  string `json:"html_url"`
	AccountType string `json:"type"` // "User", "Organization", ...
}

// SearchResponse is the result envelope of a search page
type SearchResponse struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []RemoteUser `json:"items"`
}

// EmptySearchResponse returns a successful response with no items
func EmptySearchResponse() *SearchResponse {
	return &SearchResponse{Items: []RemoteUser{}}
}

// DisplayItem is a RemoteUser tagged with a local identity.
// Two items may carry identical users but never the same AppID.
type DisplayItem struct {
	AppID AppID
	User  RemoteUser
}

// IDGenerator produces identities that are unique within a session
type IDGenerator interface {
	NewAppID() AppID
}

// NewDisplayItems tags every user with a fresh identity, preserving order
func NewDisplayItems(users []RemoteUser, ids IDGenerator) []DisplayItem {
	items := make([]DisplayItem, 0, len(users))
	for _, u := range users {
		items = append(items, DisplayItem{AppID: ids.NewAppID(), User: u})
	}
	return items
}

// AppIDs returns the identities of items in list order
func AppIDs(items []DisplayItem) []AppID {
	ids := make([]AppID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.AppID)
	}
	return ids
}
