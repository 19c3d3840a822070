package models

// Bookmark is a single entry of the Netscape bookmark file
type Bookmark struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	AddDate int64  `json:"add_date"` // epoch seconds
}

// Tab is the saved page snapshot Arc keeps under data.tab
type Tab struct {
	SavedTitle string `json:"savedTitle"`
	SavedURL   string `json:"savedURL"`
}

// Paths of the Raw Item Pair sequences inside StorableSidebar.json, in processing order
const (
	SidebarItemsPath  = "sidebarSyncState.items"
	FirebaseItemsPath = "firebaseSyncState.syncData.items"
)

// RootPaths lists every root container that is searched for items
var RootPaths = []string{SidebarItemsPath, FirebaseItemsPath}
