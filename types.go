package ichor

import (
	"time"
)

// User represents an itch.io account, with basic profile info
type User struct {
	ID uint32 `json:"id"`

	// Username is the user's handle, what appears in their basic
	// profile URL (https://{username}.itch.io)
	Username string `json:"username"`
	// DisplayName is the user's name, may be absent
	DisplayName *string `json:"display_name"`
	// URL is the user's profile URL
	URL string `json:"url"`
	// CoverURL is the user's avatar, may be absent
	CoverURL *string `json:"cover_url"`

	// Gamer is true if the user is interested in playing games
	Gamer bool `json:"gamer,omitempty"`
	// Developer is true if the user has published anything
	Developer bool `json:"developer,omitempty"`
	// PressUser is true if the user is registered in the press system
	PressUser bool `json:"press_user,omitempty"`
}

// CredentialsInfo describes the API key the client uses
type CredentialsInfo struct {
	// Type is "key" for API keys
	Type string `json:"type"`
	// Scopes is absent for unrestricted keys
	Scopes *MaybeEmptyList[string] `json:"scopes"`
	// ExpiresAt is absent for keys that don't expire
	ExpiresAt *string `json:"expires_at"`
}

// Me is the payload of the `/me` endpoint
type Me struct {
	User User `json:"user"`
}

// Game represents a page on itch.io, it could be a game,
// a tool, a comic, etc.
type Game struct {
	ID int64 `json:"id"`
	// URL is the canonical address of the game page
	URL string `json:"url"`
	// Title is the human-friendly title (may contain any character)
	Title string `json:"title"`
	// ShortText is the tagline, possibly empty
	ShortText string `json:"short_text"`
	// Type is "default", "html", "flash", "java" or "unity"
	Type string `json:"type"`
	// Classification is "game", "tool", "assets", "comic", etc.
	Classification string `json:"classification"`

	CreatedAt   string `json:"created_at"`
	PublishedAt string `json:"published_at"`
	Published   *bool  `json:"published"`

	// MinPrice is in cents of a dollar
	MinPrice      int64 `json:"min_price"`
	CanBeBought   bool  `json:"can_be_bought"`
	InPressSystem bool  `json:"in_press_system"`
	HasDemo       bool  `json:"has_demo"`

	PlatformWindows bool `json:"p_windows"`
	PlatformOSX     bool `json:"p_osx"`
	PlatformLinux   bool `json:"p_linux"`
	PlatformAndroid bool `json:"p_android"`

	ViewsCount     *int64 `json:"views_count"`
	DownloadsCount *int64 `json:"downloads_count"`
	PurchasesCount *int64 `json:"purchases_count"`

	User     User                     `json:"user"`
	Earnings *MaybeEmptyList[Earning] `json:"earnings"`
}

// Earning is how much a game made in a given currency
type Earning struct {
	Currency string `json:"currency"`
	// Amount is in the currency's minor unit (cents)
	Amount          uint32 `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
}

// MyGames is the payload of the `/my-games` endpoint
type MyGames struct {
	Games MaybeEmptyList[Game] `json:"games"`
}

// DownloadKey gives access to the downloads of a game
type DownloadKey struct {
	ID        uint32 `json:"id"`
	CreatedAt string `json:"created_at"`
	Downloads uint32 `json:"downloads"`
	Key       string `json:"key"`
	GameID    uint32 `json:"game_id"`
	// Owner is absent for keys that haven't been claimed
	Owner *User `json:"owner"`
}

// DownloadKeys is the payload of the `/game/{id}/download_keys` endpoint
type DownloadKeys struct {
	DownloadKey DownloadKey `json:"download_key"`
}

// Purchase is a sale (or donation) of a game
type Purchase struct {
	ID        int64  `json:"id"`
	GameID    int64  `json:"game_id"`
	Donation  bool   `json:"donation"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	Source    string `json:"source"`
	Currency  string `json:"currency"`
	// Price is formatted, e.g. "$5.00"
	Price    string `json:"price"`
	SaleRate int64  `json:"sale_rate"`
}

// Purchases is the payload of the `/game/{id}/purchases` endpoint
type Purchases struct {
	Purchases MaybeEmptyList[Purchase] `json:"purchases"`
}

// Platforms lists the desktop and mobile platforms a game supports
func (g *Game) Platforms() []string {
	var res []string
	if g.PlatformWindows {
		res = append(res, "windows")
	}
	if g.PlatformOSX {
		res = append(res, "osx")
	}
	if g.PlatformLinux {
		res = append(res, "linux")
	}
	if g.PlatformAndroid {
		res = append(res, "android")
	}
	return res
}

// CreatedTime parses CreatedAt
func (g *Game) CreatedTime() (time.Time, error) {
	return ParseAPIDate(g.CreatedAt)
}

// PublishedTime parses PublishedAt
func (g *Game) PublishedTime() (time.Time, error) {
	return ParseAPIDate(g.PublishedAt)
}

// CreatedTime parses CreatedAt
func (dk *DownloadKey) CreatedTime() (time.Time, error) {
	return ParseAPIDate(dk.CreatedAt)
}

// CreatedTime parses CreatedAt
func (p *Purchase) CreatedTime() (time.Time, error) {
	return ParseAPIDate(p.CreatedAt)
}

// ParseAPIDate parses a timestamp in APIDateFormat, as UTC
func ParseAPIDate(s string) (time.Time, error) {
	return time.ParseInLocation(APIDateFormat, s, time.UTC)
}
