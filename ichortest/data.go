package ichortest

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store holds everything the fake server knows about.
// Tests populate it through the factory methods.
type Store struct {
	Users        map[int64]*User
	APIKeys      map[int64]*APIKey
	Games        map[int64]*Game
	DownloadKeys map[int64]*DownloadKey
	Purchases    map[int64]*Purchase

	idSeed     int64
	writeMutex sync.Mutex
}

func newStore() *Store {
	return &Store{
		Users:        make(map[int64]*User),
		APIKeys:      make(map[int64]*APIKey),
		Games:        make(map[int64]*Game),
		DownloadKeys: make(map[int64]*DownloadKey),
		Purchases:    make(map[int64]*Purchase),
		idSeed:       10,
	}
}

type User struct {
	Store *Store

	ID          int64
	Username    string
	DisplayName string
	CoverURL    string
	Gamer       bool
	Developer   bool
	PressUser   bool
}

type APIKey struct {
	Store *Store

	ID        int64
	UserID    int64
	Key       string
	Scopes    []string
	ExpiresAt *time.Time
}

type Game struct {
	Store *Store

	ID             int64
	UserID         int64
	Title          string
	ShortText      string
	Type           string
	Classification string
	MinPrice       int64
	CanBeBought    bool
	InPressSystem  bool
	HasDemo        bool
	Published      bool
	CreatedAt      time.Time
	PublishedAt    time.Time

	PlatformWindows bool
	PlatformOSX     bool
	PlatformLinux   bool
	PlatformAndroid bool

	ViewsCount     int64
	DownloadsCount int64
	PurchasesCount int64

	Earnings []Earning
}

type Earning struct {
	Currency string
	Amount   int64
}

type DownloadKey struct {
	Store *Store

	ID        int64
	GameID    int64
	Key       string
	Downloads int64
	CreatedAt time.Time
	// OwnerID is zero for unclaimed keys
	OwnerID int64
	Email   string
}

type Purchase struct {
	Store *Store

	ID        int64
	GameID    int64
	UserID    int64
	Email     string
	Donation  bool
	Source    string
	Currency  string
	Price     int64
	SaleRate  int64
	CreatedAt time.Time
}

// apiDate is the timestamp layout of the server-side API
const apiDate = "2006-01-02 15:04:05"

func (s *Store) serial() int64 {
	s.idSeed++
	return s.idSeed
}

func (s *Store) slugify(name string) string {
	return strings.ToLower(strings.Replace(name, " ", "_", -1))
}

func (u *User) URL() string {
	return fmt.Sprintf("https://%s.itch.io", u.Username)
}

func (g *Game) URL() string {
	owner := g.Store.FindUser(g.UserID)
	username := "unknown"
	if owner != nil {
		username = owner.Username
	}
	return fmt.Sprintf("https://%s.itch.io/%s", username, g.Store.slugify(g.Title))
}
