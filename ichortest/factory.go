package ichortest

import (
	"fmt"
	"time"
)

var epoch = time.Date(2021, time.November, 12, 10, 30, 0, 0, time.UTC)

func (s *Store) MakeUser(displayName string) *User {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	user := &User{
		Store:       s,
		ID:          s.serial(),
		Username:    s.slugify(displayName),
		DisplayName: displayName,
		Gamer:       true,
	}
	s.Users[user.ID] = user
	return user
}

// SetID moves a user to a specific ID, for tests that need
// well-known values.
func (u *User) SetID(id int64) *User {
	s := u.Store
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	delete(s.Users, u.ID)
	for _, k := range s.APIKeys {
		if k.UserID == u.ID {
			k.UserID = id
		}
	}
	for _, g := range s.Games {
		if g.UserID == u.ID {
			g.UserID = id
		}
	}
	u.ID = id
	s.Users[id] = u
	return u
}

func (u *User) MakeAPIKey() *APIKey {
	s := u.Store
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	apiKey := &APIKey{
		Store:  s,
		ID:     s.serial(),
		UserID: u.ID,
		Key:    fmt.Sprintf("%s-api-key", u.Username),
	}
	s.APIKeys[apiKey.ID] = apiKey
	return apiKey
}

func (u *User) MakeGame(title string) *Game {
	s := u.Store
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	u.Developer = true
	game := &Game{
		Store:          s,
		ID:             s.serial(),
		Type:           "default",
		Classification: "game",
		UserID:         u.ID,
		Title:          title,
		CreatedAt:      epoch,
		PublishedAt:    epoch,
	}
	s.Games[game.ID] = game
	return game
}

func (g *Game) SetID(id int64) *Game {
	s := g.Store
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	delete(s.Games, g.ID)
	g.ID = id
	s.Games[id] = g
	return g
}

func (g *Game) Publish() {
	g.Published = true
	g.PublishedAt = g.CreatedAt.Add(24 * time.Hour)
}

func (g *Game) SetAllPlatforms() {
	g.PlatformWindows = true
	g.PlatformOSX = true
	g.PlatformLinux = true
	g.PlatformAndroid = true
}

// MakeDownloadKey creates a download key, claimed by owner
// if it's non-nil.
func (g *Game) MakeDownloadKey(owner *User) *DownloadKey {
	s := g.Store
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	dk := &DownloadKey{
		Store:     s,
		ID:        s.serial(),
		GameID:    g.ID,
		CreatedAt: epoch,
	}
	dk.Key = fmt.Sprintf("key-%d-%d", g.ID, dk.ID)
	if owner != nil {
		dk.OwnerID = owner.ID
		dk.Email = fmt.Sprintf("%s@example.org", owner.Username)
	}
	s.DownloadKeys[dk.ID] = dk
	return dk
}

// MakePurchase records a sale of the game. buyer may be nil for
// purchases made without an account.
func (g *Game) MakePurchase(buyer *User, email string, price int64) *Purchase {
	s := g.Store
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	p := &Purchase{
		Store:     s,
		ID:        s.serial(),
		GameID:    g.ID,
		Email:     email,
		Source:    "desktop",
		Currency:  "USD",
		Price:     price,
		CreatedAt: epoch,
	}
	if buyer != nil {
		p.UserID = buyer.ID
	}
	g.PurchasesCount++
	g.Earnings = addEarning(g.Earnings, p.Currency, price)
	s.Purchases[p.ID] = p
	return p
}

func addEarning(earnings []Earning, currency string, amount int64) []Earning {
	for i := range earnings {
		if earnings[i].Currency == currency {
			earnings[i].Amount += amount
			return earnings
		}
	}
	return append(earnings, Earning{Currency: currency, Amount: amount})
}
