package ichortest

import (
	"fmt"
	"time"
)

// Any is a JSON object as the server writes it
type Any map[string]interface{}

// emptyList is how the server-side API spells "no items"
var emptyList = Any{}

func formatDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(apiDate)
}

func formatCents(currency string, amount int64) string {
	symbol := currency + " "
	if currency == "USD" {
		symbol = "$"
	}
	return fmt.Sprintf("%s%d.%02d", symbol, amount/100, amount%100)
}

func FormatUser(u *User) Any {
	if u == nil {
		return nil
	}

	res := Any{
		"id":       u.ID,
		"username": u.Username,
		"url":      u.URL(),
	}
	// flags are only sent when set
	if u.Gamer {
		res["gamer"] = true
	}
	if u.Developer {
		res["developer"] = true
	}
	if u.PressUser {
		res["press_user"] = true
	}
	if u.DisplayName != "" {
		res["display_name"] = u.DisplayName
	}
	if u.CoverURL != "" {
		res["cover_url"] = u.CoverURL
	}
	return res
}

func FormatCredentials(k *APIKey) Any {
	res := Any{
		"type": "key",
	}
	if len(k.Scopes) > 0 {
		res["scopes"] = k.Scopes
	} else {
		res["scopes"] = emptyList
	}
	if k.ExpiresAt != nil {
		res["expires_at"] = formatDate(*k.ExpiresAt)
	} else {
		res["expires_at"] = nil
	}
	return res
}

func FormatGame(g *Game) Any {
	res := Any{
		"id":              g.ID,
		"url":             g.URL(),
		"title":           g.Title,
		"short_text":      g.ShortText,
		"type":            g.Type,
		"classification":  g.Classification,
		"created_at":      formatDate(g.CreatedAt),
		"published_at":    formatDate(g.PublishedAt),
		"published":       g.Published,
		"min_price":       g.MinPrice,
		"can_be_bought":   g.CanBeBought,
		"in_press_system": g.InPressSystem,
		"has_demo":        g.HasDemo,
		"p_windows":       g.PlatformWindows,
		"p_osx":           g.PlatformOSX,
		"p_linux":         g.PlatformLinux,
		"p_android":       g.PlatformAndroid,
		"views_count":     g.ViewsCount,
		"downloads_count": g.DownloadsCount,
		"purchases_count": g.PurchasesCount,
		"user":            FormatUser(g.Store.FindUser(g.UserID)),
	}

	if len(g.Earnings) > 0 {
		var earnings []Any
		for _, e := range g.Earnings {
			earnings = append(earnings, Any{
				"currency":         e.Currency,
				"amount":           e.Amount,
				"amount_formatted": formatCents(e.Currency, e.Amount),
			})
		}
		res["earnings"] = earnings
	} else {
		res["earnings"] = emptyList
	}
	return res
}

func FormatGames(games []*Game) interface{} {
	if len(games) == 0 {
		return emptyList
	}
	var res []Any
	for _, g := range games {
		res = append(res, FormatGame(g))
	}
	return res
}

func FormatDownloadKey(dk *DownloadKey) Any {
	res := Any{
		"id":         dk.ID,
		"game_id":    dk.GameID,
		"key":        dk.Key,
		"downloads":  dk.Downloads,
		"created_at": formatDate(dk.CreatedAt),
	}
	if dk.OwnerID != 0 {
		res["owner"] = FormatUser(dk.Store.FindUser(dk.OwnerID))
	}
	return res
}

func FormatPurchase(p *Purchase) Any {
	return Any{
		"id":         p.ID,
		"game_id":    p.GameID,
		"email":      p.Email,
		"donation":   p.Donation,
		"source":     p.Source,
		"currency":   p.Currency,
		"price":      formatCents(p.Currency, p.Price),
		"sale_rate":  p.SaleRate,
		"created_at": formatDate(p.CreatedAt),
	}
}

func FormatPurchases(purchases []*Purchase) interface{} {
	if len(purchases) == 0 {
		return emptyList
	}
	var res []Any
	for _, p := range purchases {
		res = append(res, FormatPurchase(p))
	}
	return res
}
