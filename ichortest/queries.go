package ichortest

import "sort"

func (s *Store) FindAPIKeysByKey(key string) *APIKey {
	for _, k := range s.APIKeys {
		if k.Key == key {
			return k
		}
	}
	return nil
}

func (s *Store) FindUser(id int64) *User {
	return s.Users[id]
}

func (s *Store) FindGame(id int64) *Game {
	return s.Games[id]
}

func (s *Store) ListGamesByUser(userID int64) []*Game {
	var res []*Game
	for _, g := range s.Games {
		if g.UserID == userID {
			res = append(res, g)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (s *Store) FindDownloadKey(gameID int64, match func(dk *DownloadKey) bool) *DownloadKey {
	var res *DownloadKey
	for _, dk := range s.DownloadKeys {
		if dk.GameID != gameID || !match(dk) {
			continue
		}
		if res == nil || dk.ID < res.ID {
			res = dk
		}
	}
	return res
}

func (s *Store) ListPurchases(gameID int64, match func(p *Purchase) bool) []*Purchase {
	var res []*Purchase
	for _, p := range s.Purchases {
		if p.GameID == gameID && match(p) {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
