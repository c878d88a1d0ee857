package ichor

import (
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/pkg/errors"
)

// CredentialsInfo returns information about the API key in use
func (c *Client) CredentialsInfo() (*CredentialsInfo, error) {
	r := &CredentialsInfo{}

	err := c.GetResponse("credentials/info", nil, r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// Me returns the profile of the user the API key belongs to
func (c *Client) Me() (*Me, error) {
	r := &Me{}

	err := c.GetResponse("me", nil, r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// MyGames lists the games one develops (ie. can edit)
func (c *Client) MyGames() (*MyGames, error) {
	r := &MyGames{}

	err := c.GetResponse("my-games", nil, r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

type getGameResponse struct {
	Game Game `json:"game"`
}

// Game looks up a single game. gameID is used verbatim in the path.
func (c *Client) Game(gameID string) (*Game, error) {
	r := &getGameResponse{}

	err := c.GetResponse(fmt.Sprintf("game/%s", url.PathEscape(gameID)), nil, r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &r.Game, nil
}

type DownloadKeysParams struct {
	GameID uint32
	Type   DownloadKeysType
	// Lookup is a key string, a user ID or an email, depending on Type
	Lookup string
}

func (p DownloadKeysParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.Required, validation.In(DownloadKeysTypeList...)),
	)
}

// DownloadKeys looks up a download key of one of our games
func (c *Client) DownloadKeys(params *DownloadKeysParams) (*DownloadKeys, error) {
	r := &DownloadKeys{}

	err := params.Validate()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values := url.Values{}
	values.Set(string(params.Type), params.Lookup)

	err = c.GetResponse(fmt.Sprintf("game/%d/download_keys", params.GameID), values, r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

type PurchasesParams struct {
	GameID uint32
	Type   PurchasesType
	// Lookup is an email or a user ID, depending on Type
	Lookup string
}

func (p PurchasesParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.Required, validation.In(PurchasesTypeList...)),
	)
}

// Purchases lists the purchases of one of our games made
// by a given user or email address
func (c *Client) Purchases(params *PurchasesParams) (*Purchases, error) {
	r := &Purchases{}

	err := params.Validate()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values := url.Values{}
	values.Set(string(params.Type), params.Lookup)

	err = c.GetResponse(fmt.Sprintf("game/%d/purchases", params.GameID), values, r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}
