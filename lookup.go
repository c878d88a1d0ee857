package ichor

// DownloadKeysType selects how a download key is looked up.
// Its value is the query parameter sent to the API.
type DownloadKeysType string

const (
	// DownloadKeysByKey looks up a download key by its key string
	DownloadKeysByKey DownloadKeysType = "download_key"
	// DownloadKeysByUserID looks up the download key owned by a user
	DownloadKeysByUserID DownloadKeysType = "user_id"
	// DownloadKeysByEmail looks up the download key claimed by an email
	DownloadKeysByEmail DownloadKeysType = "email"
)

var DownloadKeysTypeList = []interface{}{
	DownloadKeysByKey,
	DownloadKeysByUserID,
	DownloadKeysByEmail,
}

// PurchasesType selects how purchases are looked up.
// Its value is the query parameter sent to the API.
type PurchasesType string

const (
	// PurchasesByEmail looks up purchases made with an email address
	PurchasesByEmail PurchasesType = "email"
	// PurchasesByUserID looks up purchases made by a user
	PurchasesByUserID PurchasesType = "user_id"
)

var PurchasesTypeList = []interface{}{
	PurchasesByEmail,
	PurchasesByUserID,
}

// DownloadKeysTypes lists every valid DownloadKeysType, in wire form
func DownloadKeysTypes() []string {
	return []string{string(DownloadKeysByKey), string(DownloadKeysByUserID), string(DownloadKeysByEmail)}
}

// PurchasesTypes lists every valid PurchasesType, in wire form
func PurchasesTypes() []string {
	return []string{string(PurchasesByEmail), string(PurchasesByUserID)}
}
