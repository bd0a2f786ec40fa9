package domain

import "fmt"

// AssetKind distinguishes the two stored objects of a campaign.
type AssetKind string

const (
	// AssetDisplay is the rendered asset served on the public calendar.
	AssetDisplay AssetKind = "display"
	// AssetRaw is the full resolution upload as received from the owner.
	AssetRaw AssetKind = "raw"
)

// AssetKey builds the object-store key for a campaign asset. Keys are
// namespaced per deployment environment so staging traffic never touches
// production objects.
func AssetKey(namespace string, campaignID int64, kind AssetKind) string {
	return fmt.Sprintf("%s/%d.%s", namespace, campaignID, kind)
}

// PlaceholderDisplay is the display asset written at booking time. The
// rendering pipeline replaces it once the raw upload has been processed.
// It is a valid 1x1 transparent PNG.
var PlaceholderDisplay = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
