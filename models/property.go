// SPDX-License-Identifier: Apache-2.0

package models

// Property is a structured real-estate listing extracted from the metadata
// field of an assistant response. All scalar fields arrive as strings from
// the backend and are kept as strings; the client only displays them.
//
// The wire representation encodes Images as a JSON string that itself
// contains a JSON array, so Property is never unmarshalled directly; the
// conversation service decodes the raw metadata and builds Property values
// field by field. MapEmbedURL is not a wire field at all: it is derived from
// Location.
//
// BrokerContact2 and BrokerContact3 are nil when the backend sends the
// literal string "nan" for them.
type Property struct {
	Name           string
	Price          string
	Currency       string
	Location       string
	Bedrooms       string
	Bathrooms      string
	HalfBathrooms  string
	ParkingSpaces  string
	AreaM2         string
	Amenities      string
	Kind           string
	Status         string
	BrokerName     string
	BrokerContact1 string
	BrokerContact2 *string
	BrokerContact3 *string
	Images         []string
	SourceURL      string
	MapEmbedURL    string
}

// BrokerContacts returns the present broker contacts in order, between one
// and three entries for a well-formed listing.
func (p Property) BrokerContacts() []string {
	contacts := make([]string, 0, 3)
	if p.BrokerContact1 != "" {
		contacts = append(contacts, p.BrokerContact1)
	}
	if p.BrokerContact2 != nil && *p.BrokerContact2 != "" {
		contacts = append(contacts, *p.BrokerContact2)
	}
	if p.BrokerContact3 != nil && *p.BrokerContact3 != "" {
		contacts = append(contacts, *p.BrokerContact3)
	}
	return contacts
}
