// SPDX-License-Identifier: Apache-2.0

package service

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/propchat/propchat-client/models"
)

// rawProperty mirrors the backend's listing payload. Every field arrives as
// a string; images is a second-level JSON-encoded array.
type rawProperty struct {
	PropertyName   string `json:"property_name"`
	Price          string `json:"price"`
	Currency       string `json:"currency"`
	Location       string `json:"location"`
	Bedrooms       string `json:"bedrooms"`
	Bathrooms      string `json:"bathrooms"`
	HalfBathrooms  string `json:"half_bathrooms"`
	ParkingSpace   string `json:"parking_space"`
	AreaM2         string `json:"area_m2"`
	Amenities      string `json:"amenities"`
	PropertyType   string `json:"property_type"`
	Status         string `json:"status"`
	BrokerName     string `json:"broker_name"`
	BrokerContact1 string `json:"broker_contact_1"`
	BrokerContact2 string `json:"broker_contact_2"`
	BrokerContact3 string `json:"broker_contact_3"`
	Images         string `json:"images"`
	URL            string `json:"url"`
}

// parsePropertyMetadata decodes a listing metadata payload into the property
// model. The payload is a JSON array of objects, sometimes wrapped one level
// deeper as a JSON-encoded string (the history endpoint double-encodes it).
// Pure: no I/O, no state.
func parsePropertyMetadata(raw json.RawMessage) ([]models.Property, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no metadata provided")
	}

	// History records carry metadata as a JSON string containing the array.
	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		raw = json.RawMessage(wrapped)
	}

	var items []rawProperty
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode property metadata: %w", err)
	}

	properties := make([]models.Property, 0, len(items))
	for i, item := range items {
		property, err := item.toModel()
		if err != nil {
			return nil, fmt.Errorf("property %d: %w", i, err)
		}
		properties = append(properties, property)
	}

	return properties, nil
}

func (r rawProperty) toModel() (models.Property, error) {
	var images []string
	if r.Images != "" {
		if err := json.Unmarshal([]byte(r.Images), &images); err != nil {
			return models.Property{}, fmt.Errorf("decode images: %w", err)
		}
	}

	return models.Property{
		Name:           r.PropertyName,
		Price:          r.Price,
		Currency:       r.Currency,
		Location:       r.Location,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		HalfBathrooms:  r.HalfBathrooms,
		ParkingSpaces:  r.ParkingSpace,
		AreaM2:         r.AreaM2,
		Amenities:      r.Amenities,
		Kind:           r.PropertyType,
		Status:         r.Status,
		BrokerName:     r.BrokerName,
		BrokerContact1: r.BrokerContact1,
		BrokerContact2: optionalContact(r.BrokerContact2),
		BrokerContact3: optionalContact(r.BrokerContact3),
		Images:         images,
		SourceURL:      r.URL,
		MapEmbedURL:    mapEmbedURL(r.Location),
	}, nil
}

// optionalContact drops the literal "nan" the backend emits for missing
// broker contacts.
func optionalContact(value string) *string {
	if value == "" || value == "nan" {
		return nil
	}
	return &value
}

func mapEmbedURL(location string) string {
	return "https://www.google.com/maps?q=" + url.QueryEscape(location) + "&output=embed"
}
