package http

import (
	"bytes"
	"encoding/json"
	"strconv"

	"foodorders/internal/core/domain/services"
)

// orderBody keeps every field raw. Clients send loosely shaped bodies and the
// validation engine, not the decoder, decides what is wrong with them.
type orderBody struct {
	RestaurantID json.RawMessage `json:"restaurantId"`
	Address      json.RawMessage `json:"address"`
	Products     json.RawMessage `json:"products"`
}

type lineBody struct {
	ProductID    json.RawMessage `json:"productId"`
	Quantity     json.RawMessage `json:"quantity"`
	RestaurantID json.RawMessage `json:"restaurantId"`
}

// payload maps the body to the engine's input:
//   - products that is not an array becomes nil
//   - a product element that is not an object becomes a zero line
//   - ids and quantities that are not integers become 0
func (b orderBody) payload() services.Payload {
	return services.Payload{
		RestaurantID: optionalInt(b.RestaurantID),
		Address:      optionalString(b.Address),
		Products:     productLines(b.Products),
	}
}

func productLines(raw json.RawMessage) []services.LineInput {
	if isAbsent(raw) {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}

	lines := make([]services.LineInput, 0, len(elements))
	for _, element := range elements {
		var line lineBody
		if err := json.Unmarshal(element, &line); err != nil || isAbsent(element) {
			lines = append(lines, services.LineInput{})
			continue
		}
		lines = append(lines, services.LineInput{
			ProductID:    intValue(line.ProductID),
			Quantity:     int(intValue(line.Quantity)),
			RestaurantID: optionalInt(line.RestaurantID),
		})
	}
	return lines
}

func optionalInt(raw json.RawMessage) *int64 {
	if isAbsent(raw) {
		return nil
	}
	v := intValue(raw)
	return &v
}

func optionalString(raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// intValue accepts a JSON integer or a string holding one.
func intValue(raw json.RawMessage) int64 {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0
	}

	var (
		n   int64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		n, err = t.Int64()
	case string:
		n, err = strconv.ParseInt(t, 10, 64)
	default:
		return 0
	}
	if err != nil {
		return 0
	}
	return n
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
