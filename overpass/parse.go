package overpass

import (
	"encoding/json"
	"io"
)

type response struct {
	Elements []Element `json:"elements"`
}

func ParseJSON(v io.Reader) ([]Element, error) {
	var resp response
	err := json.NewDecoder(v).Decode(&resp)
	if err != nil {
		return nil, err
	}
	return resp.Elements, nil
}
