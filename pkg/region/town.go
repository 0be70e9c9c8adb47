package region

import "encoding/json"

// Town defaults applied when a field is missing from the document.
const (
	DefaultTier    = "C"
	DefaultRadius  = 3.0
	DefaultProfile = "suburb"
)

// Town is a settlement anchor. Towns are read-only pipeline input.
type Town struct {
	ID      string   `json:"id"`
	Label   string   `json:"label,omitempty"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Tier    string   `json:"tier"`
	Radius  float64  `json:"radius"`
	Profile string   `json:"profile"`
	Density float64  `json:"density"`
	Artists []string `json:"artists,omitempty"`
}

// UnmarshalJSON fills the documented defaults for missing tier, radius and
// profile.
func (t *Town) UnmarshalJSON(data []byte) error {
	type plain Town
	aux := struct {
		*plain
		Tier    *string  `json:"tier"`
		Radius  *float64 `json:"radius"`
		Profile *string  `json:"profile"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Tier, t.Radius, t.Profile = DefaultTier, DefaultRadius, DefaultProfile
	if aux.Tier != nil {
		t.Tier = *aux.Tier
	}
	if aux.Radius != nil {
		t.Radius = *aux.Radius
	}
	if aux.Profile != nil {
		t.Profile = *aux.Profile
	}
	return nil
}
