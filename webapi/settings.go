package webapi

import "context"

// Setting is one event setting, optionally scoped to a result or contest.
type Setting struct {
	Name    string `json:"Name"`
	Value   any    `json:"Value"`
	Result  int    `json:"Result"`
	Contest int    `json:"Contest"`
}

type SettingsEndpoint struct {
	event *EventApi
}

// Get returns the named settings as a name/value map.
func (s *SettingsEndpoint) Get(ctx context.Context, names ...string) (map[string]any, error) {
	if len(names) == 0 {
		return map[string]any{}, nil
	}
	params := Params{}
	if len(names) == 1 {
		params["name"] = names[0]
	} else {
		params["names"] = names
	}
	values := map[string]any{}
	if err := s.event.getJSON(ctx, "settings/getsettings", params, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetValue returns one setting value, nil when unset.
func (s *SettingsEndpoint) GetValue(ctx context.Context, name string) (any, error) {
	values, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return values[name], nil
}

// Save stores settings.
func (s *SettingsEndpoint) Save(ctx context.Context, settings []Setting) error {
	return s.event.postJSON(ctx, "settings/savesettings", nil, settings, nil)
}

// SaveValue stores one unscoped setting value.
func (s *SettingsEndpoint) SaveValue(ctx context.Context, name string, value any) error {
	return s.Save(ctx, []Setting{{Name: name, Value: value}})
}

// Delete removes a setting; contest and result narrow the scope.
func (s *SettingsEndpoint) Delete(ctx context.Context, name string, contest, result int) error {
	params := Params{
		"name":    name,
		"contest": contest,
		"result":  result,
	}
	_, err := s.event.get(ctx, "settings/delete", params)
	return err
}

// NamesByPrefix returns the setting names starting with prefix.
func (s *SettingsEndpoint) NamesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	if err := s.event.getJSON(ctx, "settings/settingnamesbyprefix", Params{"prefix": prefix}, &names); err != nil {
		return nil, err
	}
	return names, nil
}
