package schemas

import "testing"

func TestEmbeddedSchemasCompile(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Name
		body    string
		wantErr bool
	}{
		{name: "login ok", schema: Login, body: `{"password":"secret"}`},
		{name: "login missing password", schema: Login, body: `{}`, wantErr: true},
		{name: "login wrong type", schema: Login, body: `{"password":12}`, wantErr: true},
		{
			name:   "create ok",
			schema: CreateGame,
			body: `{"playerName":"Ana","scenario":"zombie-apocalypse","startLat":39.7,"startLng":-104.9,
				"stats":{"strength":10,"dexterity":11,"constitution":12,"intelligence":13,"wisdom":14,"charisma":15}}`,
		},
		{
			name:    "create missing stats",
			schema:  CreateGame,
			body:    `{"playerName":"Ana","scenario":"zombie-apocalypse","startLat":39.7,"startLng":-104.9}`,
			wantErr: true,
		},
		{
			name:   "create fractional stat",
			schema: CreateGame,
			body: `{"playerName":"Ana","scenario":"zombie-apocalypse","startLat":39.7,"startLng":-104.9,
				"stats":{"strength":10.5,"dexterity":11,"constitution":12,"intelligence":13,"wisdom":14,"charisma":15}}`,
			wantErr: true,
		},
		{name: "move ok", schema: Move, body: `{"targetLat":39.7,"targetLng":-104.9,"locationType":"store","action":"loot"}`},
		{name: "move nulls", schema: Move, body: `{"targetLat":39.7,"targetLng":-104.9,"locationType":null,"action":null}`},
		{name: "move missing lng", schema: Move, body: `{"targetLat":39.7}`, wantErr: true},
		{name: "move string lat", schema: Move, body: `{"targetLat":"39.7","targetLng":-104.9}`, wantErr: true},
		{name: "not json", schema: Move, body: `{`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.schema, []byte(tc.body))
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	if err := Validate(Name("nope.schema.json"), []byte(`{}`)); err == nil {
		t.Fatal("expected error for unknown schema")
	}
}
