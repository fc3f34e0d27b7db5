package domain

import (
	"encoding/json"
	"testing"
)

func TestPreferencesDecode(t *testing.T) {
	t.Run("unknown fields are dropped", func(t *testing.T) {
		var p Preferences
		raw := []byte(`{"theme":"dark","bogus":{"x":1}}`)
		if err := json.Unmarshal(raw, &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if string(p.Theme) != `"dark"` {
			t.Errorf("Theme = %s, want %q", p.Theme, `"dark"`)
		}
		if p.Language != nil {
			t.Errorf("Language = %s, want unset", p.Language)
		}
	})

	t.Run("values pass through untouched", func(t *testing.T) {
		var p Preferences
		raw := []byte(`{"notifications":{"email":true,"push":[1,2]},"privacy":null}`)
		if err := json.Unmarshal(raw, &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if string(p.Notifications) != `{"email":true,"push":[1,2]}` {
			t.Errorf("Notifications = %s", p.Notifications)
		}
		// An explicit null is retained and re-serialized as null.
		if string(p.Privacy) != "null" {
			t.Errorf("Privacy = %s, want null", p.Privacy)
		}
	})

	t.Run("absent fields are omitted on encode", func(t *testing.T) {
		var p Preferences
		if err := json.Unmarshal([]byte(`{"language":"en"}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		out, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != `{"language":"en"}` {
			t.Errorf("encoded = %s, want %s", out, `{"language":"en"}`)
		}
	})
}
