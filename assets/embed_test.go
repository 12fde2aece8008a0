package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"icons/brazil.png", "icons/brazil.png"},
		{"assets/icons/brazil.png", "icons/brazil.png"},
		{"/home/me/mapamundi/assets/icons/spain.png", "icons/spain.png"},
		{"/tmp/egypt.png", "egypt.png"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanAssetPath(tt.in); got != tt.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmbeddedIconsPresent(t *testing.T) {
	for _, ref := range []string{"icons/brazil.png", "assets/icons/japan.png"} {
		b, err := LoadFile(ref)
		if err != nil {
			t.Fatalf("load %s: %v", ref, err)
		}
		if len(b) < 8 || string(b[1:4]) != "PNG" {
			t.Fatalf("%s is not a PNG", ref)
		}
	}
	if _, err := LoadFile("icons/atlantis.png"); err == nil {
		t.Fatalf("expected missing icon error")
	}
}

func TestNilIconsResolveNil(t *testing.T) {
	var ic *Icons
	if ic.Icon("icons/brazil.png") != nil {
		t.Fatalf("expected nil icon from nil cache")
	}
	if NewIcons().Icon("") != nil {
		t.Fatalf("expected nil icon for empty ref")
	}
}
