package assets

import (
	"testing"

	"chuni-tracker/internal/config"
)

func TestJacketURL(t *testing.T) {
	c := NewClient(&config.Config{AssetHost: "assets.example.com"})

	got := c.JacketURL("CHU_UI_Jacket_1234.dds")
	want := "https://assets.example.com/jacketArts/CHU_UI_Jacket_1234.png"
	if got != want {
		t.Errorf("JacketURL = %q, want %q", got, want)
	}
}

func TestJacketURLKeepsNonDDSNames(t *testing.T) {
	c := NewClient(&config.Config{AssetHost: "assets.example.com"})

	got := c.JacketURL("already.png")
	want := "https://assets.example.com/jacketArts/already.png"
	if got != want {
		t.Errorf("JacketURL = %q, want %q", got, want)
	}
}
