package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	want := Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
		Output:      "table",
	}
	if *got != want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}

func TestNewCliParamsReturnsFreshCopy(t *testing.T) {
	a := NewCliParams()
	a.Output = "json"
	if b := NewCliParams(); b.Output != "table" {
		t.Errorf("NewCliParams() shares state: Output = %q", b.Output)
	}
}

func TestVersionInformationDefaults(t *testing.T) {
	if VersionInformation.BuildVersion == "" {
		t.Error("VersionInformation.BuildVersion should have a default")
	}
	if CliBinaryName != "gridkit" {
		t.Errorf("CliBinaryName = %q", CliBinaryName)
	}
}
