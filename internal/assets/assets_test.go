package assets

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	for _, p := range []string{AppIcon, PlusIcon, MinusIcon} {
		b, err := Load(p)
		if err != nil {
			t.Errorf("Load(%q) error = %v", p, err)
		}
		if len(b) == 0 {
			t.Errorf("Load(%q) returned no data", p)
		}
	}
}

func TestLoad_Empty(t *testing.T) {
	b, err := Load("")
	if b != nil || err != nil {
		t.Fatalf("Load(\"\") = %v, %v; want nil, nil", b, err)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("icons/nope.svg")
	if !errors.Is(err, ErrAssetUnavailable) {
		t.Fatalf("Load() error = %v, want ErrAssetUnavailable", err)
	}
}

func TestList(t *testing.T) {
	got, err := List("icons/")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{AppIcon, MinusIcon, PlusIcon}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	if got, _ := List("fonts/"); len(got) != 0 {
		t.Fatalf("List(fonts/) = %v, want empty", got)
	}
}
