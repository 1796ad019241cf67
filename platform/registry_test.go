// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"errors"
	"reflect"
	"testing"
)

func ids(ds []Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}

func TestRegister_Duplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Descriptor{ID: "switch", Order: 5}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	err := r.Register(Descriptor{ID: "switch", Order: 6})
	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("Register() error = %v, want *DuplicateIDError", err)
	}
	if dup.ID != "switch" {
		t.Errorf("DuplicateIDError.ID = %q, want switch", dup.ID)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegister_EmptyID(t *testing.T) {
	if err := NewRegistry().Register(Descriptor{}); err == nil {
		t.Error("Register() with empty id should fail")
	}
}

func TestAllOrdered(t *testing.T) {
	r := NewRegistry()
	for _, d := range []Descriptor{
		{ID: "c", Order: 3},
		{ID: "a", Order: 1},
		{ID: "tie2", Order: 2},
		{ID: "tie1", Order: 2},
		{ID: "z", Order: 0},
	} {
		if err := r.Register(d); err != nil {
			t.Fatal(err)
		}
	}

	first := ids(r.AllOrdered())
	want := []string{"z", "a", "tie2", "tie1", "c"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("AllOrdered() = %v, want %v", first, want)
	}
	if second := ids(r.AllOrdered()); !reflect.DeepEqual(second, first) {
		t.Errorf("AllOrdered() not deterministic: %v then %v", first, second)
	}
}

func TestOrderAfter(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Descriptor{ID: "ios-moe", Order: 7}); err != nil {
		t.Fatal(err)
	}
	got, err := r.OrderAfter("ios-moe")
	if err != nil {
		t.Fatalf("OrderAfter() error = %v", err)
	}
	if got != 8 {
		t.Errorf("OrderAfter() = %d, want 8", got)
	}
	if _, err := r.OrderAfter("missing"); err == nil {
		t.Error("OrderAfter() of unknown platform should fail")
	}
}

func TestSelect(t *testing.T) {
	r := NewRegistry()
	for _, d := range []Descriptor{{ID: "core", Order: 0}, {ID: "lwjgl3", Order: 1}, {ID: "switch", Order: 9}} {
		if err := r.Register(d); err != nil {
			t.Fatal(err)
		}
	}

	got, err := r.Select("switch", "core", "switch")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if want := []string{"core", "switch"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Select() = %v, want %v", ids(got), want)
	}

	if _, err := r.Select("core", "android"); err == nil {
		t.Error("Select() with unknown id should fail")
	}
}

func TestDependencyVarName(t *testing.T) {
	tests := []struct {
		dep     Dependency
		want    string
		wantRef bool
	}{
		{VarDep("implementation", "com.foo", "baz", "ver"), "ver", true},
		{Dep("implementation", "com.foo", "baz", "${ver}"), "ver", true},
		{Dep("implementation", "com.foo", "bar", "1.2.0"), "", false},
		{Dep("implementation", "com.foo", "bar", "${}"), "", false},
		{ProjectDep("implementation", "core"), "", false},
	}
	for _, tt := range tests {
		got, ok := tt.dep.VarName()
		if got != tt.want || ok != tt.wantRef {
			t.Errorf("VarName(%+v) = (%q, %v), want (%q, %v)", tt.dep, got, ok, tt.want, tt.wantRef)
		}
	}
}
